// Package analyze finds record declarations in Go source.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to locate
// named struct types marked with a "record:generate" doc comment:
//
//	// Point is a 2D point.
//	//
//	//record:generate
//	type Point struct {
//		X int
//		Y int `default:"0"`
//	}
//
// Fields are taken in declaration order. Blank and embedded fields, and
// fields tagged `record:"-"`, are skipped. A `default:"<expr>"` tag holds a
// Go expression used as the field default. A PostInit() method on T or *T
// is detected and called by generated constructors.
//
// Key types:
//   - TypeID: package import path + type name
//   - RecordInfo: a marked struct with its fields
//   - FieldInfo: field name, type expression, tags and embedding
package analyze
