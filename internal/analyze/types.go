package analyze

import (
	"reflect"

	"record-generator/internal/decl"
	"record-generator/record"
)

// Struct tag keys understood by the analyzer.
const (
	TagDefault = "default"
	TagRecord  = "record"
)

// Directive marks a struct type as a record in its doc comment.
const Directive = "record:generate"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "record-generator/examples/shapes"
	Name    string // e.g., "Point"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// RecordInfo describes a struct type marked as a record.
type RecordInfo struct {
	ID       TypeID      // Unique identifier
	Fields   []FieldInfo // All struct fields, in source order
	PostInit bool        // T or *T has a PostInit() method
	Stringer bool        // T or *T already has a String method
	Imports  []string    // Packages referenced by field types
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     string            // Type expression, qualified relative to the declaring package
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// Skipped reports whether the field is left out of the record layout.
func (f *FieldInfo) Skipped() bool {
	return f.Embedded || record.IsReserved(f.Name) || f.Tag.Get(TagRecord) == "-"
}

// DefaultExpr returns the default expression from the struct tag and
// whether the tag is set.
func (f *FieldInfo) DefaultExpr() (string, bool) {
	return f.Tag.Lookup(TagDefault)
}

// Record converts the analyzed struct into a declaration record. The
// struct already exists, so the record is marked Declared.
func (r *RecordInfo) Record() decl.Record {
	out := decl.Record{
		Name:      r.ID.Name,
		PostInit:  r.PostInit,
		Declared:  true,
		HasString: r.Stringer,
		PkgPath:   r.ID.PkgPath,
		Imports:   r.Imports,
	}

	for i := range r.Fields {
		f := &r.Fields[i]
		if f.Skipped() {
			continue
		}

		df := decl.Field{Name: f.Name, Type: f.Type}
		if expr, ok := f.DefaultExpr(); ok {
			df.DefaultExpr = expr
		}

		out.Fields = append(out.Fields, df)
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Dir     string   // Directory containing the package sources
	Records []TypeID // Record types defined in this package
}
