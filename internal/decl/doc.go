// Package decl provides the YAML declaration file format for records,
// its loader and its validation.
//
// A declaration file lists record classes and their fields in order:
//
//	version: "1"
//	package: shapes
//	imports: [strings]
//	records:
//	  - name: Point
//	    fields:
//	      - name: X
//	        type: int
//	      - name: Y
//	        type: int
//	        default: 0
//	  - name: Label
//	    post_init: true
//	    fields:
//	      - name: Text
//	        type: string
//	        default_expr: strings.Repeat("-", 3)
//
// # Defaults
//
// A field has no default unless it sets "default" (a YAML scalar, rendered
// as a Go literal) or "default_expr" (a Go expression copied verbatim into
// generated code). Setting both is an error. Defaulted fields must come
// after every required field.
//
// # Field order
//
// Field order is significant: it fixes positional argument mapping and the
// rendered form of instances. Records from Go sources (see package analyze)
// use the same model with Declared set.
package decl
