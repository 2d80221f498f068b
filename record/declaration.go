package record

import "strings"

// Annotation declares a field name and its type tag.
type Annotation struct {
	Name string
	Type string
}

// Assignment binds a value to a name in a declaration body. When the name
// is also annotated, the value becomes the field's default.
type Assignment struct {
	Name  string
	Value any
}

// Declaration is the raw body of a record class, in source order.
type Declaration struct {
	Annotations []Annotation
	Assignments []Assignment
}

// reservedPrefix marks bookkeeping names that never become fields.
const reservedPrefix = "__"

// IsReserved reports whether name is kept out of field consideration.
func IsReserved(name string) bool {
	return name == "_" || strings.HasPrefix(name, reservedPrefix)
}

// Extract turns a declaration into ordered field descriptors.
//
// Only annotated names become fields; a bare assignment is ignored. A field
// whose name is also assigned gets that value as its default. Repeated
// annotations or assignments behave like redefinition: the last one wins,
// while the field keeps the position of its first annotation.
func Extract(decl Declaration) Fields {
	defaults := make(map[string]any, len(decl.Assignments))
	for _, a := range decl.Assignments {
		defaults[a.Name] = a.Value
	}

	fs := make([]Field, 0, len(decl.Annotations))

	for _, an := range decl.Annotations {
		if IsReserved(an.Name) {
			continue
		}

		f := Required(an.Name, an.Type)
		if v, ok := defaults[an.Name]; ok {
			f.Default = DefaultOf(v)
		}

		fs = append(fs, f)
	}

	return NewFields(fs...)
}

// DeclarationOf builds a declaration from field descriptors. It is the
// inverse of Extract for already-extracted fields.
func DeclarationOf(fs ...Field) Declaration {
	var decl Declaration

	for _, f := range fs {
		decl.Annotations = append(decl.Annotations, Annotation{Name: f.Name, Type: f.Type})
		if v, ok := f.Default.Value(); ok {
			decl.Assignments = append(decl.Assignments, Assignment{Name: f.Name, Value: v})
		}
	}

	return decl
}
