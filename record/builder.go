package record

// Builder assembles a declaration field by field.
//
//	point, err := record.NewBuilder("Point").
//		Field("X", "int").
//		FieldDefault("Y", "int", 0).
//		Build()
type Builder struct {
	name string
	decl Declaration
	opts []Option
}

// NewBuilder starts a declaration for the named class.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Field declares a field without a default.
func (b *Builder) Field(name, typ string) *Builder {
	b.decl.Annotations = append(b.decl.Annotations, Annotation{Name: name, Type: typ})
	return b
}

// FieldDefault declares a field with a default value.
func (b *Builder) FieldDefault(name, typ string, def any) *Builder {
	b.decl.Annotations = append(b.decl.Annotations, Annotation{Name: name, Type: typ})
	b.decl.Assignments = append(b.decl.Assignments, Assignment{Name: name, Value: def})

	return b
}

// PostInit sets the post-construction hook.
func (b *Builder) PostInit(fn func(*Instance)) *Builder {
	b.opts = append(b.opts, WithPostInit(fn))
	return b
}

// Declaration returns the declaration built so far.
func (b *Builder) Declaration() Declaration {
	return b.decl
}

// Build defines the class.
func (b *Builder) Build() (*Class, error) {
	return Define(b.name, b.decl, b.opts...)
}
