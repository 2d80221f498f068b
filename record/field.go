package record

import "iter"

// Default is an optional default value. The zero Default is absent, which
// is distinct from any value a caller can supply, nil included.
type Default struct {
	value   any
	present bool
}

// NoDefault returns an absent Default.
func NoDefault() Default {
	return Default{}
}

// DefaultOf returns a Default holding v.
func DefaultOf(v any) Default {
	return Default{value: v, present: true}
}

// Present reports whether a default value was supplied.
func (d Default) Present() bool {
	return d.present
}

// Value returns the default value and whether it is present.
func (d Default) Value() (any, bool) {
	return d.value, d.present
}

// Field describes one declared attribute of a record class.
type Field struct {
	Name    string  // Field name, unique within a class
	Type    string  // Declared type tag; informational only
	Default Default // Optional default value
}

// Required returns a field without a default.
func Required(name, typ string) Field {
	return Field{Name: name, Type: typ}
}

// Optional returns a field defaulting to def.
func Optional(name, typ string, def any) Field {
	return Field{Name: name, Type: typ, Default: DefaultOf(def)}
}

// HasDefault reports whether the field carries a default value.
func (f Field) HasDefault() bool {
	return f.Default.Present()
}

// Fields is an ordered, immutable collection of field descriptors.
// Order is declaration order and drives positional argument mapping.
type Fields struct {
	list  []Field
	index map[string]int
}

// NewFields builds an ordered collection from fs. A repeated name keeps the
// position of its first occurrence and the descriptor of its last.
func NewFields(fs ...Field) Fields {
	out := Fields{index: make(map[string]int, len(fs))}

	for _, f := range fs {
		if i, ok := out.index[f.Name]; ok {
			out.list[i] = f
			continue
		}

		out.index[f.Name] = len(out.list)
		out.list = append(out.list, f)
	}

	return out
}

// Len returns the number of fields.
func (fs Fields) Len() int {
	return len(fs.list)
}

// At returns the field at position i.
func (fs Fields) At(i int) Field {
	return fs.list[i]
}

// Index returns the position of the named field, or -1.
func (fs Fields) Index(name string) int {
	if i, ok := fs.index[name]; ok {
		return i
	}

	return -1
}

// Lookup returns the named field and whether it exists.
func (fs Fields) Lookup(name string) (Field, bool) {
	i, ok := fs.index[name]
	if !ok {
		return Field{}, false
	}

	return fs.list[i], true
}

// Names returns field names in declaration order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs.list))
	for i, f := range fs.list {
		names[i] = f.Name
	}

	return names
}

// All iterates over the fields in declaration order.
func (fs Fields) All() iter.Seq2[int, Field] {
	return func(yield func(int, Field) bool) {
		for i, f := range fs.list {
			if !yield(i, f) {
				return
			}
		}
	}
}
