package record

import "slices"

// Instance is a constructed record. Its layout is closed: only the class
// fields exist. An Instance is not safe for concurrent mutation.
type Instance struct {
	class  *Class
	values []any
}

// Class returns the class the instance was built from.
func (in *Instance) Class() *Class {
	return in.class
}

// Get returns the value of the named field.
func (in *Instance) Get(name string) (any, error) {
	i := in.class.fields.Index(name)
	if i < 0 {
		return nil, in.closed(name)
	}

	return in.values[i], nil
}

// Set assigns the named field. Names outside the layout are rejected.
func (in *Instance) Set(name string, value any) error {
	i := in.class.fields.Index(name)
	if i < 0 {
		return in.closed(name)
	}

	in.values[i] = value

	return nil
}

// Values returns a copy of the field values in declaration order.
func (in *Instance) Values() []any {
	return slices.Clone(in.values)
}

// String renders the instance as "Name(f1=v1, f2=v2)".
func (in *Instance) String() string {
	return in.class.Format(in.values...)
}

func (in *Instance) closed(name string) error {
	return newError(KindClosedAttribute, in.class.name, []string{name},
		"'%s' object has no field '%s'", in.class.name, name)
}
