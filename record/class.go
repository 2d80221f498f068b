package record

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"record-generator/internal/match"
)

// Class is a defined record class. It is immutable after Define and safe
// for concurrent use.
type Class struct {
	name     string
	fields   Fields
	postInit func(*Instance)
}

// Option configures a Class at definition time.
type Option func(*Class)

// WithPostInit installs a hook that runs after every successful New.
func WithPostInit(fn func(*Instance)) Option {
	return func(c *Class) {
		c.postInit = fn
	}
}

// Define extracts fields from decl, validates their ordering and returns the
// resulting class. An ordering violation aborts the definition.
func Define(name string, decl Declaration, opts ...Option) (*Class, error) {
	fields := Extract(decl)

	if err := ValidateOrdering(name, fields); err != nil {
		return nil, err
	}

	c := &Class{name: name, fields: fields}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustDefine is like Define but panics on error. It suits package-level
// class variables.
func MustDefine(name string, decl Declaration, opts ...Option) *Class {
	c, err := Define(name, decl, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Fields returns the field descriptors in declaration order.
func (c *Class) Fields() Fields {
	return c.fields
}

// Resolve maps args onto the class fields and returns one value per field,
// in declaration order.
//
// A field takes its named argument, else the positional argument at its
// index, else its default. Fields left without a value are reported together.
// A field supplied both positionally and by name is rejected.
func (c *Class) Resolve(args Args) ([]any, error) {
	n := c.fields.Len()
	if given := args.Len(); given > n {
		return nil, newError(KindExcessArguments, c.name, nil,
			"%s() takes at most %d arguments, but %d were given", c.name, n, given)
	}

	if unknown := c.unknownNames(args.Named); len(unknown) > 0 {
		return nil, newError(KindUnknownArgument, c.name, unknown,
			"%s() got unexpected named arguments: %s", c.name, c.describeUnknown(unknown))
	}

	values := make([]any, n)

	var missing []string

	for i, f := range c.fields.list {
		named, isNamed := args.Named[f.Name]
		isPositional := i < len(args.Positional)

		switch {
		case isNamed && isPositional:
			return nil, newError(KindDuplicateArgument, c.name, []string{f.Name},
				"%s() got multiple values for argument '%s'", c.name, f.Name)
		case isNamed:
			values[i] = named
		case isPositional:
			values[i] = args.Positional[i]
		case f.HasDefault():
			values[i], _ = f.Default.Value()
		default:
			missing = append(missing, f.Name)
		}
	}

	if len(missing) > 0 {
		return nil, newError(KindMissingArguments, c.name, missing,
			"%s() missing %d required arguments: %s", c.name, len(missing), strings.Join(missing, ", "))
	}

	return values, nil
}

// unknownNames returns the sorted named arguments that match no field.
func (c *Class) unknownNames(named map[string]any) []string {
	var unknown []string

	for name := range named {
		if c.fields.Index(name) < 0 {
			unknown = append(unknown, name)
		}
	}

	slices.Sort(unknown)

	return unknown
}

// describeUnknown lists unknown names, each with the closest field name
// when one is similar enough.
func (c *Class) describeUnknown(unknown []string) string {
	names := c.fields.Names()
	parts := make([]string, len(unknown))

	for i, name := range unknown {
		parts[i] = name
		if s, ok := match.Suggest(name, names, match.DefaultThreshold); ok {
			parts[i] = fmt.Sprintf("%s (did you mean %s?)", name, s)
		}
	}

	return strings.Join(parts, ", ")
}

// New constructs an instance from args and runs the post-init hook, if any.
// The hook is not reached when argument resolution fails.
func (c *Class) New(args Args) (*Instance, error) {
	values, err := c.Resolve(args)
	if err != nil {
		return nil, err
	}

	inst := &Instance{class: c, values: make([]any, c.fields.Len())}
	for i, f := range c.fields.list {
		if err := inst.Set(f.Name, values[i]); err != nil {
			return nil, err
		}
	}

	if c.postInit != nil {
		c.postInit(inst)
	}

	return inst, nil
}

// Format renders values as "Name(f1=v1, f2=v2)" using the field order.
// Values beyond the field count are ignored.
func (c *Class) Format(values ...any) string {
	var b strings.Builder

	b.WriteString(c.name)
	b.WriteByte('(')

	for i, f := range c.fields.list {
		if i >= len(values) {
			break
		}

		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%s=%v", f.Name, values[i])
	}

	b.WriteByte(')')

	return b.String()
}

// Value returns values[i] as T, for generated code that fills typed struct
// fields from Resolve. A nil value yields the zero T when T can hold nil.
func Value[T any](c *Class, values []any, i int) (T, error) {
	var zero T

	v := values[i]
	if t, ok := v.(T); ok {
		return t, nil
	}

	typ := reflect.TypeFor[T]()
	if v == nil && nilable(typ) {
		return zero, nil
	}

	name := c.fields.At(i).Name

	return zero, newError(KindFieldType, c.name, []string{name},
		"%s() argument '%s' must be %s, not %T", c.name, name, typ, v)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
