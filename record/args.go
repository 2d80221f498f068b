package record

import "maps"

// Args carries constructor arguments: positional values mapped to fields by
// index, and named values mapped by field name.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Pos returns Args holding the given positional values.
func Pos(values ...any) Args {
	return Args{Positional: values}
}

// Named returns Args holding a single named value.
func Named(name string, value any) Args {
	return Args{}.With(name, value)
}

// With returns a copy of a with name bound to value.
func (a Args) With(name string, value any) Args {
	named := make(map[string]any, len(a.Named)+1)
	maps.Copy(named, a.Named)
	named[name] = value

	return Args{Positional: a.Positional, Named: named}
}

// Len returns the total number of supplied arguments.
func (a Args) Len() int {
	return len(a.Positional) + len(a.Named)
}
