package record

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=ErrorKind -trimprefix=Kind -output=errorkind_string.go

// ErrorKind classifies record definition and construction failures.
type ErrorKind int

const (
	KindOrdering          ErrorKind = iota // required field after a defaulted one (definition time)
	KindExcessArguments                    // more arguments than fields
	KindMissingArguments                   // required fields left unresolved
	KindUnknownArgument                    // named argument matches no field
	KindDuplicateArgument                  // field given both positionally and by name
	KindClosedAttribute                    // access to a name outside the layout
	KindFieldType                          // value not assignable to a generated field
)

// Sentinels for errors.Is. Any *Error matches the sentinel of its kind.
var (
	ErrOrdering          = &Error{Kind: KindOrdering, msg: "record: ordering"}
	ErrExcessArguments   = &Error{Kind: KindExcessArguments, msg: "record: excess arguments"}
	ErrMissingArguments  = &Error{Kind: KindMissingArguments, msg: "record: missing arguments"}
	ErrUnknownArgument   = &Error{Kind: KindUnknownArgument, msg: "record: unknown argument"}
	ErrDuplicateArgument = &Error{Kind: KindDuplicateArgument, msg: "record: duplicate argument"}
	ErrClosedAttribute   = &Error{Kind: KindClosedAttribute, msg: "record: closed attribute"}
	ErrFieldType         = &Error{Kind: KindFieldType, msg: "record: field type"}
)

// Error is returned by every failing operation in this package.
type Error struct {
	Kind   ErrorKind
	Class  string   // Record class name
	Fields []string // Offending field or argument names
	msg    string
}

func newError(kind ErrorKind, class string, fields []string, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Class:  class,
		Fields: fields,
		msg:    fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}
