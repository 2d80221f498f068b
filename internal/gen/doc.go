// Package gen provides deterministic Go code generation for record types.
//
// Generation approach uses text/template, then golang.org/x/tools/imports
// (or go/format) for readable Go code.
//
// Per record, one file "<snake_name>_record.go" holding:
//   - the struct type, unless it is already declared in Go source
//   - typed default values and a package-level record.Class
//   - New<Name>(record.Args), resolving positional and named arguments
//   - a String method rendering Name(field=value, ...)
package gen
