package diagnostic

import (
	"errors"
	"strings"
)

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Severity orders diagnostics from informational to fatal.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// Diagnostic is one finding about a declaration.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding, see codes.go.
	Code    string
	Message string
	// Record and Field locate the finding; either may be empty.
	Record string
	Field  string
}

// Location renders "Record.Field", "Record" or "".
func (d Diagnostic) Location() string {
	switch {
	case d.Record != "" && d.Field != "":
		return d.Record + "." + d.Field
	case d.Record != "":
		return d.Record
	default:
		return d.Field
	}
}

func (d Diagnostic) String() string {
	var b strings.Builder

	if loc := d.Location(); loc != "" {
		b.WriteString(loc)
		b.WriteString(": ")
	}

	if d.Code != "" {
		b.WriteString("[" + d.Code + "] ")
	}

	b.WriteString(d.Message)

	return b.String()
}

// Diagnostics collects findings by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files d under its severity.
func (ds *Diagnostics) Add(d Diagnostic) {
	switch d.Severity {
	case SeverityError:
		ds.Errors = append(ds.Errors, d)
	case SeverityWarning:
		ds.Warnings = append(ds.Warnings, d)
	default:
		ds.Infos = append(ds.Infos, d)
	}
}

func (ds *Diagnostics) AddError(code, message, record, field string) {
	ds.Add(Diagnostic{SeverityError, code, message, record, field})
}

func (ds *Diagnostics) AddWarning(code, message, record, field string) {
	ds.Add(Diagnostic{SeverityWarning, code, message, record, field})
}

func (ds *Diagnostics) AddInfo(code, message, record, field string) {
	ds.Add(Diagnostic{SeverityInfo, code, message, record, field})
}

// Merge appends every finding of other.
func (ds *Diagnostics) Merge(other Diagnostics) {
	for _, d := range other.All() {
		ds.Add(d)
	}
}

// All returns every finding, errors first.
func (ds *Diagnostics) All() []Diagnostic {
	return append(append(append([]Diagnostic(nil), ds.Errors...), ds.Warnings...), ds.Infos...)
}

func (ds *Diagnostics) HasErrors() bool {
	return len(ds.Errors) > 0
}

// IsValid reports whether nothing blocks code generation.
func (ds *Diagnostics) IsValid() bool {
	return !ds.HasErrors()
}

// Error joins the error findings, one per line, or returns nil.
func (ds *Diagnostics) Error() error {
	errs := make([]error, 0, len(ds.Errors))
	for _, d := range ds.Errors {
		errs = append(errs, errors.New(d.String()))
	}

	return errors.Join(errs...)
}
