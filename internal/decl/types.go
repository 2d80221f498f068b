package decl

import (
	"gopkg.in/yaml.v3"
)

// File is the root of a declaration file.
type File struct {
	// Version is the schema version (currently "1").
	Version string `yaml:"version"`
	// Package is the Go package name for generated code.
	Package string `yaml:"package,omitempty"`
	// Imports are extra import paths needed by default expressions.
	Imports []string `yaml:"imports,omitempty"`
	// Records are the record classes, in declaration order.
	Records []Record `yaml:"records"`
}

// Record declares one record class.
type Record struct {
	// Name is the Go type name.
	Name string `yaml:"name"`
	// PostInit makes generated constructors call PostInit() on the new value.
	PostInit bool `yaml:"post_init,omitempty"`
	// Fields are the record fields, in order.
	Fields []Field `yaml:"fields"`

	// Declared is true when the struct type already exists in Go source and
	// only its constructor and String method are generated.
	Declared bool `yaml:"-"`
	// PkgPath is the import path of the declaring package, for Go sources.
	PkgPath string `yaml:"-"`
	// Imports are packages referenced by field types, for Go sources.
	Imports []string `yaml:"-"`
	// HasString is true when the declared type already has a String method.
	HasString bool `yaml:"-"`
}

// Field declares one record field.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Default is a scalar default value.
	Default *yaml.Node `yaml:"default,omitempty"`
	// DefaultExpr is a Go expression used as default value.
	DefaultExpr string `yaml:"default_expr,omitempty"`
}

// HasDefault reports whether the field declares any default.
func (f *Field) HasDefault() bool {
	return f.Default != nil || f.DefaultExpr != ""
}

// RecordByName returns the named record, or nil.
func (f *File) RecordByName(name string) *Record {
	for i := range f.Records {
		if f.Records[i].Name == name {
			return &f.Records[i]
		}
	}

	return nil
}
