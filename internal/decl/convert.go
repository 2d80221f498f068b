package decl

import (
	"errors"
	"fmt"

	"record-generator/record"
)

// Declaration converts the record into the raw declaration consumed by
// record.Define, with defaults evaluated to runtime values.
func (r *Record) Declaration() (record.Declaration, error) {
	var out record.Declaration

	for i := range r.Fields {
		f := &r.Fields[i]
		out.Annotations = append(out.Annotations, record.Annotation{Name: f.Name, Type: f.Type})

		if !f.HasDefault() {
			continue
		}

		v, err := f.DefaultValue()
		if err != nil {
			return record.Declaration{}, fmt.Errorf("record %s: %w", r.Name, err)
		}

		out.Assignments = append(out.Assignments, record.Assignment{Name: f.Name, Value: v})
	}

	return out, nil
}

// Layout extracts the ordered field descriptors without evaluating
// defaults. Default values hold the Go literal text, which is enough for
// ordering checks and for code generation.
func (r *Record) Layout() record.Fields {
	var out record.Declaration

	for i := range r.Fields {
		f := &r.Fields[i]
		out.Annotations = append(out.Annotations, record.Annotation{Name: f.Name, Type: f.Type})

		if f.HasDefault() {
			lit, _ := f.GoLiteral()
			out.Assignments = append(out.Assignments, record.Assignment{Name: f.Name, Value: lit})
		}
	}

	return record.Extract(out)
}

// Class defines the runtime record class for r.
func (r *Record) Class(opts ...record.Option) (*record.Class, error) {
	d, err := r.Declaration()
	if err != nil {
		return nil, err
	}

	return record.Define(r.Name, d, opts...)
}

// Classes defines runtime classes for every record in the file.
func (f *File) Classes() ([]*record.Class, error) {
	classes := make([]*record.Class, 0, len(f.Records))

	var errs []error

	for i := range f.Records {
		c, err := f.Records[i].Class()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		classes = append(classes, c)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return classes, nil
}
