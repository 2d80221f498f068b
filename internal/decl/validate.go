package decl

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"go/types"

	"record-generator/internal/common"
	"record-generator/internal/diagnostic"
	"record-generator/record"
)

// Validate checks a declaration file and reports every problem found.
func Validate(f *File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if f.Package != "" && !token.IsIdentifier(f.Package) {
		diags.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("package name %q is not a Go identifier", f.Package), "", "")
	}

	seen := make(map[string]bool, len(f.Records))

	for i := range f.Records {
		r := &f.Records[i]

		if seen[r.Name] {
			diags.AddError(diagnostic.CodeDuplicateRecord,
				fmt.Sprintf("record %q is declared more than once", r.Name), r.Name, "")
		}

		seen[r.Name] = true

		diags.Merge(ValidateRecord(r))
	}

	return diags
}

// ValidateRecord checks a single record declaration.
func ValidateRecord(r *Record) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if !token.IsIdentifier(r.Name) {
		diags.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("record name %q is not a Go identifier", r.Name), r.Name, "")
	}

	if len(r.Fields) == 0 {
		diags.AddInfo(diagnostic.CodeEmptyRecord, "record declares no fields", r.Name, "")
	}

	seen := make(map[string]bool, len(r.Fields))

	for i := range r.Fields {
		validateField(r, &r.Fields[i], seen, &diags)
	}

	err := record.ValidateOrdering(r.Name, r.Layout())

	var rerr *record.Error
	if errors.As(err, &rerr) {
		field, _ := common.First(rerr.Fields)
		diags.AddError(diagnostic.CodeDefaultOrdering,
			"non-default field follows a defaulted field", r.Name, field)
	}

	return diags
}

func validateField(r *Record, f *Field, seen map[string]bool, diags *diagnostic.Diagnostics) {
	switch {
	case record.IsReserved(f.Name):
		diags.AddWarning(diagnostic.CodeReservedField,
			fmt.Sprintf("field name %q is reserved and will be ignored", f.Name), r.Name, f.Name)

		return
	case !token.IsIdentifier(f.Name):
		diags.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("field name %q is not a Go identifier", f.Name), r.Name, f.Name)
	}

	if methodClash(r, f.Name) {
		diags.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("field name %q clashes with the %s method", f.Name, f.Name), r.Name, f.Name)
	}

	if seen[f.Name] {
		diags.AddWarning(diagnostic.CodeDuplicateField,
			"field is redeclared, the last declaration wins", r.Name, f.Name)
	}

	seen[f.Name] = true

	if f.Type == "" {
		diags.AddError(diagnostic.CodeMissingType, "field has no type", r.Name, f.Name)
	} else if _, err := parser.ParseExpr(f.Type); err != nil {
		diags.AddError(diagnostic.CodeInvalidType,
			fmt.Sprintf("type %q does not parse: %v", f.Type, err), r.Name, f.Name)
	}

	if f.Default != nil && f.DefaultExpr != "" {
		diags.AddError(diagnostic.CodeConflictDefault,
			"default and default_expr are mutually exclusive", r.Name, f.Name)

		return
	}

	if f.HasDefault() {
		lit, err := f.GoLiteral()
		if err == nil {
			_, err = parser.ParseExpr(lit)
		}

		if err == nil && f.Default != nil {
			err = assignable(f.Type, lit)
		}

		if err != nil {
			diags.AddError(diagnostic.CodeInvalidDefault, err.Error(), r.Name, f.Name)
		}
	}
}

// methodClash reports whether a field name collides with a method that
// generated code declares or calls on the record type.
func methodClash(r *Record, name string) bool {
	return name == "String" || (name == "PostInit" && r.PostInit)
}

// assignable reports an error when the literal lit cannot initialise a
// value of type typ. Types outside the universe scope are not checked.
func assignable(typ, lit string) error {
	fset := token.NewFileSet()

	tv, err := types.Eval(fset, nil, token.NoPos, typ)
	if err != nil || !tv.IsType() {
		return nil
	}

	if _, err := types.Eval(fset, nil, token.NoPos, "[]"+typ+"{"+lit+"}"); err != nil {
		return fmt.Errorf("default %s cannot be used as %s", lit, typ)
	}

	return nil
}
