package gen

import (
	"fmt"

	"record-generator/internal/common"
	"record-generator/internal/decl"
)

// templateData holds all data needed for the record template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []string
	Name             string
	ClassVar         string
	Fields           []fieldData
	Defaults         []defaultData
	Declared         bool
	PostInit         bool
	EmitString       bool
	GenerateComments bool
}

// fieldData is one struct field, in declaration order.
type fieldData struct {
	Name  string
	Type  string
	Index int
}

// defaultData is one typed default value variable.
type defaultData struct {
	Field string
	Var   string
	Type  string
	Expr  string
}

// buildTemplateData constructs the template data for a record. Field order
// and defaults come from the extracted layout, so reserved names are
// dropped and redeclared fields collapse like at runtime.
func (g *Generator) buildTemplateData(pkgName string, fileImports []string, r *decl.Record) (*templateData, error) {
	base := common.LowerFirst(r.Name)

	data := &templateData{
		PackageName:      pkgName,
		Filename:         filename(r),
		Imports:          importList(r, fileImports),
		Name:             r.Name,
		ClassVar:         base + "Record",
		Declared:         r.Declared,
		PostInit:         r.PostInit,
		EmitString:       !r.HasString,
		GenerateComments: g.config.GenerateComments,
	}

	layout := r.Layout()

	for i, f := range layout.All() {
		data.Fields = append(data.Fields, fieldData{Name: f.Name, Type: f.Type, Index: i})

		lit, ok := f.Default.Value()
		if !ok {
			continue
		}

		expr, isString := lit.(string)
		if !isString {
			return nil, fmt.Errorf("field %s: default is not a Go expression", f.Name)
		}

		data.Defaults = append(data.Defaults, defaultData{
			Field: f.Name,
			Var:   base + "Default" + f.Name,
			Type:  f.Type,
			Expr:  expr,
		})
	}

	return data, nil
}
