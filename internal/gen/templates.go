package gen

import "text/template"

// Template for the record file

var recordTemplate = template.Must(template.New("record").Parse(`// Code generated by record-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	"{{.}}"
{{end}})
{{if not .Declared}}
{{if .GenerateComments}}// {{.Name}} is a record type.
{{end}}type {{.Name}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}
{{end}}
{{if .Defaults}}
var (
{{range .Defaults}}	{{.Var}} {{.Type}} = {{.Expr}}
{{end}})
{{end}}
{{if .GenerateComments}}// {{.ClassVar}} holds the field layout of {{.Name}}.
{{end}}var {{.ClassVar}} = record.MustDefine("{{.Name}}", record.Declaration{
	Annotations: []record.Annotation{
{{range .Fields}}		{Name: "{{.Name}}", Type: {{printf "%q" .Type}}},
{{end}}	},
	Assignments: []record.Assignment{
{{range .Defaults}}		{Name: "{{.Field}}", Value: {{.Var}}},
{{end}}	},
})

{{if .GenerateComments}}// New{{.Name}} builds a {{.Name}} from positional and named arguments.
{{end}}func New{{.Name}}(args record.Args) (*{{.Name}}, error) {
{{- if .Fields}}
	values, err := {{.ClassVar}}.Resolve(args)
	if err != nil {
		return nil, err
	}

	out := &{{.Name}}{}
{{range .Fields}}
	if out.{{.Name}}, err = record.Value[{{.Type}}]({{$.ClassVar}}, values, {{.Index}}); err != nil {
		return nil, err
	}
{{end}}
{{- else}}
	if _, err := {{.ClassVar}}.Resolve(args); err != nil {
		return nil, err
	}

	out := &{{.Name}}{}
{{end}}
{{- if .PostInit}}
	out.PostInit()
{{end}}
	return out, nil
}
{{if .EmitString}}
{{if .GenerateComments}}// String renders the {{.Name}} as {{.Name}}(field=value, ...).
{{end}}func (r {{.Name}}) String() string {
	return {{.ClassVar}}.Format({{range $i, $f := .Fields}}{{if $i}}, {{end}}r.{{$f.Name}}{{end}})
}
{{end}}`))
