package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"

	"golang.org/x/tools/imports"

	"record-generator/internal/common"
	"record-generator/internal/decl"
)

// RuntimeImport is the import path of the runtime package used by
// generated code.
const RuntimeImport = "record-generator/record"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the package name used when the declaration file has none.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// FixImports runs goimports over the output instead of go/format.
	FixImports bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "records",
		OutputDir:        "./generated",
		GenerateComments: true,
		FixImports:       true,
	}
}

// Generator generates Go code from record declarations.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "point_record.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate validates the declarations and generates one file per record.
func (g *Generator) Generate(f *decl.File) ([]GeneratedFile, error) {
	diags := decl.Validate(f)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid declarations: %w", err)
	}

	pkgName := f.Package
	if pkgName == "" {
		pkgName = g.config.PackageName
	}

	files := make([]GeneratedFile, 0, len(f.Records))

	for i := range f.Records {
		r := &f.Records[i]

		file, err := g.generateRecord(pkgName, f.Imports, r)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", r.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateRecord generates code for a single record.
func (g *Generator) generateRecord(pkgName string, extraImports []string, r *decl.Record) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(pkgName, extraImports, r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := recordTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := g.format(data.Filename, buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) format(filename string, src []byte) ([]byte, error) {
	if g.config.FixImports {
		return imports.Process(filename, src, &imports.Options{
			Comments:  true,
			TabIndent: true,
			TabWidth:  8,
		})
	}

	return format.Source(src)
}

// filename returns the output file name for a record.
func filename(r *decl.Record) string {
	return common.SnakeCase(r.Name) + fileSuffix
}

// importList returns the sorted imports needed by a record: the runtime
// package, the record's own imports, and those file imports whose package
// name appears in a field type or default.
func importList(r *decl.Record, fileImports []string) []string {
	out := []string{RuntimeImport}
	add := func(p string) {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}

	for _, p := range r.Imports {
		add(p)
	}

	for _, p := range fileImports {
		if referencesPackage(r, common.PkgAlias(p)) {
			add(p)
		}
	}

	slices.Sort(out)

	return out
}

func referencesPackage(r *decl.Record, alias string) bool {
	prefix := alias + "."

	for i := range r.Fields {
		f := &r.Fields[i]
		if strings.Contains(f.Type, prefix) || strings.Contains(f.DefaultExpr, prefix) {
			return true
		}
	}

	return false
}
