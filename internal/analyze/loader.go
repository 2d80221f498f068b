package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"record-generator/internal/decl"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects record declarations.
type Analyzer struct {
	records  map[TypeID]*RecordInfo
	order    []TypeID
	packages map[string]*PackageInfo
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		records:  make(map[TypeID]*RecordInfo),
		packages: make(map[string]*PackageInfo),
	}
}

// LoadPackages loads the specified packages and collects their records.
// Patterns are standard Go package patterns (e.g., "./shapes").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*RecordInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.Records(), nil
}

// Records returns the collected records in load order.
func (a *Analyzer) Records() []*RecordInfo {
	out := make([]*RecordInfo, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.records[id])
	}

	return out
}

// Package returns information about a loaded package, or nil.
func (a *Analyzer) Package(pkgPath string) *PackageInfo {
	return a.packages[pkgPath]
}

// DeclRecords converts the collected records for code generation.
func (a *Analyzer) DeclRecords() []decl.Record {
	out := make([]decl.Record, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.records[id].Record())
	}

	return out
}

// processPackage extracts marked struct types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	generated := generatedFiles(pkg)

	for _, name := range markedTypes(pkg.Syntax) {
		obj := pkg.Types.Scope().Lookup(name)

		typeName, ok := obj.(*types.TypeName)
		if !ok {
			return fmt.Errorf("marked type %s not found in scope", name)
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			return fmt.Errorf("%s is an alias, records must be defined types", name)
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			return fmt.Errorf("%s is not a struct", name)
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		info := a.analyzeStruct(pkg.Types, st)
		info.ID = id
		info.PostInit = hasMethod(pkg, generated, named, "PostInit", false)
		info.Stringer = hasMethod(pkg, generated, named, "String", true)

		if _, seen := a.records[id]; !seen {
			a.order = append(a.order, id)
		}

		a.records[id] = info
		pkgInfo.Records = append(pkgInfo.Records, id)
	}

	a.packages[pkg.PkgPath] = pkgInfo

	return nil
}

// markedTypes returns the names of type specs carrying the record directive,
// in source order.
func markedTypes(files []*ast.File) []string {
	var names []string

	for _, file := range files {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				if hasDirective(doc) {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}

	return names
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if text == Directive {
			return true
		}
	}

	return false
}

// analyzeStruct extracts fields from a struct type, qualifying type names
// relative to the declaring package.
func (a *Analyzer) analyzeStruct(pkg *types.Package, st *types.Struct) *RecordInfo {
	info := &RecordInfo{}
	imports := make(map[string]bool)
	qualifier := func(other *types.Package) string {
		if other == pkg {
			return ""
		}

		imports[other.Path()] = true

		return other.Name()
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Type:     types.TypeString(field.Type(), qualifier),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}

	for path := range imports {
		info.Imports = append(info.Imports, path)
	}

	slices.Sort(info.Imports)

	return info
}

// generatedFiles returns the names of files carrying a "Code generated"
// header. Methods found there are our own output and are ignored.
func generatedFiles(pkg *packages.Package) map[string]bool {
	out := make(map[string]bool)

	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			out[pkg.Fset.Position(file.Pos()).Filename] = true
		}
	}

	return out
}

// hasMethod reports whether T or *T has a hand-written method name taking
// no arguments and returning either nothing or a single value, as selected
// by result.
func hasMethod(pkg *packages.Package, generated map[string]bool, named *types.Named, name string, result bool) bool {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(named), true, pkg.Types, name)

	fn, ok := obj.(*types.Func)
	if !ok || generated[pkg.Fset.Position(fn.Pos()).Filename] {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 {
		return false
	}

	if result {
		return sig.Results().Len() == 1
	}

	return sig.Results().Len() == 0
}

// GetRecord returns the record for a type in a loaded package.
func (a *Analyzer) GetRecord(pkgPath, typeName string) (*RecordInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info, ok := a.records[id]
	if !ok {
		return nil, fmt.Errorf("record %s not found", id)
	}

	return info, nil
}
