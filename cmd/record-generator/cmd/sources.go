package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"record-generator/internal/analyze"
	"record-generator/internal/decl"
)

// source is one declaration file to generate from, with its output
// directory ("" means the configured default).
type source struct {
	origin string
	file   *decl.File
	outDir string
}

// loadSources collects declarations from YAML files and Go packages.
// Records from one Go package become one file written next to its sources.
func (a *app) loadSources(declPaths, patterns []string) ([]source, error) {
	var out []source

	for _, path := range declPaths {
		f, err := decl.LoadFile(path)
		if err != nil {
			return nil, err
		}

		a.log.Debug("loaded declarations", zap.String("file", path), zap.Int("records", len(f.Records)))
		out = append(out, source{origin: path, file: f})
	}

	if len(patterns) == 0 {
		return out, nil
	}

	analyzer := analyze.NewAnalyzer()
	if _, err := analyzer.LoadPackages(patterns...); err != nil {
		return nil, fmt.Errorf("analyzing packages: %w", err)
	}

	byPkg := make(map[string]int)

	for _, r := range analyzer.DeclRecords() {
		i, ok := byPkg[r.PkgPath]
		if !ok {
			pkg := analyzer.Package(r.PkgPath)
			i = len(out)
			byPkg[r.PkgPath] = i
			out = append(out, source{
				origin: r.PkgPath,
				file:   &decl.File{Version: "1", Package: pkg.Name},
				outDir: pkg.Dir,
			})
		}

		out[i].file.Records = append(out[i].file.Records, r)
	}

	a.log.Debug("analyzed packages", zap.Strings("patterns", patterns), zap.Int("packages", len(byPkg)))

	return out, nil
}
