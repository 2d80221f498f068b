package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"record-generator/internal/gen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		declPaths []string
		patterns  []string
		outDir    string
		pkgName   string
		prune     bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate record code",
		Example: `  record-generator gen --decl records.yaml --out ./records
  record-generator gen --pkg ./shapes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("decl") {
				declPaths = a.cfg.Decls
			}

			if !cmd.Flags().Changed("pkg") {
				patterns = a.cfg.Packages
			}

			if !cmd.Flags().Changed("prune") {
				prune = a.cfg.Output.Prune
			}

			if len(declPaths) == 0 && len(patterns) == 0 {
				return errors.New("nothing to generate: pass --decl or --pkg")
			}

			sources, err := a.loadSources(declPaths, patterns)
			if err != nil {
				return err
			}

			for _, src := range sources {
				gcfg := a.cfg.Generator()

				switch {
				case cmd.Flags().Changed("out"):
					gcfg.OutputDir = outDir
				case src.outDir != "":
					gcfg.OutputDir = src.outDir
				}

				if cmd.Flags().Changed("package") && src.file.Package == "" {
					src.file.Package = pkgName
				}

				if err := a.generate(src, gcfg, prune); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&declPaths, "decl", "d", nil, "YAML declaration files")
	cmd.Flags().StringSliceVarP(&patterns, "pkg", "p", nil, "Go package patterns with marked structs")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: config, or the package directory)")
	cmd.Flags().StringVar(&pkgName, "package", "", "Package name when the declaration file has none")
	cmd.Flags().BoolVar(&prune, "prune", false, "Remove stale generated record files")

	return cmd
}

func (a *app) generate(src source, gcfg gen.GeneratorConfig, prune bool) error {
	files, err := gen.NewGenerator(gcfg).Generate(src.file)
	if err != nil {
		return fmt.Errorf("%s: %w", src.origin, err)
	}

	if err := gen.WriteFiles(files, gcfg.OutputDir); err != nil {
		return err
	}

	for _, f := range files {
		a.log.Info("generated", zap.String("source", src.origin), zap.String("file", f.Filename),
			zap.String("dir", gcfg.OutputDir))
	}

	if !prune {
		return nil
	}

	removed, err := gen.PruneStale(files, gcfg.OutputDir)
	for _, name := range removed {
		a.log.Info("removed stale file", zap.String("file", name), zap.String("dir", gcfg.OutputDir))
	}

	return err
}
