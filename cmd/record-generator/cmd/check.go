package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"record-generator/internal/decl"
	"record-generator/internal/diagnostic"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		declPaths []string
		patterns  []string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate record declarations without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("decl") {
				declPaths = a.cfg.Decls
			}

			if !cmd.Flags().Changed("pkg") {
				patterns = a.cfg.Packages
			}

			sources, err := a.loadSources(declPaths, patterns)
			if err != nil {
				return err
			}

			failed := 0

			for _, src := range sources {
				diags := decl.Validate(src.file)
				printDiagnostics(cmd.OutOrStdout(), src.origin, diags)

				if diags.HasErrors() {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d sources have errors", failed, len(sources))
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&declPaths, "decl", "d", nil, "YAML declaration files")
	cmd.Flags().StringSliceVarP(&patterns, "pkg", "p", nil, "Go package patterns with marked structs")

	return cmd
}

var severityColor = map[diagnostic.Severity]*color.Color{
	diagnostic.SeverityError:   color.New(color.FgRed, color.Bold),
	diagnostic.SeverityWarning: color.New(color.FgYellow),
	diagnostic.SeverityInfo:    color.New(color.FgCyan),
}

// printDiagnostics writes one line per diagnostic, coloured by severity.
func printDiagnostics(w io.Writer, origin string, diags diagnostic.Diagnostics) {
	all := diags.All()
	if len(all) == 0 {
		fmt.Fprintf(w, "%s: %s\n", origin, color.GreenString("ok"))
		return
	}

	for _, d := range all {
		fmt.Fprintf(w, "%s: %s %s\n", origin, severityColor[d.Severity].Sprint(d.Severity), d)
	}
}
