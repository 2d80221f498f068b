package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		declPaths []string
		patterns  []string
		raw       bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the extracted field layout of each record",
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

			w := cmd.OutOrStdout()
			dump := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

			for _, src := range sources {
				for i := range src.file.Records {
					r := &src.file.Records[i]
					layout := r.Layout()

					if raw {
						fmt.Fprintf(w, "# %s %s\n", src.origin, r.Name)
						dump.Fdump(w, layout)

						continue
					}

					fmt.Fprintf(w, "%s (%s)\n", r.Name, src.origin)

					for j, f := range layout.All() {
						def := "-"
						if v, ok := f.Default.Value(); ok {
							def = fmt.Sprint(v)
						}

						fmt.Fprintf(w, "  %d  %-16s %-20s default=%s\n", j, f.Name, f.Type, def)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&declPaths, "decl", "d", nil, "YAML declaration files")
	cmd.Flags().StringSliceVarP(&patterns, "pkg", "p", nil, "Go package patterns with marked structs")
	cmd.Flags().BoolVar(&raw, "raw", false, "Dump descriptors with go-spew")

	return cmd
}
