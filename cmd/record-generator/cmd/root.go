package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"record-generator/internal/config"
)

// app carries state shared by subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "record-generator",
		Short: "Generate record constructors and String methods",
		Long: `record-generator reads record declarations from YAML files or from Go
structs marked with a "record:generate" comment, and generates constructors
that resolve positional and named arguments against the declared fields.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			a.cfg = cfg

			log, err := newLogger(cfg.Logging.Level, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			a.log = log

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "Configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGenCmd(a), newCheckCmd(a), newInspectCmd(a))

	return root
}

// newLogger returns a console logger at the given level; verbose forces
// the development configuration.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
