// Package config loads the record-generator configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"record-generator/internal/gen"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "record-generator.yaml"

// Config represents the record-generator configuration.
type Config struct {
	// Decls are YAML declaration files to generate from.
	Decls []string `yaml:"decls"`
	// Packages are Go package patterns scanned for marked structs.
	Packages []string `yaml:"packages"`
	// Output holds generator settings.
	Output Output `yaml:"output"`
	// Logging holds logger settings.
	Logging Logging `yaml:"logging"`
}

// Output contains code generation settings.
type Output struct {
	Dir        string `yaml:"dir"`
	Package    string `yaml:"package"`
	Comments   bool   `yaml:"comments"`
	FixImports bool   `yaml:"fix_imports"`
	Prune      bool   `yaml:"prune"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	g := gen.DefaultGeneratorConfig()

	return &Config{
		Output: Output{
			Dir:        g.OutputDir,
			Package:    g.PackageName,
			Comments:   g.GenerateComments,
			FixImports: g.FixImports,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads the configuration at path over the defaults. A missing file
// at DefaultPath is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Generator returns the generator configuration for this config.
func (c *Config) Generator() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		PackageName:      c.Output.Package,
		OutputDir:        c.Output.Dir,
		GenerateComments: c.Output.Comments,
		FixImports:       c.Output.FixImports,
	}
}
