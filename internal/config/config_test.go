package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
decls: [records.yaml]
packages: [./shapes]
output:
  dir: ./out
  comments: false
  prune: true
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"records.yaml"}, cfg.Decls)
	assert.Equal(t, []string{"./shapes"}, cfg.Packages)
	assert.Equal(t, "debug", cfg.Logging.Level)

	g := cfg.Generator()
	assert.Equal(t, "./out", g.OutputDir)
	assert.Equal(t, "records", g.PackageName)
	assert.False(t, g.GenerateComments)
	assert.True(t, g.FixImports)
	assert.True(t, cfg.Output.Prune)
}
