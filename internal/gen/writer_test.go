package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	files := []GeneratedFile{
		{Filename: "a_record.go", Content: []byte("package a\n")},
		{Filename: "b_record.go", Content: []byte("package a\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)
	}
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "point_record.go", []byte("broken")))
	assert.FileExists(t, filepath.Join(dir, "point_record.unformatted.go"))

	assert.NoError(t, writeDebugUnformatted("", "x.go", nil))
}

func TestPruneStale(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	write("point_record.go", generatedHeader+"\n\npackage a\n")
	write("old_record.go", generatedHeader+"\n\npackage a\n")
	write("manual_record.go", "package a\n")
	write("other.go", generatedHeader+"\n")

	removed, err := PruneStale([]GeneratedFile{{Filename: "point_record.go"}}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"old_record.go"}, removed)

	assert.FileExists(t, filepath.Join(dir, "point_record.go"))
	assert.FileExists(t, filepath.Join(dir, "manual_record.go"))
	assert.FileExists(t, filepath.Join(dir, "other.go"))
	assert.NoFileExists(t, filepath.Join(dir, "old_record.go"))
}
