package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// generatedHeader starts every file written by this package.
const generatedHeader = "// Code generated by record-generator. DO NOT EDIT."

// fileSuffix is the name suffix of generated record files.
const fileSuffix = "_record.go"

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// PruneStale removes generated record files in outputDir that are not part
// of files. Only files carrying our generated header are touched. It returns
// the names of removed files.
func PruneStale(files []GeneratedFile, outputDir string) ([]string, error) {
	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f.Filename] = true
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	var removed []string

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || keep[name] || !strings.HasSuffix(name, fileSuffix) {
			continue
		}

		path := filepath.Join(outputDir, name)

		content, err := os.ReadFile(path)
		if err != nil {
			return removed, fmt.Errorf("reading %s: %w", name, err)
		}

		if !bytes.HasPrefix(content, []byte(generatedHeader)) {
			continue
		}

		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("removing %s: %w", name, err)
		}

		removed = append(removed, name)
	}

	return removed, nil
}
