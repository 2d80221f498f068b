package common

import (
	"path"
	"strconv"
	"strings"
	"unicode"
)

// PkgAlias returns the name an import path is referred to by when imported
// without an explicit name. A trailing major version element ("/v2") is
// skipped.
func PkgAlias(importPath string) string {
	if importPath == "" {
		return ""
	}

	base := path.Base(importPath)
	if v, ok := strings.CutPrefix(base, "v"); ok {
		if _, err := strconv.Atoi(v); err == nil && strings.Contains(importPath, "/") {
			base = path.Base(path.Dir(importPath))
		}
	}

	return base
}

// SnakeCase converts a Go identifier to snake_case ("HTTPServer" -> "http_server").
func SnakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if i > 0 && runes[i-1] != '_' && (prevLower || nextLower) {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// LowerFirst lowercases the leading rune of s.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}
