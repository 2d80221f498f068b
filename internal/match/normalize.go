package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier to lower case without separators.
// CamelCase words and acronyms are split first, then joined again, so the
// result only depends on letters and digits.
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(splitWords(s), ""))
}

// splitWords splits an identifier into words at separators, lower-to-upper
// transitions and the end of acronyms:
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "user_name" -> ["user", "name"]
func splitWords(s string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && wordStartsAt(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// wordStartsAt reports whether a new word begins at runes[i], i > 0.
func wordStartsAt(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
