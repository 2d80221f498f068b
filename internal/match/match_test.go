package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
		{"ab", "ba", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "%q vs %q", tt.b, tt.a)
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("abcd", "abce"), 1e-9)
}

func TestNormalizeIdent(t *testing.T) {
	tests := map[string]string{
		"OrderID":   "orderid",
		"order_id":  "orderid",
		"XMLParser": "xmlparser",
		"user-name": "username",
		"":          "",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeIdent(in), in)
	}

	assert.InDelta(t, 1.0, IdentSimilarity("userID", "user_id"), 1e-9)
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"Order", "ID"}, splitWords("OrderID"))
	assert.Equal(t, []string{"XML", "Parser"}, splitWords("XMLParser"))
	assert.Equal(t, []string{"get", "HTTP", "Response"}, splitWords("getHTTPResponse"))
	assert.Equal(t, []string{"user", "name"}, splitWords("user__name"))
	assert.Nil(t, splitWords(""))
}

func TestSuggest(t *testing.T) {
	fields := []string{"Width", "Height", "Depth"}

	got, ok := Suggest("widht", fields, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "Width", got)

	got, ok = Suggest("height", fields, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "Height", got)

	_, ok = Suggest("colour", fields, DefaultThreshold)
	assert.False(t, ok)

	_, ok = Suggest("x", nil, DefaultThreshold)
	assert.False(t, ok)
}
