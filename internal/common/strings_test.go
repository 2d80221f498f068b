package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Point":      "point",
		"OrderItem":  "order_item",
		"HTTPServer": "http_server",
		"userID":     "user_id",
		"already_ok": "already_ok",
		"":           "",
	}

	for in, want := range tests {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "point", LowerFirst("Point"))
	assert.Equal(t, "", LowerFirst(""))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "shapes", PkgAlias("record-generator/examples/shapes"))
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "yaml", PkgAlias("github.com/goccy/go-yaml/yaml"))
	assert.Equal(t, "color", PkgAlias("github.com/fatih/color/v2"))
	assert.Equal(t, "v2", PkgAlias("v2"))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)
}
