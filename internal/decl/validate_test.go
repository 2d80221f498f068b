package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-generator/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_Valid(t *testing.T) {
	f, err := Parse([]byte(shapesYAML))
	require.NoError(t, err)

	diags := Validate(f)
	assert.True(t, diags.IsValid(), "unexpected errors: %v", diags.Error())
	assert.Equal(t, []string{diagnostic.CodeEmptyRecord}, codes(diags.Infos))
}

func TestValidate_Problems(t *testing.T) {
	f, err := Parse([]byte(`
package: "not a name"
records:
  - name: Point
    fields:
      - {name: X, type: int, default: 1}
      - {name: Y, type: int}
  - name: Point
    fields:
      - {name: "1bad", type: int}
      - {name: T}
      - {name: U, type: "map[", default: 2}
      - {name: V, type: int, default: 1, default_expr: "2"}
      - {name: V, type: int, default: 3}
      - {name: __hidden, type: int}
`))
	require.NoError(t, err)

	diags := Validate(f)
	require.True(t, diags.HasErrors())

	assert.ElementsMatch(t, []string{
		diagnostic.CodeInvalidName,     // package
		diagnostic.CodeDefaultOrdering, // first Point
		diagnostic.CodeDuplicateRecord,
		diagnostic.CodeInvalidName, // 1bad
		diagnostic.CodeMissingType,
		diagnostic.CodeInvalidType,
		diagnostic.CodeConflictDefault,
	}, codes(diags.Errors))

	assert.ElementsMatch(t, []string{
		diagnostic.CodeDuplicateField,
		diagnostic.CodeReservedField,
	}, codes(diags.Warnings))

	for _, d := range diags.Errors {
		if d.Code == diagnostic.CodeDefaultOrdering {
			assert.Equal(t, "Y", d.Field)
		}
	}
}

func TestValidate_DefaultsMustFitTheirType(t *testing.T) {
	f, err := Parse([]byte(`
records:
  - name: Sizes
    post_init: true
    fields:
      - {name: Count, type: int, default: null}
      - {name: Ratio, type: int, default: 1.5}
      - {name: Small, type: uint8, default: 256}
      - {name: Title, type: string, default: 3}
      - {name: Owner, type: "*string", default: null}
      - {name: Scale, type: float64, default: 2}
      - {name: Zone, type: "*time.Location", default: null}
  - name: Clash
    post_init: true
    fields:
      - {name: String, type: string}
      - {name: PostInit, type: bool}
  - name: NoHook
    fields:
      - {name: PostInit, type: bool}
`))
	require.NoError(t, err)

	diags := Validate(f)

	var invalid []string
	for _, d := range diags.Errors {
		switch d.Code {
		case diagnostic.CodeInvalidDefault, diagnostic.CodeInvalidName:
			invalid = append(invalid, d.Record+"."+d.Field)
		}
	}

	assert.ElementsMatch(t, []string{
		"Sizes.Count",
		"Sizes.Ratio",
		"Sizes.Small",
		"Sizes.Title",
		"Clash.String",
		"Clash.PostInit",
	}, invalid)
}
