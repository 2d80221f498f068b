package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AbsentIsDistinctFromNil(t *testing.T) {
	absent := NoDefault()
	assert.False(t, absent.Present())

	for _, v := range []any{nil, 0, "", false} {
		d := DefaultOf(v)
		assert.True(t, d.Present(), "default %#v should be present", v)

		got, ok := d.Value()
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestExtract_PreservesDeclarationOrder(t *testing.T) {
	fields := Extract(Declaration{
		Annotations: []Annotation{
			{Name: "zeta", Type: "int"},
			{Name: "alpha", Type: "string"},
			{Name: "mid", Type: "bool"},
		},
		Assignments: []Assignment{{Name: "mid", Value: true}},
	})

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, fields.Names())
	assert.False(t, fields.At(0).HasDefault())
	assert.False(t, fields.At(1).HasDefault())

	v, ok := fields.At(2).Default.Value()
	require.True(t, ok)
	assert.Equal(t, true, v)
}

func TestExtract_SkipsReservedAndBareAssignments(t *testing.T) {
	fields := Extract(Declaration{
		Annotations: []Annotation{
			{Name: "__module__", Type: "string"},
			{Name: "_", Type: "int"},
			{Name: "a", Type: "int"},
		},
		Assignments: []Assignment{
			{Name: "__qualname__", Value: "X"},
			{Name: "helper", Value: 42},
		},
	})

	assert.Equal(t, []string{"a"}, fields.Names())
	_, ok := fields.Lookup("helper")
	assert.False(t, ok)
}

func TestExtract_RedefinitionLastWins(t *testing.T) {
	fields := Extract(Declaration{
		Annotations: []Annotation{
			{Name: "a", Type: "int"},
			{Name: "b", Type: "int"},
			{Name: "a", Type: "string"},
		},
		Assignments: []Assignment{
			{Name: "b", Value: 1},
			{Name: "b", Value: 2},
		},
	})

	require.Equal(t, 2, fields.Len())
	assert.Equal(t, []string{"a", "b"}, fields.Names())
	assert.Equal(t, "string", fields.At(0).Type)

	v, _ := fields.At(1).Default.Value()
	assert.Equal(t, 2, v)
}

func TestFields_LookupAndIndex(t *testing.T) {
	fields := NewFields(Required("a", "int"), Optional("b", "int", 2))

	assert.Equal(t, 0, fields.Index("a"))
	assert.Equal(t, 1, fields.Index("b"))
	assert.Equal(t, -1, fields.Index("c"))

	f, ok := fields.Lookup("b")
	require.True(t, ok)
	assert.True(t, f.HasDefault())

	var seen []string
	for _, f := range fields.All() {
		seen = append(seen, f.Name)
	}

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestDeclarationOf_RoundTripsThroughExtract(t *testing.T) {
	in := []Field{Required("a", "int"), Optional("b", "string", "x")}

	fields := Extract(DeclarationOf(in...))

	require.Equal(t, 2, fields.Len())
	assert.Equal(t, in[0], fields.At(0))
	assert.Equal(t, in[1], fields.At(1))
}

func TestValidateOrdering(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Field
		wantErr string
	}{
		{name: "empty"},
		{name: "all required", fields: []Field{Required("a", "int"), Required("b", "int")}},
		{name: "all defaulted", fields: []Field{Optional("a", "int", 1), Optional("b", "int", 2)}},
		{name: "defaults last", fields: []Field{Required("a", "int"), Optional("b", "int", 2)}},
		{
			name:    "default first",
			fields:  []Field{Optional("a", "int", 1), Required("b", "int")},
			wantErr: "b",
		},
		{
			name:    "required sandwiched",
			fields:  []Field{Required("a", "int"), Optional("b", "int", 1), Required("c", "int")},
			wantErr: "c",
		},
		{
			name: "first violation is reported",
			fields: []Field{
				Optional("a", "int", 1), Required("b", "int"), Required("c", "int"),
			},
			wantErr: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrdering("T", NewFields(tt.fields...))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrOrdering)

			var rerr *Error
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, []string{tt.wantErr}, rerr.Fields)
			assert.Contains(t, err.Error(), "non-default argument '"+tt.wantErr+"'")
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "Ordering", KindOrdering.String())
	assert.Equal(t, "MissingArguments", KindMissingArguments.String())
	assert.Equal(t, "FieldType", KindFieldType.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}
