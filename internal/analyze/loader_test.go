package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapesPkg = "record-generator/examples/shapes"

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	records, err := analyzer.LoadPackages(shapesPkg)
	require.NoError(t, err)

	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.ID.Name)
	}

	// Source order, unmarked types excluded.
	assert.Equal(t, []string{"Point", "Label", "Stamp", "Unit"}, names)

	pkg := analyzer.Package(shapesPkg)
	require.NotNil(t, pkg)
	assert.Equal(t, "shapes", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
	assert.Len(t, pkg.Records, 4)
}

func TestAnalyzer_PointFields(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(shapesPkg)
	require.NoError(t, err)

	point, err := analyzer.GetRecord(shapesPkg, "Point")
	require.NoError(t, err)
	require.Len(t, point.Fields, 2)

	assert.Equal(t, "X", point.Fields[0].Name)
	assert.Equal(t, "int", point.Fields[0].Type)

	_, ok := point.Fields[0].DefaultExpr()
	assert.False(t, ok)

	expr, ok := point.Fields[1].DefaultExpr()
	require.True(t, ok)
	assert.Equal(t, "0", expr)

	// Generated String methods are ignored, so regeneration keeps them.
	assert.False(t, point.Stringer)
	assert.False(t, point.PostInit)
}

func TestAnalyzer_LabelSkipsTaggedFieldAndFindsPostInit(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(shapesPkg)
	require.NoError(t, err)

	label, err := analyzer.GetRecord(shapesPkg, "Label")
	require.NoError(t, err)
	assert.True(t, label.PostInit)

	r := label.Record()
	assert.True(t, r.Declared)
	assert.True(t, r.PostInit)

	var names []string
	for _, f := range r.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"Text", "Size", "Tags"}, names)
	assert.Equal(t, "[]string", r.Fields[2].Type)
	assert.Equal(t, "nil", r.Fields[2].DefaultExpr)
}

func TestAnalyzer_StampQualifiesExternalTypes(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(shapesPkg)
	require.NoError(t, err)

	stamp, err := analyzer.GetRecord(shapesPkg, "Stamp")
	require.NoError(t, err)

	assert.Equal(t, "time.Time", stamp.Fields[0].Type)
	assert.Equal(t, "*time.Location", stamp.Fields[1].Type)
	assert.Equal(t, []string{"time"}, stamp.Imports)
}

func TestAnalyzer_GetRecordMissing(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(shapesPkg)
	require.NoError(t, err)

	_, err = analyzer.GetRecord(shapesPkg, "Ignored")
	assert.Error(t, err)
}

func TestAnalyzer_DeclRecords(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(shapesPkg)
	require.NoError(t, err)

	records := analyzer.DeclRecords()
	require.Len(t, records, 4)

	for _, r := range records {
		assert.True(t, r.Declared, r.Name)
		assert.Equal(t, shapesPkg, r.PkgPath)
	}

	assert.Empty(t, records[3].Fields)
}

func TestFieldInfo_Skipped(t *testing.T) {
	tests := []struct {
		name  string
		field FieldInfo
		want  bool
	}{
		{name: "plain", field: FieldInfo{Name: "A"}},
		{name: "blank", field: FieldInfo{Name: "_"}, want: true},
		{name: "embedded", field: FieldInfo{Name: "Base", Embedded: true}, want: true},
		{name: "tagged", field: FieldInfo{Name: "A", Tag: `record:"-"`}, want: true},
		{name: "other tag", field: FieldInfo{Name: "A", Tag: `json:"a"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Skipped())
		})
	}
}
