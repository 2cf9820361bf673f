package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	mf := &MappingFile{
		Mappings: []FieldMapping{
			{Direction: DirectionResponse, SourcePath: "a[0].b", TargetPath: "x"},
			{Direction: "sideways", SourcePath: "c", TargetPath: "y"},
			{Direction: DirectionResponse, SourcePath: "", TargetPath: "z"},
			{Direction: DirectionResponse, SourcePath: "d", TargetPath: " "},
			{Direction: DirectionResponse, SourcePath: "ns1:a[*].b", TargetPath: "w"},
			{Direction: DirectionRequest, SourcePath: "a.b", TargetPath: "v"},
		},
	}

	res := Validate(mf)
	require.NotNil(t, res)

	codes := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		codes = append(codes, e.Code)
	}

	assert.Equal(t, []string{"invalid_direction", "empty_source_path", "empty_target_path"}, codes)

	require.Len(t, res.Warnings, 1, "only same-direction duplicates are reported")
	assert.Equal(t, "duplicate_source_path", res.Warnings[0].Code)
	assert.Equal(t, "ns1:a[*].b", res.Warnings[0].Path)
	assert.Equal(t, []string{"a[0].b"}, res.Warnings[0].Suggestions)
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, "mapping_is_nil", res.Errors[0].Code)
}

func TestValidateClean(t *testing.T) {
	mf := &MappingFile{Mappings: []FieldMapping{
		{Direction: DirectionResponse, SourcePath: "a", TargetPath: "b"},
	}}

	res := Validate(mf)
	assert.True(t, res.IsValid())
	assert.Empty(t, res.Warnings)
}

func TestFilter(t *testing.T) {
	ms := []FieldMapping{
		{Direction: DirectionResponse, SourcePath: "data.Cidade", TargetPath: "city"},
		{Direction: DirectionRequest, SourcePath: "cep", TargetPath: "postalCode"},
		{Direction: DirectionResponse, SourcePath: "data.uf", TargetPath: "state"},
	}

	assert.Len(t, Filter(ms, "", ""), 3)
	assert.Len(t, Filter(ms, DirectionResponse, ""), 2)
	assert.Equal(t, "cep", Filter(ms, "", "POSTAL")[0].SourcePath)
	assert.Equal(t, "data.Cidade", Filter(ms, DirectionResponse, "cidade")[0].SourcePath)
	assert.Empty(t, Filter(ms, DirectionRequest, "cidade"))
	assert.Empty(t, Filter(nil, "", "x"))

	assert.Len(t, ByDirection(ms, DirectionRequest), 1)
}
