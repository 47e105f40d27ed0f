package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New()
	if err != nil {
		t.Errorf("New() returned an error: %v", err)
	}
}

func TestSchema_Validate_Source(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	err = s.Validate(SchemaTypeSource, map[string]any{
		"defaults":      map[string]any{"minify": true},
		"builds":        map[string]any{"local": map[string]any{}, "empty": nil},
		"default_build": "local",
		"localfile":     "localbuildsettings.yaml",
		"unrelated":     42,
	})
	assert.NoError(t, err)
}

func TestSchema_Validate_SourceMissingBuilds(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	err = s.Validate(SchemaTypeSource, map[string]any{
		"defaults": map[string]any{},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, SchemaTypeSource, verr.Type)
	assert.Contains(t, err.Error(), "builds")
}

func TestSchema_Validate_SourceProfileNotObject(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	err = s.Validate(SchemaTypeSource, map[string]any{
		"defaults": map[string]any{},
		"builds":   map[string]any{"local": "nope"},
	})
	assert.Error(t, err)
}

func TestSchema_Validate_OverridesEmpty(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	assert.NoError(t, s.Validate(SchemaTypeOverrides, map[string]any{}))
}

func TestSchema_Validate_OverridesWrongDefaultBuild(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	err = s.Validate(SchemaTypeOverrides, map[string]any{
		"default_build": []any{"a", "b"},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, SchemaTypeOverrides, verr.Type)
}

func TestSchema_Get_Unknown(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	_, err = s.Get(SchemaType(99))
	assert.ErrorIs(t, err, errSchemaNotFound)
}
