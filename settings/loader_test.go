package settings_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/buildsettings/settings"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestFileLoader_Load_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "buildsettings.yaml", `
defaults:
  minify: true
builds:
  local:
    url: http://localhost
`)

	values, err := settings.NewFileLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"minify": true}, values["defaults"])
	assert.Equal(t, map[string]any{"local": map[string]any{"url": "http://localhost"}}, values["builds"])
}

func TestFileLoader_Load_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "buildsettings.json", `{
  "defaults": {"minify": false},
  "default_build": "release"
}`)

	values, err := settings.NewFileLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"minify": false}, values["defaults"])
	assert.Equal(t, "release", values["default_build"])
}

func TestFileLoader_Load_Dotenv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "local.env", `
default_build=dev
builds.dev.url=http://localhost:8000
defaults.minify=false
`)

	values, err := settings.NewFileLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", values["default_build"])
	assert.Equal(t, map[string]any{"dev": map[string]any{"url": "http://localhost:8000"}}, values["builds"])
	assert.Equal(t, map[string]any{"minify": "false"}, values["defaults"])
}

func TestFileLoader_Load_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "local.yaml", "")

	values, err := settings.NewFileLoader().Load(path)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestFileLoader_Load_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := settings.NewFileLoader().Load(path)
	assert.ErrorIs(t, err, settings.ErrMissingResource)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileLoader_Load_MissingWithUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	_, err := settings.NewFileLoader().Load(path)
	assert.ErrorIs(t, err, settings.ErrMissingResource)
	assert.NotErrorIs(t, err, settings.ErrUnsupportedFormat)
}

func TestFileLoader_Load_NonStringKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), "buildsettings.yaml", `
defaults:
  ports:
    1: a
    true: b
builds:
  local:
    - 2: c
`)

	values, err := settings.NewFileLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"ports": map[string]any{"1": "a", "true": "b"},
	}, values["defaults"])
	assert.Equal(t, map[string]any{
		"local": []any{map[string]any{"2": "c"}},
	}, values["builds"])
}

func TestFileLoader_Load_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "localbuildsettings.py", "defaults = {}")

	_, err := settings.NewFileLoader().Load(path)
	assert.ErrorIs(t, err, settings.ErrUnsupportedFormat)
}

func TestFileLoader_Load_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.json", `{"defaults": `)

	_, err := settings.NewFileLoader().Load(path)
	assert.ErrorIs(t, err, settings.ErrInvalidSource)
	assert.NotErrorIs(t, err, settings.ErrMissingResource)
}

func TestStaticLoader_Load(t *testing.T) {
	loader := settings.NewStaticLoader().
		Register("conf/buildsettings.yaml", map[string]any{
			"defaults": map[string]any{"a": 1},
		})

	values, err := loader.Load("conf/./buildsettings.yaml")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, values["defaults"])

	// the returned map is a copy
	values["defaults"].(map[string]any)["a"] = 2

	again, err := loader.Load("conf/buildsettings.yaml")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, again["defaults"])
}

func TestStaticLoader_Load_Missing(t *testing.T) {
	_, err := settings.NewStaticLoader().Load("nope.yaml")
	assert.ErrorIs(t, err, settings.ErrMissingResource)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStaticLoader_Register_NonStringKeys(t *testing.T) {
	loader := settings.NewStaticLoader().Register("buildsettings.yaml", map[string]any{
		"defaults": map[any]any{1: "a"},
	})

	values, err := loader.Load("buildsettings.yaml")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"1": "a"}, values["defaults"])
}
