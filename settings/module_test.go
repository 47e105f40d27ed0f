package settings_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/buildsettings/settings"
)

func TestModule_ProvidesResolver(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "buildsettings.json", `{
  "defaults": {"minify": true},
  "builds": {"local": {}},
  "default_build": "local"
}`)

	var resolver *settings.Resolver

	app := fxtest.New(t,
		fx.Supply(zaptest.NewLogger(t)),
		settings.Module(settings.Config{Source: source}),
		fx.Populate(&resolver),
	)
	defer app.RequireStart().RequireStop()

	require.NotNil(t, resolver)

	res, err := resolver.Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, "local", res.BuildName)
	assert.Equal(t, filepath.Join(dir, "build", "local"), res.TargetDir)
}

func TestModule_FailsWithoutSource(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		fx.Supply(zaptest.NewLogger(t)),
		settings.Module(settings.Config{}),
		fx.Invoke(func(*settings.Resolver) {}),
	)

	assert.Error(t, app.Err())
}
