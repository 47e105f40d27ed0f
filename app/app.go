package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/buildsettings/config"
	"github.com/lambda-feedback/buildsettings/internal/shell"
	"github.com/lambda-feedback/buildsettings/settings"
	"github.com/lambda-feedback/buildsettings/util/conf"
	"github.com/lambda-feedback/buildsettings/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide settings resolver
		settings.Module(config.Settings),
	)

	return shell.New(log, sharedModule), nil
}
