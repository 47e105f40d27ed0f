package settings

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/buildsettings/util/logging"
)

// Module provides a settings module.
func Module(config Config) fx.Option {
	return fx.Module(
		"settings",

		// rename logger for module
		logging.DecorateLogger("settings"),

		// provide settings config
		fx.Supply(config),

		// provide file based source loader
		fx.Provide(fx.Annotate(NewFileLoader, fx.As(new(Loader)))),

		// provide resolver
		fx.Provide(NewResolver),
	)
}
