package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/buildsettings/app"
	"github.com/lambda-feedback/buildsettings/config"
	"github.com/lambda-feedback/buildsettings/internal/shell"
	"github.com/lambda-feedback/buildsettings/settings"
	"github.com/lambda-feedback/buildsettings/util/conf"
)

func resolveAction(ctx *cli.Context) error {
	if ctx.NArg() > 1 {
		return shell.NewExitError(exitCodeUsage, fmt.Errorf(
			"expected at most one build name, got %d", ctx.NArg(),
		))
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	sh, err := app.New(ctx)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	buildName := ctx.Args().First()
	localfile := cfg.Settings.Localfile

	var command any
	if ctx.Bool("list") {
		command = func(r *settings.Resolver) error {
			return listBuilds(w, r, localfile)
		}
	} else {
		command = func(r *settings.Resolver, log *zap.Logger) error {
			res, err := r.Resolve(buildName, localfile)
			if err != nil {
				return err
			}

			log.Info("resolved build settings",
				zap.String("build", res.BuildName),
				zap.String("target_dir", res.TargetDir),
			)

			return writeSettings(w, cfg.Format, res)
		}
	}

	err = sh.Run(ctx.Context, fx.Invoke(command))
	if errors.Is(err, settings.ErrInvalidArgument) {
		return shell.NewExitError(exitCodeUsage, err)
	}

	return err
}

func listBuilds(w io.Writer, r *settings.Resolver, localfile string) error {
	catalog, err := r.Builds(localfile)
	if err != nil {
		return err
	}

	for _, name := range catalog.Builds {
		marker := " "
		if name == catalog.DefaultBuild {
			marker = "*"
		}

		if _, err := fmt.Fprintf(w, "%s %s\n", marker, name); err != nil {
			return err
		}
	}

	return nil
}
