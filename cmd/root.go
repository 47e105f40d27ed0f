package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/buildsettings/config"
	"github.com/lambda-feedback/buildsettings/internal/shell"
	"github.com/lambda-feedback/buildsettings/util/conf"
	"github.com/lambda-feedback/buildsettings/util/logging"
)

const (
	envPrefix = "BUILDSETTINGS_"

	// exitCodeUsage is returned for invalid arguments, the same way
	// usage errors are reported by the cli.
	exitCodeUsage = 2
)

var (
	appName  = "buildsettings"
	appUsage = `Resolve the settings of a named build by merging the base
build settings with optional local overrides.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		ArgsUsage:       "[build]",
		HideHelpCommand: true,
		Args:            true,
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error.",
				EnvVars: []string{envPrefix + "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{envPrefix + "LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load command defaults from a JSON file.",
				EnvVars: []string{envPrefix + "CONFIG"},
			},
			// settings flags
			&cli.PathFlag{
				Name:     "source",
				Aliases:  []string{"s"},
				Usage:    "the base build settings file.",
				Category: "settings",
				EnvVars:  []string{envPrefix + "SOURCE"},
			},
			&cli.PathFlag{
				Name:     "localfile",
				Aliases:  []string{"l"},
				Usage:    "a local overrides file, which must exist. Defaults to the localfile named by the settings.",
				Category: "settings",
				EnvVars:  []string{envPrefix + "LOCALFILE"},
			},
			&cli.PathFlag{
				Name:     "base-dir",
				Usage:    "the build source directory if no local overrides apply. Defaults to the directory of the settings file.",
				Category: "settings",
				EnvVars:  []string{envPrefix + "BASE_DIR"},
			},
			// output flags
			&cli.StringFlag{
				Name:     "format",
				Aliases:  []string{"f"},
				Usage:    "the output format. Options: text, json, yaml, env.",
				Category: "output",
				EnvVars:  []string{envPrefix + "FORMAT"},
			},
			&cli.BoolFlag{
				Name:     "list",
				Usage:    "list the available builds instead of resolving one.",
				Category: "output",
			},
		},
		Before: func(ctx *cli.Context) error {
			// parse config using defaults, file, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:       ctx,
				CliMap:    cliMap,
				Defaults:  config.DefaultConfig,
				EnvPrefix: envPrefix,
				FileName:  ctx.Path("config"),
			})
			if err != nil {
				return err
			}

			if !slices.Contains(config.OutputFormats, cfg.Format) {
				return shell.NewExitError(exitCodeUsage, fmt.Errorf("unknown output format %q", cfg.Format))
			}

			// create the logger
			log, err := logging.New(logging.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				App:    appName,
			})
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		OnUsageError: func(ctx *cli.Context, err error, isSubcommand bool) error {
			return shell.NewExitError(exitCodeUsage, err)
		},
		After: func(ctx *cli.Context) error {
			_ = logging.LoggerFromContextOrNop(ctx.Context).Sync()
			return nil
		},
		Action: resolveAction,
	}

	// cliMap maps flag names to config keys, flags mapped to
	// an empty key are not part of the config
	cliMap = map[string]string{
		"source":    "settings.source",
		"localfile": "settings.localfile",
		"base-dir":  "settings.base_dir",
		"config":    "",
		"list":      "",
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the root command with the process arguments and returns
// the exit code.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	code := shell.ExitCode(err)

	// usage errors are expected, everything else is reported
	if code == exitCodeUsage {
		fmt.Fprintf(rootApp.ErrWriter, "%s: error: %s\n", appName, err.Error())
	} else {
		sentry.CaptureException(err)
		fmt.Fprintf(rootApp.ErrWriter, "exit error: %s\n", err.Error())
	}

	return code
}
