package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

// Options configures the logger created by New.
type Options struct {
	// Level is the minimum level to log, e.g. debug, info, warn.
	// Unknown levels fall back to warn.
	Level string

	// Format is either production (JSON) or development (console).
	Format string

	// App is added to every entry as the "app" field.
	App string
}

// New creates a logger writing to stderr, so stdout is left to the
// command output.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.Format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if opts.App != "" {
		config.InitialFields = map[string]any{
			"app": opts.App,
		}
	}

	config.Level = parseLevel(opts.Level)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}

func parseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.WarnLevel)
}
