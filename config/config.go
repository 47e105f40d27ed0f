package config

import (
	"github.com/lambda-feedback/buildsettings/settings"
	"github.com/lambda-feedback/buildsettings/util/conf"
)

type OutputFormat string

const (
	Text OutputFormat = "text"
	JSON OutputFormat = "json"
	YAML OutputFormat = "yaml"
	Env  OutputFormat = "env"
)

// OutputFormats lists the supported output formats.
var OutputFormats = []OutputFormat{Text, JSON, YAML, Env}

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Format is the format the resolved settings are printed in
	Format OutputFormat `conf:"format"`

	// Settings is the settings resolver configuration
	Settings settings.Config `conf:"settings"`
}

var DefaultConfig = conf.Overlay(
	conf.DefaultConfig{
		"log_level":  "warn",
		"log_format": "production",
		"format":     string(Text),
	},
	conf.MergeDefaults("settings", conf.DefaultConfig(settings.DefaultConfig)),
)
