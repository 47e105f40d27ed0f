package settings

// Config is the settings resolver configuration.
type Config struct {
	// Source is the path of the base settings source.
	Source string `conf:"source"`

	// Localfile is a local override source requested by the caller.
	// Unlike the default local file named by the source, it must exist.
	Localfile string `conf:"localfile"`

	// BaseDir is the build source directory used when no local override
	// source is applied. Defaults to the directory of Source.
	BaseDir string `conf:"base_dir"`
}

// DefaultConfig holds the default values for Config.
var DefaultConfig = map[string]any{
	"source": "buildsettings.yaml",
}
