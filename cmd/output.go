package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lambda-feedback/buildsettings/config"
	"github.com/lambda-feedback/buildsettings/settings"
)

// writeSettings prints the flattened settings of res in the given format.
func writeSettings(w io.Writer, format config.OutputFormat, res *settings.Resolved) error {
	flat := res.Flatten()

	switch format {
	case config.Text, "":
		return writeText(w, res.BuildName, flat)
	case config.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(flat)
	case config.YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(flat); err != nil {
			return err
		}
		return enc.Close()
	case config.Env:
		return writeEnv(w, flat)
	default:
		return fmt.Errorf("%w: output format %q", settings.ErrUnsupportedFormat, format)
	}
}

func writeText(w io.Writer, buildName string, flat map[string]any) error {
	if _, err := fmt.Fprintf(w, "settings for build: %s\n", buildName); err != nil {
		return err
	}

	for _, key := range sortedKeys(flat) {
		value, err := scalarString(flat[key])
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", key, value); err != nil {
			return err
		}
	}

	return nil
}

func writeEnv(w io.Writer, flat map[string]any) error {
	env := make(map[string]string, len(flat))
	names := make(map[string]string, len(flat))

	for _, key := range sortedKeys(flat) {
		name := envKey(key)
		if other, ok := names[name]; ok {
			return fmt.Errorf("settings %q and %q both map to variable %s", other, key, name)
		}
		names[name] = key

		str, err := scalarString(flat[key])
		if err != nil {
			return err
		}

		env[name] = str
	}

	out, err := godotenv.Marshal(env)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

// scalarString formats a setting value for line based output. Nested
// values are encoded as JSON, nil as an empty string.
func scalarString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool, int, int64, float64, uint64:
		return fmt.Sprint(v), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode setting: %w", err)
		}
		return string(b), nil
	}
}

var envKeyInvalid = regexp.MustCompile(`[^A-Z0-9_]`)

// envKey maps a setting name to an upper case variable name.
func envKey(key string) string {
	return envKeyInvalid.ReplaceAllString(strings.ToUpper(key), "_")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
