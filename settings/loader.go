package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/dotenv"
	koanfjson "github.com/knadh/koanf/parsers/json"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Loader reads a settings source and returns its top-level names.
//
// If the source does not exist, the returned error matches both
// ErrMissingResource and fs.ErrNotExist.
type Loader interface {
	Load(path string) (map[string]any, error)
}

// FileLoader loads settings sources from the filesystem. The parser is
// chosen by file extension: .json, .yaml, .yml or .env.
type FileLoader struct{}

var _ Loader = (*FileLoader)(nil)

// NewFileLoader creates a new file loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

func (l *FileLoader) Load(path string) (map[string]any, error) {
	// existence is checked first, a missing file is never a format error
	b, err := file.Provider(path).ReadBytes()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrMissingResource, path, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	parser, unflatten, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	values, err := parser.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidSource, path, err)
	}

	// dotenv files are flat, nested names are spelled with dots
	if unflatten {
		values = maps.Unflatten(values, ".")
	}

	if values == nil {
		values = map[string]any{}
	}

	// yaml mappings with non-string keys decode to map[any]any
	maps.IntfaceKeysToStrings(values)

	return values, nil
}

func parserFor(path string) (koanf.Parser, bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return koanfjson.Parser(), false, nil
	case ".yaml", ".yml":
		return koanfyaml.Parser(), false, nil
	case ".env":
		return dotenv.Parser(), true, nil
	}

	return nil, false, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// StaticLoader serves settings sources registered in memory.
type StaticLoader struct {
	sources map[string]map[string]any
}

var _ Loader = (*StaticLoader)(nil)

// NewStaticLoader creates an empty static loader.
func NewStaticLoader() *StaticLoader {
	return &StaticLoader{
		sources: make(map[string]map[string]any),
	}
}

// Register makes values available under path.
func (l *StaticLoader) Register(path string, values map[string]any) *StaticLoader {
	if values == nil {
		values = map[string]any{}
	}
	values = maps.Copy(values)
	maps.IntfaceKeysToStrings(values)

	l.sources[filepath.Clean(path)] = values
	return l
}

func (l *StaticLoader) Load(path string) (map[string]any, error) {
	values, ok := l.sources[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingResource, path, fs.ErrNotExist)
	}

	return maps.Copy(values), nil
}
