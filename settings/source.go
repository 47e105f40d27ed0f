package settings

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/maps"

	"github.com/lambda-feedback/buildsettings/settings/schema"
	"github.com/lambda-feedback/buildsettings/util"
)

// Profile holds the settings a single build overrides.
type Profile map[string]any

// Source is the base settings source.
type Source struct {
	// Defaults apply to every build unless a profile overrides them.
	Defaults map[string]any `conf:"defaults"`

	// Builds maps build names to their profiles.
	Builds map[string]Profile `conf:"builds"`

	// DefaultBuild is used when no build name is requested.
	DefaultBuild string `conf:"default_build"`

	// Localfile is the path of the default local override source.
	Localfile string `conf:"localfile"`
}

// Overrides is a local override source. Every field is optional.
type Overrides struct {
	Defaults     map[string]any     `conf:"defaults"`
	Builds       map[string]Profile `conf:"builds"`
	DefaultBuild string             `conf:"default_build"`
}

var contracts = util.Must(schema.New())

// DecodeSource checks raw against the source contract and decodes it.
func DecodeSource(raw map[string]any) (Source, error) {
	var src Source

	if err := contracts.Validate(schema.SchemaTypeSource, raw); err != nil {
		return src, contractError(err)
	}

	if err := decode(raw, &src); err != nil {
		return src, err
	}

	return src, nil
}

// DecodeOverrides checks raw against the overrides contract and decodes it.
func DecodeOverrides(raw map[string]any) (Overrides, error) {
	var ovr Overrides

	if err := contracts.Validate(schema.SchemaTypeOverrides, raw); err != nil {
		return ovr, contractError(err)
	}

	if err := decode(raw, &ovr); err != nil {
		return ovr, err
	}

	return ovr, nil
}

func decode(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "conf",
		Result:  out,
	})
	if err != nil {
		return err
	}

	// decode a copy so the result never aliases the loader's maps
	if err := decoder.Decode(maps.Copy(raw)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	return nil
}

func contractError(err error) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	// the document could not be checked at all
	return fmt.Errorf("%w: check contract: %w", ErrInvalidSource, err)
}
