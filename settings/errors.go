package settings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned when the requested build cannot be
	// determined or does not exist.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingResource is returned when a required settings source
	// does not exist.
	ErrMissingResource = errors.New("missing resource")

	// ErrInvalidSource is returned when a settings source does not match
	// its expected shape.
	ErrInvalidSource = errors.New("invalid settings source")

	// ErrUnsupportedFormat is returned when no parser is known for a
	// settings source file.
	ErrUnsupportedFormat = errors.New("unsupported settings format")
)

var errBuildNotSpecified = fmt.Errorf("%w: build name not specified", ErrInvalidArgument)

// BuildNotFoundError is returned when the requested build name is not
// defined by any settings source.
type BuildNotFoundError struct {
	Name      string
	Available []string
}

func (e *BuildNotFoundError) Error() string {
	return fmt.Sprintf(
		"name not found in settings: %s\n(available build names: %s)",
		e.Name,
		strings.Join(e.Available, ", "),
	)
}

func (e *BuildNotFoundError) Unwrap() error {
	return ErrInvalidArgument
}
