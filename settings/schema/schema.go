package schema

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type SchemaType int

const (
	// SchemaTypeSource describes the base settings source.
	SchemaTypeSource SchemaType = iota

	// SchemaTypeOverrides describes a local override source.
	SchemaTypeOverrides
)

func (t SchemaType) String() string {
	switch t {
	case SchemaTypeSource:
		return "source"
	case SchemaTypeOverrides:
		return "overrides"
	default:
		return "unknown"
	}
}

var errSchemaNotFound = errors.New("schema not found")

type Schema struct {
	schemas map[SchemaType]*gojsonschema.Schema
}

func new(source *gojsonschema.Schema, overrides *gojsonschema.Schema) *Schema {
	return &Schema{
		schemas: map[SchemaType]*gojsonschema.Schema{
			SchemaTypeSource:    source,
			SchemaTypeOverrides: overrides,
		},
	}
}

func (s *Schema) Get(schemaType SchemaType) (*gojsonschema.Schema, error) {
	schema, ok := s.schemas[schemaType]
	if !ok {
		return nil, errSchemaNotFound
	}

	return schema, nil
}

// Validate checks data against the schema of the given type. A document
// that does not conform is reported as a *ValidationError.
func (s *Schema) Validate(schemaType SchemaType, data map[string]any) error {
	schema, err := s.Get(schemaType)
	if err != nil {
		return err
	}

	res, err := schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return err
	}

	if res.Valid() {
		return nil
	}

	return &ValidationError{
		Type:   schemaType,
		Errors: res.Errors(),
	}
}

// ValidationError lists the violations of a document against a schema.
type ValidationError struct {
	Type   SchemaType
	Errors []gojsonschema.ResultError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, re := range e.Errors {
		msgs = append(msgs, re.String())
	}

	return fmt.Sprintf("%s does not match schema: %s", e.Type, strings.Join(msgs, "; "))
}

//go:embed source.json
var source json.RawMessage
var sourceLoader = gojsonschema.NewBytesLoader(source)

//go:embed overrides.json
var overrides json.RawMessage
var overridesLoader = gojsonschema.NewBytesLoader(overrides)

func New() (*Schema, error) {
	sourceSchema, err := gojsonschema.NewSchema(sourceLoader)
	if err != nil {
		return nil, err
	}

	overridesSchema, err := gojsonschema.NewSchema(overridesLoader)
	if err != nil {
		return nil, err
	}

	return new(sourceSchema, overridesSchema), nil
}
