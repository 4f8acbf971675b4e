package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

type ValidationError struct {
	Field   string
	Message string
	Code    string
}

// Schema is a compiled JSON schema used to vet provider payloads before decoding.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

// MustCompile compiles a schema literal and panics on error. Schemas are package constants.
func MustCompile(name, source string) *Schema {
	s, err := Compile(name, source)
	if err != nil {
		panic(err)
	}
	return s
}

func Compile(name, source string) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{name: name, schema: compiled}, nil
}

// Validate checks a raw JSON document. A document that is not JSON at all is an error, not a result.
func (s *Schema) Validate(document []byte) (*ValidationResult, error) {
	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", s.name, err)
	}

	result := &ValidationResult{Valid: res.Valid()}
	for _, e := range res.Errors() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   e.Field(),
			Message: e.Description(),
			Code:    e.Type(),
		})
	}
	return result, nil
}

// Check folds Validate into a single error suitable for wrapping.
func (s *Schema) Check(document []byte) error {
	result, err := s.Validate(document)
	if err != nil {
		return err
	}
	if !result.Valid {
		first := result.Errors[0]
		return fmt.Errorf("%s: %s %s (%d violations)", s.name, first.Field, first.Message, len(result.Errors))
	}
	return nil
}
