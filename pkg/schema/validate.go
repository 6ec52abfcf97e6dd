// Package schema validates configuration documents against an embedded JSON
// schema, and generates that schema from the Go configuration types.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator validates decoded configuration data against a JSON schema.
// Uses [github.com/santhosh-tekuri/jsonschema/v6].
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the provided JSON schema document.
func NewValidator(url string, schemaData []byte) (*Validator, error) {
	var schema any

	err := json.Unmarshal(schemaData, &schema)
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()

	err = compiler.AddResource(url, schema)
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	jss, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: jss}, nil
}

// MustNewValidator compiles the schema and panics on failure. Intended for
// embedded, generated schemas.
func MustNewValidator(url string, schemaData []byte) *Validator {
	v, err := NewValidator(url, schemaData)
	if err != nil {
		panic(err)
	}

	return v
}

// Validate checks the given decoded document against the schema. The
// returned error carries the most specific failing instance location.
func (v *Validator) Validate(data any) error {
	err := v.schema.Validate(data)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("schema validation: %w", err)
	}

	leaf := mostSpecificCause(validationErr)

	return &ValidationError{
		Location: instancePath(leaf),
		Detail:   leaf.Error(),
	}
}

// ValidationError reports a schema violation at a specific document location.
type ValidationError struct {
	// Location is the instance path of the failing value, e.g. "/rules/select/3".
	Location string
	// Detail is the validator's message for the failure.
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("error at %s: %s", e.Location, e.Detail)
	}

	return "validation error: " + e.Detail
}

// mostSpecificCause walks the cause tree to the failure with the deepest
// instance location, which is the most useful one to show.
func mostSpecificCause(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	best := err
	for _, cause := range err.Causes {
		candidate := mostSpecificCause(cause)
		if len(candidate.InstanceLocation) > len(best.InstanceLocation) {
			best = candidate
		}
	}

	return best
}

func instancePath(err *jsonschema.ValidationError) string {
	path := ""
	for _, segment := range err.InstanceLocation {
		path += "/" + segment
	}

	return path
}
