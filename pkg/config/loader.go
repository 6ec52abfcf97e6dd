package config

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Validator validates a decoded configuration document.
type Validator interface {
	Validate(data any) error
}

// Object is a configuration type with defaultable fields.
type Object interface {
	EnsureDefaults()
}

// Loader is a generic configuration loader handling YAML parsing and schema
// validation for any config type T.
type Loader[T Object] struct {
	validator Validator
	newFunc   func() T
	data      []byte
}

// NewLoaderFromBytes creates a [Loader] from byte data. The newFunc
// parameter is the constructor for type T (e.g. [New]).
func NewLoaderFromBytes[T Object](data []byte, newFunc func() T, validator Validator) *Loader[T] {
	return &Loader[T]{
		data:      data,
		newFunc:   newFunc,
		validator: validator,
	}
}

// Validate checks the document against the schema without decoding into T.
func (l *Loader[T]) Validate() error {
	var anyConfig any

	err := yaml.NewDecoder(bytes.NewReader(l.data)).Decode(&anyConfig)
	if err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	if l.validator != nil {
		err = l.validator.Validate(anyConfig)
		if err != nil {
			return err
		}
	}

	return nil
}

// Load parses the document into a new T and applies defaults.
//
//nolint:ireturn // Generic type parameter return is intentional.
func (l *Loader[T]) Load() (T, error) {
	cfg := l.newFunc()

	err := yaml.NewDecoder(bytes.NewReader(l.data)).Decode(cfg)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("decode yaml: %w", err)
	}

	cfg.EnsureDefaults()

	return cfg, nil
}
