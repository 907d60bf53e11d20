// Package jsonschema validates JSON documents against JSON Schema,
// wrapping santhosh-tekuri/jsonschema with a compile-once validator and
// a flattened error list.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors is the flattened list of schema violations found in a
// document.
type ValidationErrors []error

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, err := range ve {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validator holds a compiled schema for repeated use.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles schemaStr into a reusable Validator.
func NewValidator(schemaStr string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks doc against the compiled schema. It returns false plus
// the individual violations when the document does not conform, and an
// error only when doc is not parseable JSON.
func (v *Validator) Validate(doc string) (bool, ValidationErrors, error) {
	var data any
	if err := json.Unmarshal([]byte(doc), &data); err != nil {
		return false, nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := v.schema.Validate(data); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			return false, flatten(verr), nil
		}
		return false, ValidationErrors{err}, nil
	}
	return true, nil, nil
}

// Validate is a one-shot helper: compile schemaStr and validate doc
// against it.
func Validate(doc, schemaStr string) (bool, ValidationErrors, error) {
	v, err := NewValidator(schemaStr)
	if err != nil {
		return false, nil, err
	}
	return v.Validate(doc)
}

func flatten(err *jsonschema.ValidationError) ValidationErrors {
	var errs ValidationErrors
	if err.Message != "" {
		errs = append(errs, fmt.Errorf("validation error at %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		errs = append(errs, flatten(cause)...)
	}
	return errs
}
