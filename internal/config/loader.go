// Package config loads and validates request-suite files for the run
// command. Suites are written in YAML (JSON works too, being a YAML
// subset).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is a named, ordered list of requests to execute.
type Suite struct {
	Name     string            `yaml:"name"`
	Headers  map[string]string `yaml:"headers,omitempty"`
	Requests []RequestSpec     `yaml:"requests"`
}

// RequestSpec describes one request in a suite, plus the checks to run
// against its response.
type RequestSpec struct {
	Name        string            `yaml:"name"`
	URL         string            `yaml:"url"`
	Method      string            `yaml:"method"`
	Headers     map[string]string `yaml:"headers,omitempty"`
	QueryParams map[string]string `yaml:"queryParams,omitempty"`
	Body        any               `yaml:"body,omitempty"`
	Checks      Checks            `yaml:"checks,omitempty"`
}

// Checks are the assertions applied to a response. Zero values mean the
// check is skipped.
type Checks struct {
	// Status is the expected HTTP status code.
	Status int `yaml:"status,omitempty"`
	// JSONPath maps JSONPath expressions to their expected values.
	JSONPath map[string]string `yaml:"jsonpath,omitempty"`
	// Schema is an inline JSON Schema the body must conform to.
	Schema string `yaml:"schema,omitempty"`
}

// LoadSuite reads and parses a suite file, then validates it.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite file %s: %w", path, err)
	}

	if err := ValidateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", path, err)
	}
	return &suite, nil
}
