package config

import (
	"fmt"
	"net/http"
	"strings"

	simplefetch "github.com/derekvmcintire/simple-fetch-ts"
	"github.com/derekvmcintire/simple-fetch-ts/pkg/jsonschema"
)

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// ValidateSuite checks a suite for problems that would only surface
// mid-run: missing URLs, unsupported methods, bodies on GET requests,
// and uncompilable schemas.
func ValidateSuite(suite *Suite) error {
	if len(suite.Requests) == 0 {
		return fmt.Errorf("suite has no requests")
	}

	seen := make(map[string]bool, len(suite.Requests))
	for i, req := range suite.Requests {
		label := req.Name
		if label == "" {
			label = fmt.Sprintf("request #%d", i+1)
		}

		if req.Name != "" {
			if seen[req.Name] {
				return fmt.Errorf("%s: duplicate request name", label)
			}
			seen[req.Name] = true
		}

		if req.URL == "" {
			return fmt.Errorf("%s: url is required", label)
		}
		if !simplefetch.IsValidURL(req.URL) {
			return fmt.Errorf("%s: invalid url %q", label, req.URL)
		}

		method := strings.ToUpper(req.Method)
		if method == "" {
			return fmt.Errorf("%s: method is required", label)
		}
		if !allowedMethods[method] {
			return fmt.Errorf("%s: unsupported method %q", label, req.Method)
		}
		if method == http.MethodGet && req.Body != nil {
			return fmt.Errorf("%s: GET requests cannot carry a body", label)
		}

		if req.Checks.Schema != "" {
			if _, err := jsonschema.NewValidator(req.Checks.Schema); err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
		}
	}
	return nil
}
