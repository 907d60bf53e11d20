package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSuite() *Suite {
	return &Suite{
		Name: "ok",
		Requests: []RequestSpec{
			{Name: "list", URL: "https://api.example.com/users", Method: "GET"},
			{Name: "create", URL: "https://api.example.com/users", Method: "POST", Body: map[string]any{"name": "Ada"}},
		},
	}
}

func TestValidateSuite_Valid(t *testing.T) {
	assert.NoError(t, ValidateSuite(validSuite()))
}

func TestValidateSuite_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Suite)
		wantErr string
	}{
		{
			name:    "No requests",
			mutate:  func(s *Suite) { s.Requests = nil },
			wantErr: "no requests",
		},
		{
			name:    "Missing URL",
			mutate:  func(s *Suite) { s.Requests[0].URL = "" },
			wantErr: "url is required",
		},
		{
			name:    "Invalid URL",
			mutate:  func(s *Suite) { s.Requests[0].URL = "not-a-url" },
			wantErr: "invalid url",
		},
		{
			name:    "Missing method",
			mutate:  func(s *Suite) { s.Requests[0].Method = "" },
			wantErr: "method is required",
		},
		{
			name:    "Unsupported method",
			mutate:  func(s *Suite) { s.Requests[0].Method = "TRACE" },
			wantErr: "unsupported method",
		},
		{
			name:    "GET with body",
			mutate:  func(s *Suite) { s.Requests[0].Body = map[string]any{"x": 1} },
			wantErr: "cannot carry a body",
		},
		{
			name:    "Duplicate names",
			mutate:  func(s *Suite) { s.Requests[1].Name = "list" },
			wantErr: "duplicate request name",
		},
		{
			name:    "Bad schema",
			mutate:  func(s *Suite) { s.Requests[0].Checks.Schema = `{"type": 42}` },
			wantErr: "schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suite := validSuite()
			tt.mutate(suite)
			err := ValidateSuite(suite)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateSuite_LowercaseMethodAccepted(t *testing.T) {
	suite := validSuite()
	suite.Requests[0].Method = "get"
	assert.NoError(t, ValidateSuite(suite))
}
