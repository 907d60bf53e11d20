package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derekvmcintire/simple-fetch-ts/internal/config"
)

func suiteServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"users":[{"name":"Ada"}],"total":1}`))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":1,"name":"Ada"}`))
		}
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func resultFor(results []checkResult, request string) []checkResult {
	var out []checkResult
	for _, r := range results {
		if r.Request == request {
			out = append(out, r)
		}
	}
	return out
}

func TestRunSuite_AllChecksPass(t *testing.T) {
	server := suiteServer(t)

	suite := &config.Suite{
		Name: "users",
		Requests: []config.RequestSpec{
			{
				Name:   "list",
				URL:    server.URL + "/users",
				Method: "GET",
				Checks: config.Checks{
					Status:   200,
					JSONPath: map[string]string{"$.users[0].name": "Ada", "$.total": "1"},
				},
			},
			{
				Name:   "create",
				URL:    server.URL + "/users",
				Method: "POST",
				Body:   map[string]any{"name": "Ada"},
				Checks: config.Checks{
					Status: 201,
					Schema: `{"type":"object","required":["id","name"]}`,
				},
			},
		},
	}

	results := runSuite(context.Background(), suite)
	require.NotEmpty(t, results)
	for _, res := range results {
		assert.True(t, res.Passed, "check %q on %q failed: %s", res.Check, res.Request, res.Detail)
	}

	assert.Len(t, resultFor(results, "list"), 3)
	assert.Len(t, resultFor(results, "create"), 2)
}

func TestRunSuite_FailedJSONPathCheck(t *testing.T) {
	server := suiteServer(t)

	suite := &config.Suite{
		Requests: []config.RequestSpec{
			{
				Name:   "list",
				URL:    server.URL + "/users",
				Method: "GET",
				Checks: config.Checks{
					JSONPath: map[string]string{"$.users[0].name": "Grace"},
				},
			},
		},
	}

	results := runSuite(context.Background(), suite)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Detail, "Ada")
}

func TestRunSuite_ExpectedErrorStatus(t *testing.T) {
	server := suiteServer(t)

	suite := &config.Suite{
		Requests: []config.RequestSpec{
			{
				Name:   "missing",
				URL:    server.URL + "/missing",
				Method: "GET",
				Checks: config.Checks{Status: 404},
			},
		},
	}

	results := runSuite(context.Background(), suite)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed, "404 expectation should pass: %s", results[0].Detail)
}

func TestRunSuite_NoChecksDefaultsToSuccess(t *testing.T) {
	server := suiteServer(t)

	suite := &config.Suite{
		Requests: []config.RequestSpec{
			{Name: "list", URL: server.URL + "/users", Method: "GET"},
		},
	}

	results := runSuite(context.Background(), suite)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
	assert.Equal(t, "status is success", results[0].Check)
}

func TestRunSuite_SuiteHeadersApplied(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	suite := &config.Suite{
		Headers: map[string]string{"Accept": "application/json"},
		Requests: []config.RequestSpec{
			{Name: "ping", URL: server.URL, Method: "GET"},
		},
	}

	runSuite(context.Background(), suite)
	assert.Equal(t, "application/json", gotAccept)
}

func TestRunSuite_TransportFailureReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	suite := &config.Suite{
		Requests: []config.RequestSpec{
			{Name: "down", URL: url, Method: "GET"},
		},
	}

	results := runSuite(context.Background(), suite)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Equal(t, "execute", results[0].Check)
	assert.NotEmpty(t, results[0].Detail)
}
