package simplefetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Doer issues a single HTTP request. *http.Client satisfies it; tests
// substitute mocks. The package depends only on this contract, never on a
// particular transport implementation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultClient is the transport used by the package-level request
// functions and by builders that were not given one via WithClient.
var DefaultClient Doer = &http.Client{}

// Fetch performs a GET request and decodes the JSON response body into T.
func Fetch[T any](ctx context.Context, url string, headers HeaderInit) (*Response[T], error) {
	return doRequest[T](ctx, DefaultClient, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with the given body and decodes the JSON
// response body into T.
func Post[T any](ctx context.Context, url string, body any, headers HeaderInit) (*Response[T], error) {
	return doRequest[T](ctx, DefaultClient, http.MethodPost, url, body, headers)
}

// Put performs a PUT request with the given body and decodes the JSON
// response body into T.
func Put[T any](ctx context.Context, url string, body any, headers HeaderInit) (*Response[T], error) {
	return doRequest[T](ctx, DefaultClient, http.MethodPut, url, body, headers)
}

// Patch performs a PATCH request with the given body and decodes the JSON
// response body into T.
func Patch[T any](ctx context.Context, url string, body any, headers HeaderInit) (*Response[T], error) {
	return doRequest[T](ctx, DefaultClient, http.MethodPatch, url, body, headers)
}

// Delete performs a DELETE request and decodes the JSON response body
// into T.
func Delete[T any](ctx context.Context, url string, headers HeaderInit) (*Response[T], error) {
	return doRequest[T](ctx, DefaultClient, http.MethodDelete, url, nil, headers)
}

// doRequest is the shared executor behind every per-method function and
// builder terminal. It prepares the body, issues the request, maps
// non-2xx responses to *RequestError, and decodes successful JSON bodies
// into the envelope.
func doRequest[T any](ctx context.Context, client Doer, method, url string, body any, headers HeaderInit) (*Response[T], error) {
	if client == nil {
		client = DefaultClient
	}
	hdr := normalizeHeaders(headers)

	bodyReader, err := encodeBody(body, GetContentType(headers))
	if err != nil {
		return nil, normalizeError(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, normalizeError(err)
	}
	for k, vs := range hdr {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, normalizeError(err)
	}

	bodyBytes, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyText := string(bodyBytes)
		if readErr != nil {
			bodyText = "unable to read response body"
		}
		return nil, &RequestError{
			Method:     method,
			URL:        url,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       bodyText,
		}
	}
	if readErr != nil {
		return nil, normalizeError(readErr)
	}

	var data T
	if len(bytes.TrimSpace(bodyBytes)) > 0 {
		if err := json.Unmarshal(bodyBytes, &data); err != nil {
			return nil, normalizeError(err)
		}
	}

	// Re-wrap the body so Raw remains consumable by escape-hatch callers.
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	return &Response[T]{
		Data:    data,
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Raw:     resp,
		body:    bodyBytes,
	}, nil
}

// encodeBody turns a request body into an io.Reader. Strings, byte
// slices, and readers pass through unchanged (the caller owns their
// encoding, e.g. form data). Any other non-nil value is marshaled to
// JSON only when the content type is application/json or unset; under
// a different content type there is no sensible encoding for it, so
// the request fails before any network activity.
func encodeBody(body any, contentType string) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	case io.Reader:
		return b, nil
	default:
		if !isJSONContentType(contentType) {
			return nil, fmt.Errorf("cannot encode %T body for content type %q", body, contentType)
		}
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(encoded), nil
	}
}

// isJSONContentType reports whether values of arbitrary type may be
// JSON-marshaled for the given Content-Type. An empty value counts as
// JSON: the builder injects application/json in that case, and the
// per-method functions default to JSON bodies.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mt := strings.TrimSpace(strings.ToLower(contentType))
	return mt == "application/json" || strings.HasPrefix(mt, "application/json;")
}
