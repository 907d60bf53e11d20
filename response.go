package simplefetch

import (
	"net/http"

	"github.com/derekvmcintire/simple-fetch-ts/pkg/jsonpath"
)

// Response is the envelope returned by every successful request.
//
// Data holds the JSON-decoded body, Status the numeric HTTP status,
// Headers the response headers, and Raw the underlying *http.Response
// for escape-hatch access. Raw.Body is re-wrapped over the bytes that
// were already read, so it is still consumable.
type Response[T any] struct {
	Data    T
	Status  int
	Headers http.Header
	Raw     *http.Response

	body []byte
}

// Header returns the value of the named response header, or "" when
// absent.
func (r *Response[T]) Header(key string) string {
	return r.Headers.Get(key)
}

// BodyText returns the raw response body as a string.
func (r *Response[T]) BodyText() string {
	return string(r.body)
}

// ExtractString extracts a value from the raw response body using a
// JSONPath expression (e.g. "$.users[0].name"). Useful when only a
// fragment of an untyped payload is needed.
func (r *Response[T]) ExtractString(path string) (string, error) {
	return jsonpath.Extract(string(r.body), path)
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response[T]) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// IsClientError reports whether the status code is in the 4xx range.
func (r *Response[T]) IsClientError() bool {
	return r.Status >= 400 && r.Status < 500
}

// IsServerError reports whether the status code is in the 5xx range.
func (r *Response[T]) IsServerError() bool {
	return r.Status >= 500 && r.Status < 600
}

// IsError reports whether the status code indicates an error (4xx or 5xx).
func (r *Response[T]) IsError() bool {
	return r.IsClientError() || r.IsServerError()
}
