package simplefetch

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage is the fallback message used when a failure carries
// no usable message of its own.
const UnknownErrorMessage = "An unknown error occurred"

// InvalidURLError is returned by Simple when the supplied URL is not a
// well-formed absolute URL.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL provided: %q", e.URL)
}

// MethodBodyError is returned when a request body was configured for a
// method that does not accept one. It is raised before any network
// activity.
type MethodBodyError struct {
	Method string
	URL    string
}

func (e *MethodBodyError) Error() string {
	return fmt.Sprintf("%s request to %s cannot carry a request body", e.Method, e.URL)
}

// QueryShapeError is returned when the query-parameter container is not a
// flat key/value mapping.
type QueryShapeError struct {
	Got any
}

func (e *QueryShapeError) Error() string {
	return fmt.Sprintf("query params must be a flat key/value mapping, got %T (%s)", e.Got, preview(e.Got))
}

// QueryValueError is returned when a query-parameter value is not a
// string, a number, or a homogeneous slice of strings/numbers.
type QueryValueError struct {
	Key     string
	Preview string
}

func (e *QueryValueError) Error() string {
	return fmt.Sprintf("invalid query param value for key %q: %s", e.Key, e.Preview)
}

// RequestError is returned when the transport produced a response whose
// status is outside the success range. Body holds the best-effort text of
// the response body.
type RequestError struct {
	Method     string
	URL        string
	Status     int
	StatusText string
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request to %s failed with status %d %s: %s", e.Method, e.URL, e.Status, e.StatusText, e.Body)
}

// normalizeError maps arbitrary failures into something a caller can
// branch on: RequestError passes through unchanged, a nil or
// message-less error becomes a generic error with UnknownErrorMessage,
// and everything else is returned as-is.
func normalizeError(err error) error {
	if err == nil {
		return errors.New(UnknownErrorMessage)
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return err
	}
	if err.Error() == "" {
		return errors.New(UnknownErrorMessage)
	}
	return err
}

// preview renders a short diagnostic representation of a value for error
// messages. Long values are truncated so errors stay one line.
func preview(v any) string {
	const max = 64
	s := fmt.Sprintf("%#v", v)
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
