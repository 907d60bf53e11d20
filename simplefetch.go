package simplefetch

import (
	"bytes"
	"context"
	"net/http"
)

// Simple validates url and constructs a request builder for it. The
// returned builder issues GET requests via Fetch and carries bodies to
// Post, Put, Patch, and Delete. It fails with *InvalidURLError when url
// is not a well-formed absolute URL.
//
//	builder, err := simplefetch.Simple[[]User]("https://api.example.com/users")
//	if err != nil {
//		return err
//	}
//	resp, err := builder.
//		Params(simplefetch.QueryParams{{Key: "limit", Value: 10}}).
//		Fetch(ctx)
func Simple[T any](url string, opts ...Option[T]) (*Builder[T], error) {
	if !IsValidURL(url) {
		return nil, &InvalidURLError{URL: url}
	}
	b := &Builder[T]{
		url:        url,
		headers:    make(http.Header),
		client:     DefaultClient,
		logger:     NewSimpleLogger(),
		autoCancel: true,
		newCancel:  context.WithCancel,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// SimpleFetch is a one-shot convenience GET: it fetches url, decodes the
// JSON body into T, and returns a pointer to the data. When the response
// carries no body it returns (nil, nil) rather than an error, so callers
// branch on the pointer.
func SimpleFetch[T any](ctx context.Context, url string, headers ...HeaderInit) (*T, error) {
	if !IsValidURL(url) {
		return nil, &InvalidURLError{URL: url}
	}
	var h HeaderInit
	if len(headers) > 0 {
		h = headers[0]
	}
	resp, err := Fetch[T](ctx, url, h)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(resp.body)) == 0 {
		return nil, nil
	}
	return &resp.Data, nil
}
