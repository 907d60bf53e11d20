package simplefetch

import (
	"context"
	"net/http"
	"sync"
)

// Builder accumulates request configuration through chained calls and
// dispatches it with one of the terminal methods (Fetch, Post, Put,
// Patch, Delete). State persists across terminal calls, so one builder
// can issue the same request several times; there is no implicit reset.
//
// A Builder is not safe for concurrent configuration. Issuing concurrent
// terminal calls is fine as long as the configuration is left alone while
// they are in flight.
type Builder[T any] struct {
	url     string
	body    any
	bodySet bool
	headers http.Header
	params  string
	err     error

	client     Doer
	logger     Logger
	autoCancel bool

	// newCancel derives the per-call cancellation context; swapped out
	// by tests to observe how many contexts get minted.
	newCancel func(context.Context) (context.Context, context.CancelFunc)

	mu      sync.Mutex
	cancels map[uint64]context.CancelFunc
	nextID  uint64
}

// Body sets the request body for subsequent terminal calls. Once set the
// body is never cleared for the lifetime of the builder.
func (b *Builder[T]) Body(payload any) *Builder[T] {
	b.body = payload
	b.bodySet = true
	return b
}

// Headers shallow-merges extra onto the accumulated headers. Keys present
// in extra replace same-named existing keys. Any of the HeaderInit
// representations is accepted; internally everything is canonicalized to
// http.Header.
func (b *Builder[T]) Headers(extra HeaderInit) *Builder[T] {
	mergeHeaders(b.headers, extra)
	return b
}

// Header sets a single header, replacing any existing values for the key.
func (b *Builder[T]) Header(key, value string) *Builder[T] {
	b.headers.Set(key, value)
	return b
}

// Params serializes values and stores the resulting query string,
// replacing any prior value. Validation failures are held and returned by
// the next terminal call, before any network activity; a later Params
// call with valid input clears the held failure, so one bad call does
// not permanently disable the builder.
func (b *Builder[T]) Params(values any) *Builder[T] {
	return b.setParams(values, false)
}

// ParamsLowerCase is Params with keys lower-cased before encoding.
func (b *Builder[T]) ParamsLowerCase(values any) *Builder[T] {
	return b.setParams(values, true)
}

func (b *Builder[T]) setParams(values any, lowerCaseKeys bool) *Builder[T] {
	serialized, err := SerializeQueryParams(values, lowerCaseKeys)
	if err != nil {
		b.err = err
		return b
	}
	b.err = nil
	b.params = serialized
	return b
}

// Cancel aborts every request currently in flight on this builder. It
// has no effect when the builder was constructed with
// WithoutRequestCancel.
func (b *Builder[T]) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, cancel := range b.cancels {
		cancel()
		delete(b.cancels, id)
	}
}

// Fetch performs a GET request with the accumulated configuration.
func (b *Builder[T]) Fetch(ctx context.Context) (*Response[T], error) {
	return b.dispatch(ctx, http.MethodGet)
}

// Post performs a POST request with the accumulated configuration.
func (b *Builder[T]) Post(ctx context.Context) (*Response[T], error) {
	return b.dispatch(ctx, http.MethodPost)
}

// Put performs a PUT request with the accumulated configuration.
func (b *Builder[T]) Put(ctx context.Context) (*Response[T], error) {
	return b.dispatch(ctx, http.MethodPut)
}

// Patch performs a PATCH request with the accumulated configuration.
func (b *Builder[T]) Patch(ctx context.Context) (*Response[T], error) {
	return b.dispatch(ctx, http.MethodPatch)
}

// Delete performs a DELETE request with the accumulated configuration.
func (b *Builder[T]) Delete(ctx context.Context) (*Response[T], error) {
	return b.dispatch(ctx, http.MethodDelete)
}

func (b *Builder[T]) dispatch(ctx context.Context, method string) (*Response[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.bodySet && !methodAllowsBody(method) {
		return nil, &MethodBodyError{Method: method, URL: b.url}
	}

	url := b.buildURL()
	headers := b.prepareHeaders()

	if b.autoCancel {
		var cancel context.CancelFunc
		ctx, cancel = b.newCancel(ctx)
		id := b.track(cancel)
		defer b.untrack(id)
	}

	var body any
	if methodAllowsBody(method) {
		body = b.body
	}

	resp, err := doRequest[T](ctx, b.client, method, url, body, headers)
	if err != nil {
		b.logger.Error("request failed", "method", method, "url", url, "error", err)
		return nil, err
	}
	return resp, nil
}

// buildURL appends the serialized query string, when present, to the base
// URL fixed at construction.
func (b *Builder[T]) buildURL() string {
	if b.params == "" {
		return b.url
	}
	return b.url + "?" + b.params
}

// prepareHeaders clones the accumulated headers and injects
// Content-Type: application/json when a body has been set and no
// Content-Type is present.
func (b *Builder[T]) prepareHeaders() http.Header {
	headers := make(http.Header, len(b.headers))
	for k, vs := range b.headers {
		for _, v := range vs {
			headers.Add(k, v)
		}
	}
	if b.bodySet && headers.Get("Content-Type") == "" {
		headers.Set("Content-Type", "application/json")
	}
	return headers
}

func (b *Builder[T]) track(cancel context.CancelFunc) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancels == nil {
		b.cancels = make(map[uint64]context.CancelFunc)
	}
	b.nextID++
	b.cancels[b.nextID] = cancel
	return b.nextID
}

func (b *Builder[T]) untrack(id uint64) {
	b.mu.Lock()
	cancel, ok := b.cancels[id]
	delete(b.cancels, id)
	b.mu.Unlock()
	if ok {
		cancel()
	}
}

func methodAllowsBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
