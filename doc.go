// Package simplefetch provides a fluent builder for issuing HTTP
// requests on top of net/http, returning typed response envelopes and
// normalizing failures into structured errors.
//
// Basic usage:
//
//	builder, err := simplefetch.Simple[[]User]("https://api.example.com/users")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := builder.
//		Header("Accept", "application/json").
//		Params(simplefetch.QueryParams{
//			{Key: "page", Value: 1},
//			{Key: "limit", Value: 10},
//		}).
//		Fetch(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(resp.Status, len(resp.Data))
//
// Posting a body:
//
//	builder, _ := simplefetch.Simple[CreateResult]("https://api.example.com/users")
//	resp, err := builder.Body(newUser).Post(context.Background())
//
// When no Content-Type has been set and a body is present, the builder
// injects "application/json" and the body is JSON-marshaled. Strings,
// byte slices, and io.Readers pass through untouched for callers that
// manage their own encoding; under a non-JSON Content-Type those
// pass-through shapes are the only ones accepted, and any other body
// value fails before the request is sent.
//
// The per-method functions Fetch and Delete never send a body. The
// builder is more permissive on DELETE: a configured body rides along,
// since many APIs accept DELETE payloads, while GET still rejects one
// with *MethodBodyError before any network activity.
//
// One-shot fetches:
//
//	user, err := simplefetch.SimpleFetch[User](ctx, "https://api.example.com/users/1")
//	if user == nil && err == nil {
//		// 2xx response with an empty body
//	}
//
// Errors are structured: *InvalidURLError, *MethodBodyError,
// *QueryShapeError, *QueryValueError, and *RequestError (which carries
// the method, URL, status, status text, and response body text). Branch
// with errors.As:
//
//	var reqErr *simplefetch.RequestError
//	if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
//		// handle 404
//	}
//
// Cancellation rides on context.Context. Each terminal call derives its
// own cancelable context (so concurrent calls are independently
// cancellable and Builder.Cancel aborts whatever is in flight); pass a
// context of your own for external control, or construct the builder
// with WithoutRequestCancel to disable the derivation entirely.
package simplefetch
