package simplefetch

import (
	"net/http"
	"strings"
)

// HeaderInit is any of the accepted header representations:
//
//   - map[string]string
//   - [][2]string (ordered key/value pairs)
//   - http.Header
//   - nil (no headers)
//
// Inputs are converted to a canonical http.Header at the boundary, so the
// rest of the package only ever deals with one representation.
type HeaderInit any

// GetContentType extracts the Content-Type value from any accepted header
// representation, matching the key case-insensitively. It returns "" when
// the header is absent or the representation is unrecognized; it never
// panics.
func GetContentType(headers HeaderInit) string {
	switch h := headers.(type) {
	case nil:
		return ""
	case http.Header:
		return h.Get("Content-Type")
	case map[string]string:
		for k, v := range h {
			if strings.EqualFold(k, "Content-Type") {
				return v
			}
		}
	case [][2]string:
		for _, pair := range h {
			if strings.EqualFold(pair[0], "Content-Type") {
				return pair[1]
			}
		}
	}
	return ""
}

// normalizeHeaders converts a HeaderInit into a canonical http.Header.
// Unrecognized representations yield an empty header set rather than an
// error so header handling can never fail a request on its own.
func normalizeHeaders(headers HeaderInit) http.Header {
	out := make(http.Header)
	switch h := headers.(type) {
	case http.Header:
		for k, vs := range h {
			for _, v := range vs {
				out.Add(k, v)
			}
		}
	case map[string]string:
		for k, v := range h {
			out.Set(k, v)
		}
	case [][2]string:
		for _, pair := range h {
			out.Add(pair[0], pair[1])
		}
	}
	return out
}

// mergeHeaders overlays extra onto base with right-hand precedence:
// a key present in extra replaces all values for that key in base.
func mergeHeaders(base http.Header, extra HeaderInit) {
	for k, vs := range normalizeHeaders(extra) {
		base.Del(k)
		for _, v := range vs {
			base.Add(k, v)
		}
	}
}
