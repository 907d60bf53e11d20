// Package output renders requests, responses, and check results for the
// terminal, with status-class coloring and optional verbosity.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// RequestInfo describes an outgoing request for display.
type RequestInfo struct {
	Method  string
	URL     string
	Headers http.Header
	Body    any
}

// ResponseInfo describes a received response for display.
type ResponseInfo struct {
	Status   int
	Headers  http.Header
	Body     string
	Duration time.Duration
}

// Formatter renders request/response summaries as text.
type Formatter struct {
	Verbose bool
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a Formatter. With noColor set, all output is
// plain text.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{Verbose: verbose, NoColor: noColor, scheme: scheme}
}

// FormatRequest renders the outgoing request line, plus headers and body
// when verbose or present.
func (f *Formatter) FormatRequest(req RequestInfo) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(req.Method),
		f.scheme.URL.Sprint(req.URL)))

	if f.Verbose || len(req.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for _, key := range sortedKeys(req.Headers) {
			for _, value := range req.Headers[key] {
				buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), value))
			}
		}
	}

	if req.Body != nil {
		buf.WriteString("  Body: ")
		buf.WriteString(formatBody(req.Body))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse renders the response status line, and headers plus a
// pretty-printed body when verbose.
func (f *Formatter) FormatResponse(resp ResponseInfo) string {
	var buf strings.Builder

	statusLine := fmt.Sprintf("%d %s", resp.Status, http.StatusText(resp.Status))
	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
		f.scheme.StatusColor(resp.Status).Sprint(statusLine),
		resp.Duration.Milliseconds()))

	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for _, key := range sortedKeys(resp.Headers) {
			for _, value := range resp.Headers[key] {
				buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), value))
			}
		}
	}

	if resp.Body != "" {
		buf.WriteString("  Body:\n")
		buf.WriteString(indent(prettyJSON(resp.Body), "    "))
		buf.WriteString("\n")
	}

	return buf.String()
}

func formatBody(body any) string {
	switch b := body.(type) {
	case string:
		return prettyJSON(b)
	case []byte:
		return prettyJSON(string(b))
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return fmt.Sprintf("%v", b)
		}
		return string(encoded)
	}
}

// prettyJSON re-indents a JSON document; non-JSON input is returned
// unchanged.
func prettyJSON(s string) string {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(s), "", "  "); err != nil {
		return s
	}
	return out.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func sortedKeys(h http.Header) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
