package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	simplefetch "github.com/derekvmcintire/simple-fetch-ts"
	"github.com/derekvmcintire/simple-fetch-ts/internal/output"
)

// addRequestFlags registers the flags shared by every per-method
// command.
func addRequestFlags(cmd *cobra.Command, withBody bool) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP header as \"Key: Value\" (repeatable)")
	cmd.Flags().StringArrayP("query", "q", []string{}, "Query parameter as \"key=value\" (repeatable)")
	cmd.Flags().BoolP("verbose", "v", false, "Show headers and timing detail")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	if withBody {
		cmd.Flags().StringP("data", "d", "", "Request body (raw string, JSON by default)")
	}
}

// executeRequest runs one request for a per-method command: build,
// dispatch, format. Exits the process on failure, matching curl-style
// tools.
func executeRequest(cmd *cobra.Command, method, url string) {
	headers, _ := cmd.Flags().GetStringArray("header")
	query, _ := cmd.Flags().GetStringArray("query")
	verbose, _ := cmd.Flags().GetBool("verbose")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noColor, _ := cmd.Flags().GetBool("no-color")
	body := ""
	if cmd.Flags().Lookup("data") != nil {
		body, _ = cmd.Flags().GetString("data")
	}

	if !noColor && !output.IsTerminal(os.Stdout) {
		noColor = true
	}
	formatter := output.NewFormatter(verbose, noColor)

	builder, err := simplefetch.Simple[json.RawMessage](url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	headerMap := parseHeaderFlags(headers)
	if len(headerMap) > 0 {
		builder.Headers(headerMap)
	}
	if params := parseQueryFlags(query); len(params) > 0 {
		builder.Params(params)
	}
	if body != "" {
		builder.Body(body)
	}

	fmt.Print(formatter.FormatRequest(output.RequestInfo{
		Method:  method,
		URL:     url,
		Headers: headerInit(headerMap),
		Body:    bodyForDisplay(body),
	}))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	resp, err := dispatch(ctx, builder, method)
	elapsed := time.Since(start)
	if err != nil {
		var reqErr *simplefetch.RequestError
		if errors.As(err, &reqErr) {
			fmt.Print(formatter.FormatResponse(output.ResponseInfo{
				Status:   reqErr.Status,
				Body:     reqErr.Body,
				Duration: elapsed,
			}))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Print(formatter.FormatResponse(output.ResponseInfo{
		Status:   resp.Status,
		Headers:  resp.Headers,
		Body:     resp.BodyText(),
		Duration: elapsed,
	}))
}

// dispatch maps a method name onto the matching builder terminal.
func dispatch(ctx context.Context, b *simplefetch.Builder[json.RawMessage], method string) (*simplefetch.Response[json.RawMessage], error) {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return b.Fetch(ctx)
	case http.MethodPost:
		return b.Post(ctx)
	case http.MethodPut:
		return b.Put(ctx)
	case http.MethodPatch:
		return b.Patch(ctx)
	case http.MethodDelete:
		return b.Delete(ctx)
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}
}

// parseHeaderFlags turns repeated "Key: Value" flags into a header map.
// Malformed entries are skipped.
func parseHeaderFlags(flags []string) map[string]string {
	headers := make(map[string]string, len(flags))
	for _, flag := range flags {
		parts := strings.SplitN(flag, ":", 2)
		if len(parts) != 2 {
			continue
		}
		headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return headers
}

// parseQueryFlags turns repeated "key=value" flags into ordered query
// params, preserving flag order.
func parseQueryFlags(flags []string) simplefetch.QueryParams {
	var params simplefetch.QueryParams
	for _, flag := range flags {
		parts := strings.SplitN(flag, "=", 2)
		if len(parts) != 2 {
			continue
		}
		params = append(params, simplefetch.QueryParam{Key: parts[0], Value: parts[1]})
	}
	return params
}

func headerInit(headers map[string]string) http.Header {
	h := make(http.Header, len(headers))
	for k, v := range headers {
		h.Set(k, v)
	}
	return h
}

func bodyForDisplay(body string) any {
	if body == "" {
		return nil
	}
	return body
}
