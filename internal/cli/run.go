package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	simplefetch "github.com/derekvmcintire/simple-fetch-ts"
	"github.com/derekvmcintire/simple-fetch-ts/internal/config"
	"github.com/derekvmcintire/simple-fetch-ts/internal/output"
	"github.com/derekvmcintire/simple-fetch-ts/pkg/jsonpath"
	"github.com/derekvmcintire/simple-fetch-ts/pkg/jsonschema"
)

var runCmd = &cobra.Command{
	Use:   "run SUITE_FILE",
	Short: "Run a suite of requests from a YAML file, with response checks",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		noColor, _ := cmd.Flags().GetBool("no-color")
		if !noColor && !output.IsTerminal(os.Stdout) {
			noColor = true
		}

		suite, err := config.LoadSuite(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results := runSuite(ctx, suite)

		failures := 0
		for _, res := range results {
			icon := output.SuccessIcon(noColor)
			if !res.Passed {
				icon = output.ErrorIcon(noColor)
				failures++
			}
			line := fmt.Sprintf("%s %s: %s", icon, res.Request, res.Check)
			if res.Detail != "" {
				line += " (" + res.Detail + ")"
			}
			fmt.Println(line)
		}

		fmt.Printf("\n%d checks, %d failed\n", len(results), failures)
		if failures > 0 {
			os.Exit(1)
		}
	},
}

// checkResult is the outcome of one response check.
type checkResult struct {
	Request string
	Check   string
	Passed  bool
	Detail  string
}

// runSuite executes every request in the suite and evaluates its checks.
// A transport or builder failure fails all of that request's checks.
func runSuite(ctx context.Context, suite *config.Suite) []checkResult {
	var results []checkResult

	for i, spec := range suite.Requests {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("request #%d", i+1)
		}

		resp, err := executeSpec(ctx, suite, spec)
		if err != nil {
			var reqErr *simplefetch.RequestError
			if errors.As(err, &reqErr) && spec.Checks.Status == reqErr.Status {
				// A non-2xx status can itself be the expectation.
				results = append(results, checkResult{Request: name, Check: fmt.Sprintf("status == %d", reqErr.Status), Passed: true})
				continue
			}
			results = append(results, checkResult{Request: name, Check: "execute", Detail: err.Error()})
			continue
		}

		results = append(results, evaluateChecks(name, spec.Checks, resp)...)
	}
	return results
}

// executeSpec issues one suite request through the builder, merging
// suite-level headers under request-level ones.
func executeSpec(ctx context.Context, suite *config.Suite, spec config.RequestSpec) (*simplefetch.Response[json.RawMessage], error) {
	builder, err := simplefetch.Simple[json.RawMessage](spec.URL)
	if err != nil {
		return nil, err
	}
	if len(suite.Headers) > 0 {
		builder.Headers(suite.Headers)
	}
	if len(spec.Headers) > 0 {
		builder.Headers(spec.Headers)
	}
	if len(spec.QueryParams) > 0 {
		builder.Params(spec.QueryParams)
	}
	if spec.Body != nil {
		builder.Body(spec.Body)
	}
	return dispatch(ctx, builder, strings.ToUpper(spec.Method))
}

// evaluateChecks runs the configured assertions against a response.
// When no checks are configured, reaching a 2xx response is itself the
// check.
func evaluateChecks(name string, checks config.Checks, resp *simplefetch.Response[json.RawMessage]) []checkResult {
	var results []checkResult

	if checks.Status == 0 && len(checks.JSONPath) == 0 && checks.Schema == "" {
		results = append(results, checkResult{Request: name, Check: "status is success", Passed: resp.IsSuccess(), Detail: fmt.Sprintf("got %d", resp.Status)})
		return results
	}

	if checks.Status != 0 {
		res := checkResult{Request: name, Check: fmt.Sprintf("status == %d", checks.Status), Passed: resp.Status == checks.Status}
		if !res.Passed {
			res.Detail = fmt.Sprintf("got %d", resp.Status)
		}
		results = append(results, res)
	}

	for path, expected := range checks.JSONPath {
		res := checkResult{Request: name, Check: fmt.Sprintf("%s == %q", path, expected)}
		got, err := jsonpath.Extract(resp.BodyText(), path)
		switch {
		case err != nil:
			res.Detail = err.Error()
		case got != expected:
			res.Detail = fmt.Sprintf("got %q", got)
		default:
			res.Passed = true
		}
		results = append(results, res)
	}

	if checks.Schema != "" {
		res := checkResult{Request: name, Check: "schema"}
		ok, violations, err := jsonschema.Validate(resp.BodyText(), checks.Schema)
		switch {
		case err != nil:
			res.Detail = err.Error()
		case !ok:
			res.Detail = violations.Error()
		default:
			res.Passed = true
		}
		results = append(results, res)
	}

	return results
}

func init() {
	runCmd.Flags().DurationP("timeout", "t", 60*time.Second, "Timeout for the whole suite")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}
