package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/derekvmcintire/simple-fetch-ts/internal/performance"
)

var perfCmd = &cobra.Command{
	Use:   "perf URL",
	Short: "Measure request latency against a URL and report percentiles",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		iterations, _ := cmd.Flags().GetInt("iterations")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		headers, _ := cmd.Flags().GetStringArray("header")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		report, err := performance.Run(ctx, args[0], performance.Options{
			Iterations:  iterations,
			Concurrency: concurrency,
			Headers:     parseHeaderFlags(headers),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Requests:    %d (%d failed)\n", report.Requests, report.Failures)
		fmt.Printf("Elapsed:     %v\n", report.Elapsed.Round(time.Millisecond))
		fmt.Printf("Throughput:  %.1f req/s\n", report.PerSecond)
		fmt.Printf("Latency:     min=%v mean=%v max=%v\n",
			report.Min.Round(time.Microsecond),
			report.Mean.Round(time.Microsecond),
			report.Max.Round(time.Microsecond))
		fmt.Printf("Percentiles: p50=%v p90=%v p99=%v\n",
			report.P50.Round(time.Microsecond),
			report.P90.Round(time.Microsecond),
			report.P99.Round(time.Microsecond))
	},
}

func init() {
	perfCmd.Flags().IntP("iterations", "n", 100, "Total number of requests to issue")
	perfCmd.Flags().IntP("concurrency", "c", 1, "Number of concurrent workers")
	perfCmd.Flags().StringArrayP("header", "H", []string{}, "HTTP header as \"Key: Value\" (repeatable)")
	perfCmd.Flags().DurationP("timeout", "t", 5*time.Minute, "Timeout for the whole run")
}
