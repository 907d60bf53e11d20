// Package performance drives repeated requests against one URL and
// aggregates latencies into an HDR histogram for percentile reporting.
package performance

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	simplefetch "github.com/derekvmcintire/simple-fetch-ts"
)

// Options controls a measurement run.
type Options struct {
	// Iterations is the total number of requests to issue.
	Iterations int
	// Concurrency is the number of workers issuing requests.
	Concurrency int
	// Headers are sent with every request.
	Headers map[string]string
}

// Report summarizes a completed run.
type Report struct {
	Requests  int64
	Failures  int64
	Elapsed   time.Duration
	Min       time.Duration
	Mean      time.Duration
	P50       time.Duration
	P90       time.Duration
	P99       time.Duration
	Max       time.Duration
	PerSecond float64
}

// Histogram bounds: 1 microsecond to 1 hour, 3 significant figures.
const (
	histMin     = 1
	histMax     = 3_600_000_000
	histSigFigs = 3
)

// Run issues opts.Iterations GET requests against url with
// opts.Concurrency workers and reports latency percentiles. Individual
// request failures are counted, not fatal; ctx cancellation stops the
// run early.
func Run(ctx context.Context, url string, opts Options) (*Report, error) {
	if !simplefetch.IsValidURL(url) {
		return nil, &simplefetch.InvalidURLError{URL: url}
	}
	if opts.Iterations <= 0 {
		opts.Iterations = 1
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}

	hist := hdrhistogram.New(histMin, histMax, histSigFigs)
	var histMu sync.Mutex
	var failures int64
	var completed int64

	jobs := make(chan struct{})
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				reqStart := time.Now()
				_, err := simplefetch.Fetch[json.RawMessage](ctx, url, opts.Headers)
				elapsed := time.Since(reqStart)

				histMu.Lock()
				completed++
				if err != nil {
					// Connect errors and failed responses would skew
					// the latency distribution; they are only counted.
					failures++
				} else {
					_ = hist.RecordValue(elapsed.Microseconds())
				}
				histMu.Unlock()
			}
		}()
	}

	for i := 0; i < opts.Iterations; i++ {
		if ctx.Err() != nil {
			break
		}
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	report := &Report{
		Requests: completed,
		Failures: failures,
		Elapsed:  elapsed,
		Min:      time.Duration(hist.Min()) * time.Microsecond,
		Mean:     time.Duration(hist.Mean()) * time.Microsecond,
		P50:      time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:      time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond,
		P99:      time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
		Max:      time.Duration(hist.Max()) * time.Microsecond,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		report.PerSecond = float64(completed) / secs
	}
	return report, nil
}
