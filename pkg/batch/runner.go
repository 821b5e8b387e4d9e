package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/raykavin/pantalib/pkg/core"
	"github.com/raykavin/pantalib/pkg/indicator"
	"github.com/raykavin/pantalib/pkg/logger"
	"github.com/raykavin/pantalib/pkg/logger/zerolog"
)

// Result holds the series computed for one request. Series is nil when the
// frame is shorter than the indicator warm-up window.
type Result struct {
	Request Request
	Series  []*core.TimeSeries
}

// Runner computes requests concurrently over one read-only frame
type Runner struct {
	log         logger.Logger
	registry    *indicator.Registry
	parallelism int
	onResult    func(Result)
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the logger used to trace each computation
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithRegistry sets the registry requests are resolved against
func WithRegistry(registry *indicator.Registry) Option {
	return func(r *Runner) { r.registry = registry }
}

// WithParallelism bounds the number of concurrent computations
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// WithResultHook registers a callback invoked after every successful
// computation. It may be called from several goroutines at once.
func WithResultHook(hook func(Result)) Option {
	return func(r *Runner) { r.onResult = hook }
}

// NewRunner creates a runner over the default registry
func NewRunner(options ...Option) *Runner {
	runner := &Runner{
		log:         zerolog.Nop(),
		registry:    indicator.Default(),
		parallelism: runtime.NumCPU(),
	}

	for _, option := range options {
		option(runner)
	}

	return runner
}

// Run computes every request over frame and returns the results in request
// order. The first failure cancels the remaining computations.
func (r *Runner) Run(ctx context.Context, frame core.Frame, requests ...Request) ([]Result, error) {
	results := make([]Result, len(requests))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.parallelism)

	for i, request := range requests {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			series, err := r.registry.Compute(request.Name, frame, request.Options...)
			if err != nil {
				return fmt.Errorf("%s: %w", request, err)
			}

			r.log.WithFields(map[string]any{
				"indicator": request.String(),
				"outputs":   len(series),
				"elapsed":   time.Since(start).String(),
			}).Debug("indicator computed")

			results[i] = Result{Request: request, Series: series}
			if r.onResult != nil {
				r.onResult(results[i])
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
