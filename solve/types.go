// Package solve declares options, counters, and the transition Edge
// type. See doc.go for the package overview.
package solve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/trisolve/board"
	"github.com/katalvlaran/trisolve/topology"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("solve: invalid option supplied")

// Edge is one recorded transition: playing Move on the owning board
// produces To.
type Edge struct {
	Move topology.MoveTemplate
	To   board.Board
}

// Progress is a per-layer observation snapshot passed to the WithProgress
// hook. All counters are cumulative.
type Progress struct {
	// Layer is the peg count of the layer that was just expanded.
	Layer int
	// Boards is the number of distinct feasible boards discovered so far.
	Boards int
	// Edges is the number of transition edges recorded so far.
	Edges int
	// Probes counts every template application attempted, legal or not.
	// Instrumentation only; it exceeds the board count by design of the
	// probe loop and says nothing about state-space size.
	Probes int
}

// Stats summarizes a finished Discover pass.
type Stats struct {
	Boards   int           // distinct feasible boards
	Edges    int           // recorded transition edges
	Probes   int           // template applications attempted
	Layers   int           // peg-count layers expanded
	Duration time.Duration // wall time of the search
}

// Option configures a Discover/Solve run via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the run starts.
type Option func(*options)

// options holds the resolved settings for one run.
type options struct {
	ctx      context.Context
	progress func(Progress)
	workers  int
	err      error
}

// defaultOptions returns the defaults: Background context, no progress
// hook, serial expansion.
func defaultOptions() options {
	return options{ctx: context.Background(), workers: 1}
}

// WithContext sets the cancellation context, checked once per layer.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithProgress installs a hook invoked after each layer expansion with
// cumulative counters. The hook must not retain the Progress value's
// address; it is reused.
func WithProgress(fn func(Progress)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithWorkers sets the number of goroutines used to expand each layer.
// n must be at least 1; higher values change timing only, never results.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)

			return
		}
		o.workers = n
	}
}
