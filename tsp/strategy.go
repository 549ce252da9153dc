package tsp

import (
	"context"

	"github.com/hexway-oss/tspkit/matrix"
)

// Strategy is the common contract every heuristic, exact, or matheuristic
// solver in this package implements. It mirrors the function-pointer table
// an algorithm plugin exposes in the original solver (a solve entry point
// plus a human-readable name), expressed as a Go interface instead of a
// struct of closures.
type Strategy interface {
	// Name identifies the strategy for logging and the convergence trace.
	Name() string

	// Run solves dist under opts, honoring ctx cancellation and limiter's
	// deadline, recording cost checkpoints to rec when it is non-nil. It
	// returns the best tour found. On cancellation or expiry the heuristic and
	// fixing/branching strategies stop early and return their best tour with a
	// nil error; benders and branch-and-cut, whose MIP loop is cut short,
	// return ErrTimeLimit.
	Run(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error)
}

// RunFunc adapts a plain function to the Strategy interface, the way
// http.HandlerFunc adapts a function to http.Handler.
type RunFunc struct {
	StrategyName string
	Fn           func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error)
}

// Name returns the configured strategy name.
func (f RunFunc) Name() string { return f.StrategyName }

// Run delegates to the wrapped function.
func (f RunFunc) Run(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
	return f.Fn(ctx, dist, opts, limiter, rec)
}
