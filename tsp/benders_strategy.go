// Package tsp - Benders-style decomposition: iteratively solve the degree-2
// relaxation and cut away subtours found in its integer solution, the
// classical "add violated SECs and resolve" loop for symmetric TSP.
package tsp

import (
	"context"

	"github.com/hexway-oss/tspkit/matrix"
)

// BendersMaxIterations bounds the outer cut-and-resolve loop.
const BendersMaxIterations = 64

// NewBendersStrategy wraps MIPContext's lazy-SEC loop as a Strategy.
func NewBendersStrategy() Strategy {
	return RunFunc{
		StrategyName: "benders",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			mc, err := NewMIPContext(dist)
			if err != nil {
				return TSResult{}, err
			}
			mc.SetTimeLimit(limiter)

			res, err := mc.ReconstructTour(ctx, BendersMaxIterations, opts.StartVertex)
			if err != nil {
				return TSResult{}, err
			}
			if rec != nil {
				rec.Record("benders", res.Cost)
			}

			return res, nil
		},
	}
}
