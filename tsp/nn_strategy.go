package tsp

import (
	"context"

	"github.com/hexway-oss/tspkit/matrix"
)

// NewNearestNeighborStrategy wraps NearestNeighborTour (optionally polished
// by TwoOpt when opts.EnableLocalSearch) as a Strategy.
func NewNearestNeighborStrategy() Strategy {
	return RunFunc{
		StrategyName: "nearest-neighbor",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			tour, cost, err := NearestNeighborTour(dist, opts.StartVertex)
			if err != nil {
				return TSResult{}, err
			}
			if rec != nil {
				rec.Record("nearest-neighbor", cost)
			}
			if opts.EnableLocalSearch {
				if ctx.Err() != nil {
					return TSResult{Tour: tour, Cost: cost}, nil
				}
				t2, c2, err2 := TwoOpt(dist, tour, opts)
				if err2 == nil {
					tour, cost = t2, c2
					if rec != nil {
						rec.Record("nearest-neighbor+2opt", cost)
					}
				}
			}

			return TSResult{Tour: tour, Cost: cost}, nil
		},
	}
}
