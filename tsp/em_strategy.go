package tsp

import (
	"context"

	"github.com/hexway-oss/tspkit/matrix"
)

// NewExtraMileageStrategy wraps ExtraMileageTour (optionally polished by
// TwoOpt when opts.EnableLocalSearch) as a Strategy.
func NewExtraMileageStrategy() Strategy {
	return RunFunc{
		StrategyName: "extra-mileage",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			tour, cost, err := ExtraMileageTour(dist)
			if err != nil {
				return TSResult{}, err
			}
			if opts.StartVertex != 0 {
				if rotated, rerr := RotateTourToStart(tour, opts.StartVertex); rerr == nil {
					tour = rotated
				}
			}
			if rec != nil {
				rec.Record("extra-mileage", cost)
			}
			if opts.EnableLocalSearch && ctx.Err() == nil {
				t2, c2, err2 := TwoOpt(dist, tour, opts)
				if err2 == nil {
					tour, cost = t2, c2
					if rec != nil {
						rec.Record("extra-mileage+2opt", cost)
					}
				}
			}

			return TSResult{Tour: tour, Cost: cost}, nil
		},
	}
}
