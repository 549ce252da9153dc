// Package tsp - Variable Neighborhood Search: escape 2-opt local optima by
// perturbing with segment reversals of increasing strength, then
// re-converging with 2-opt; revert if the shake+polish failed to improve.
package tsp

import (
	"context"

	"github.com/hexway-oss/tspkit/matrix"
)

// VNSMaxNeighborhoods bounds the perturbation strength (number of
// consecutive random segment reversals applied per shake).
const VNSMaxNeighborhoods = 5

// VNSMaxRounds bounds the outer shake/polish cycle when Options.TwoOptMaxIters
// is zero.
const VNSMaxRounds = 200

// NewVNSStrategy seeds from NearestNeighborTour+TwoOpt, then alternates
// shaking (k random segment reversals, k growing up to VNSMaxNeighborhoods) and
// re-polishing with TwoOpt, growing the neighborhood on stagnation and
// resetting to 1 on improvement (the standard VNS schedule).
func NewVNSStrategy() Strategy {
	return RunFunc{
		StrategyName: "vns",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			tour, cost, err := NearestNeighborTour(dist, opts.StartVertex)
			if err != nil {
				return TSResult{}, err
			}
			if t2, c2, err2 := TwoOpt(dist, tour, opts); err2 == nil {
				tour, cost = t2, c2
			}

			best := CopyTour(tour)
			bestCost := cost
			if rec != nil {
				rec.Record("vns", bestCost)
			}

			rng := rngFromSeed(opts.Seed)
			n := len(tour) - 1
			maxRounds := opts.TwoOptMaxIters
			if maxRounds <= 0 {
				maxRounds = VNSMaxRounds
			}

			k := 1
			for round := 0; round < maxRounds; round++ {
				if ctx.Err() != nil {
					break
				}
				if limiter != nil && limiter.Tick() {
					break
				}
				if n < 5 {
					break
				}

				candidate := CopyTour(best)
				for s := 0; s < k; s++ {
					i := 1 + rng.Intn(n-2)
					j := i + 1 + rng.Intn(n-i-1)
					_ = reverseArcInPlace(candidate, i, j)
				}

				cTour, cCost, cerr := TwoOpt(dist, candidate, opts)
				if cerr != nil {
					continue
				}

				if cCost < bestCost-opts.Eps {
					best = cTour
					bestCost = cCost
					k = 1
					if rec != nil {
						rec.Record("vns", bestCost)
					}
				} else {
					k++
					if k > VNSMaxNeighborhoods {
						k = 1
					}
				}
			}

			return TSResult{Tour: best, Cost: bestCost}, nil
		},
	}
}
