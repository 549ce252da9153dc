// Package tsp - Hard Fixing matheuristic: build a heuristic reference tour,
// freeze a random fixing_rate fraction of its edges in the MIP, and let
// branch-and-cut re-optimize the remainder — repeating with a fresh random
// fixing each round, keeping the best feasible tour found.
package tsp

import (
	"context"

	"github.com/hexway-oss/tspkit/matrix"
)

// HardFixingRate is the fraction of the reference tour's edges frozen per round.
const HardFixingRate = 0.6

// HardFixingHeuristicTimeShare is the portion of the overall budget spent
// building the reference tour before fixing begins.
const HardFixingHeuristicTimeShare = 0.2

// HardFixingRounds bounds the number of fix-and-resolve rounds.
const HardFixingRounds = 5

// HardFixingMIPIterations bounds MIPContext's inner lazy-SEC loop per round.
const HardFixingMIPIterations = 64

// NewHardFixingStrategy builds a warm-start reference tour with heuristic,
// then rounds of freezing HardFixingRate of its edges and re-solving the rest.
func NewHardFixingStrategy(heuristic HeuristicType) Strategy {
	return RunFunc{
		StrategyName: "hard-fixing",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			ref, err := RunWarmStart(ctx, dist, opts, heuristic, HardFixingHeuristicTimeShare, limiter, rec)
			if err != nil {
				return TSResult{}, err
			}

			rng := rngFromSeed(opts.Seed)
			best := ref

			for round := 0; round < HardFixingRounds; round++ {
				if ctx.Err() != nil {
					break
				}
				if limiter != nil && limiter.Expired() {
					break
				}

				mc, merr := NewMIPContext(dist)
				if merr != nil {
					return TSResult{}, merr
				}
				n := len(best.Tour) - 1
				perm, _ := permRange(n, deriveRNG(rng, uint64(round)))
				fixCount := int(float64(n) * HardFixingRate)
				for _, idx := range perm[:fixCount] {
					mc.FixEdge(best.Tour[idx], best.Tour[idx+1], 1)
				}
				mc.SetTimeLimit(limiter)

				res, rerr := mc.ReconstructTour(ctx, HardFixingMIPIterations, opts.StartVertex)
				if rerr != nil {
					continue
				}
				if res.Cost < best.Cost {
					best = res
					if rec != nil {
						rec.Record("hard-fixing", best.Cost)
					}
				}
			}

			return best, nil
		},
	}
}
