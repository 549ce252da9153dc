// Package tsp - Local Branching matheuristic: warm-start a reference tour,
// restrict the MIP search to its k-Hamming-distance neighborhood, and
// re-optimize; widening k and repeating from the improved incumbent until the
// budget is exhausted.
package tsp

import (
	"context"

	"github.com/hexway-oss/tspkit/matrix"
)

// LocalBranchingHeuristicTimeShare is the portion of the overall budget spent
// building the reference tour before local branching begins.
const LocalBranchingHeuristicTimeShare = 0.2

// LocalBranchingInitialK is the initial Hamming-distance radius around the
// reference tour's edge set.
const LocalBranchingInitialK = 10

// LocalBranchingKStep widens the radius by this amount whenever a round fails
// to find an improving solution within budget.
const LocalBranchingKStep = 5

// LocalBranchingMaxRounds bounds the number of widen-and-resolve rounds.
const LocalBranchingMaxRounds = 6

// LocalBranchingMIPIterations bounds MIPContext's inner lazy-SEC loop per round.
const LocalBranchingMIPIterations = 64

// NewLocalBranchingStrategy builds a warm-start reference tour with
// heuristic, then repeatedly restricts the MIP to a growing neighborhood of
// that reference and re-solves, keeping the best feasible tour found.
func NewLocalBranchingStrategy(heuristic HeuristicType) Strategy {
	return RunFunc{
		StrategyName: "local-branching",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			ref, err := RunWarmStart(ctx, dist, opts, heuristic, LocalBranchingHeuristicTimeShare, limiter, rec)
			if err != nil {
				return TSResult{}, err
			}

			best := ref
			k := LocalBranchingInitialK

			for round := 0; round < LocalBranchingMaxRounds; round++ {
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
				mc.AddLocalBranchingConstraint(best.Tour, k)
				mc.SetTimeLimit(limiter)

				res, rerr := mc.ReconstructTour(ctx, LocalBranchingMIPIterations, opts.StartVertex)
				if rerr != nil {
					k += LocalBranchingKStep
					continue
				}
				if res.Cost < best.Cost-opts.Eps {
					best = res
					if rec != nil {
						rec.Record("local-branching", best.Cost)
					}
				} else {
					k += LocalBranchingKStep
				}
			}

			return best, nil
		},
	}
}
