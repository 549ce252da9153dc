// Package tsp - warm-start bridge: produce a feasible starting tour with a
// chosen heuristic, for use as a MIP-start hint or a Hard Fixing/Local
// Branching reference tour.
package tsp

import (
	"context"
	"time"

	"github.com/hexway-oss/tspkit/matrix"
)

// HeuristicType selects which constructive/metaheuristic builds the
// warm-start tour, mirroring the original solver's heuristic-selection enum
// for Hard Fixing and Local Branching.
type HeuristicType int

const (
	// HeuristicNearestNeighbor runs NearestNeighborTour (+2-opt if enabled).
	HeuristicNearestNeighbor HeuristicType = iota
	// HeuristicExtraMileage runs ExtraMileageTour (+2-opt if enabled).
	HeuristicExtraMileage
	// HeuristicVNS runs the Variable Neighborhood Search strategy.
	HeuristicVNS
	// HeuristicTabu runs the Tabu Search strategy.
	HeuristicTabu
	// HeuristicGrasp runs the GRASP-NN strategy.
	HeuristicGrasp
)

// strategyFor resolves a HeuristicType to its Strategy implementation.
func strategyFor(h HeuristicType) Strategy {
	switch h {
	case HeuristicExtraMileage:
		return NewExtraMileageStrategy()
	case HeuristicVNS:
		return NewVNSStrategy()
	case HeuristicTabu:
		return NewTabuSearchStrategy()
	case HeuristicGrasp:
		return NewGraspStrategy()
	default:
		return NewNearestNeighborStrategy()
	}
}

// RunWarmStart runs the chosen heuristic under its own share of the overall
// time budget (heuristicShare of limiter's remaining time), returning a
// feasible tour for the caller to use as a MIP start or fixing reference.
func RunWarmStart(ctx context.Context, dist matrix.Matrix, opts Options, h HeuristicType, heuristicShare float64, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
	if heuristicShare <= 0 || heuristicShare > 1 {
		heuristicShare = 1
	}
	sub := limiter
	if limiter != nil && limiter.Enabled() {
		budget := time.Duration(float64(limiter.Remaining()) * heuristicShare)
		sub = NewTimeLimiter(budget, 255)
	}

	return strategyFor(h).Run(ctx, dist, opts, sub, rec)
}
