package tsp

import (
	"context"

	"github.com/hexway-oss/tspkit/matrix"
)

// GraspRestarts is the number of GRASP-NN construct(+2-opt) restarts a run
// performs unless ctx or the limiter stops it first. Options.TwoOptMaxIters
// only caps the 2-opt moves within each restart.
const GraspRestarts = 16

// GraspRCLSize is the restricted-candidate-list size used by every restart.
// Per design note (c): this is the only GRASP variant kept — a single fixed
// RCL size, not a schedule of shrinking/growing RCLs.
const GraspRCLSize = 3

// NewGraspStrategy wraps GraspNearestNeighborTour across GraspRestarts
// independent RNG streams (derived from Options.Seed via deriveRNG), each
// polished by TwoOpt when Options.EnableLocalSearch is set, keeping the best
// result found.
func NewGraspStrategy() Strategy {
	return RunFunc{
		StrategyName: "grasp-nn",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			base := rngFromSeed(opts.Seed)
			inc := NewIncumbent()

			for r := 0; r < GraspRestarts; r++ {
				if ctx.Err() != nil {
					break
				}
				if limiter != nil && limiter.Tick() {
					break
				}
				stream := deriveRNG(base, uint64(r))
				tour, cost, err := GraspNearestNeighborTour(dist, opts.StartVertex, GraspRCLSize, stream)
				if err != nil {
					continue
				}
				if opts.EnableLocalSearch {
					if t2, c2, err2 := TwoOpt(dist, tour, opts); err2 == nil {
						tour, cost = t2, c2
					}
				}
				if inc.Offer(tour, cost, opts.Eps) && rec != nil {
					rec.Record("grasp-nn", cost)
				}
			}

			tour, cost, found := inc.Snapshot()
			if !found {
				return TSResult{}, ErrIncompleteGraph
			}

			return TSResult{Tour: tour, Cost: cost}, nil
		},
	}
}
