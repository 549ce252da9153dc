// Package tsp - Branch-and-Cut strategy, emulated as the same outer-loop
// lazy-SEC cycle as NewBendersStrategy (see mip.go's doc comment on why
// gonum's lp.BNB cannot host true mid-search lazy callbacks). The original
// solver's num_threads knob has no effect here: lp.BNB's branch-and-bound
// search is single-threaded, so BranchCutWorkers only bounds a best-effort
// parallel warm-start race used to seed MIPContext's start hint.
package tsp

import (
	"context"
	"sync"

	"github.com/hexway-oss/tspkit/matrix"
)

// BranchCutMaxIterations bounds the outer cut-and-resolve loop.
const BranchCutMaxIterations = 128

// BranchCutWorkers is the number of concurrent warm-start heuristics raced
// before the MIP loop starts, emulating the original solver's thread pool.
const BranchCutWorkers = 4

// NewBranchAndCutStrategy races BranchCutWorkers warm-start heuristics for a
// MIP-start hint, then runs MIPContext's lazy-SEC loop to optimality.
func NewBranchAndCutStrategy() Strategy {
	return RunFunc{
		StrategyName: "branch-and-cut",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			mc, err := NewMIPContext(dist)
			if err != nil {
				return TSResult{}, err
			}

			heuristics := []HeuristicType{HeuristicNearestNeighbor, HeuristicExtraMileage, HeuristicGrasp, HeuristicTabu}
			results := make([]TSResult, BranchCutWorkers)
			var wg sync.WaitGroup
			for i := 0; i < BranchCutWorkers && i < len(heuristics); i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					r, werr := strategyFor(heuristics[i]).Run(ctx, dist, opts, nil, nil)
					if werr == nil {
						results[i] = r
					}
				}(i)
			}
			wg.Wait()

			bestCost := -1.0
			var bestTour []int
			for _, r := range results {
				if r.Tour == nil {
					continue
				}
				if bestTour == nil || r.Cost < bestCost {
					bestTour, bestCost = r.Tour, r.Cost
				}
			}
			if bestTour != nil {
				edges := make([][2]int, 0, len(bestTour)-1)
				for i := 0; i < len(bestTour)-1; i++ {
					edges = append(edges, [2]int{bestTour[i], bestTour[i+1]})
				}
				mc.AddMIPStart(edges)
			}

			mc.SetTimeLimit(limiter)
			res, err := mc.ReconstructTour(ctx, BranchCutMaxIterations, opts.StartVertex)
			if err != nil {
				return TSResult{}, err
			}
			if rec != nil {
				rec.Record("branch-and-cut", res.Cost)
			}

			return res, nil
		},
	}
}
