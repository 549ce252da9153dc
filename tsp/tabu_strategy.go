// Package tsp - Tabu Search over the 2-opt neighborhood: at each iteration,
// take the best non-tabu move (even if worsening), banning the reversed
// edge pair for a fixed tenure to escape local optima that plain 2-opt
// cannot leave.
package tsp

import (
	"context"
	"math"

	"github.com/hexway-oss/tspkit/matrix"
)

// TabuTenure is the number of iterations a reversed edge pair stays banned.
const TabuTenure = 20

// TabuMaxIters bounds the search when Options.TwoOptMaxIters is zero.
const TabuMaxIters = 2000

// NewTabuSearchStrategy seeds from NearestNeighborTour and runs tabu search
// over the 2-opt neighborhood, tracking the best feasible tour seen.
func NewTabuSearchStrategy() Strategy {
	return RunFunc{
		StrategyName: "tabu-search",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			w, n, err := prefetchWeights(dist)
			if err != nil {
				return TSResult{}, err
			}
			cur, curCost, err := NearestNeighborTour(dist, opts.StartVertex)
			if err != nil {
				return TSResult{}, err
			}

			maxIters := opts.TwoOptMaxIters
			if maxIters <= 0 {
				maxIters = TabuMaxIters
			}

			inc := NewIncumbent()
			inc.Offer(cur, curCost, opts.Eps)
			if rec != nil {
				rec.Record("tabu-search", curCost)
			}

			tabuUntil := make(map[[2]int]int)

			for iter := 0; iter < maxIters; iter++ {
				if ctx.Err() != nil {
					break
				}
				if limiter != nil && limiter.Tick() {
					break
				}

				bestDelta := math.Inf(1)
				bestI, bestK := -1, -1
				for i := 1; i < n-1; i++ {
					for k := i + 1; k < n; k++ {
						a, b := cur[i-1], cur[i]
						c, d := cur[k], cur[k+1]
						if a == c || b == d {
							continue
						}
						delta := w[a*n+c] + w[b*n+d] - w[a*n+b] - w[c*n+d]

						key := [2]int{b, c}
						if key[0] > key[1] {
							key[0], key[1] = key[1], key[0]
						}
						banned := tabuUntil[key] > iter
						improves := curCost+delta < inc.cost-opts.Eps
						if banned && !improves {
							continue
						}
						if delta < bestDelta {
							bestDelta = delta
							bestI, bestK = i, k
						}
					}
				}
				if bestI < 0 {
					break
				}

				if rerr := reverseArcInPlace(cur, bestI, bestK); rerr != nil {
					break
				}
				curCost = round1e9(curCost + bestDelta)

				key := [2]int{cur[bestI], cur[bestK]}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				tabuUntil[key] = iter + TabuTenure

				if inc.Offer(cur, curCost, opts.Eps) && rec != nil {
					rec.Record("tabu-search", curCost)
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

