// Package tsp - constructive tour builders: Nearest Neighbor and its GRASP variant.
//
// NearestNeighborTour is the classic greedy heuristic: repeatedly step to the
// closest unvisited vertex. GraspNearestNeighborTour generalizes it with a
// restricted candidate list (RCL): at each step, the next vertex is drawn
// uniformly at random from the rcl cheapest unvisited candidates rather than
// always taking the single cheapest one, trading a small amount of greediness
// for the ability to produce many distinct starting tours under distinct seeds
// (see RunWarmStart and the GRASP-NN local-search strategy).
package tsp

import (
	"math"
	"math/rand"

	"github.com/hexway-oss/tspkit/matrix"
)

// prefetchWeights copies dist into a flat row-major buffer w[i*n+j], enforcing
// the package's sentinel semantics (NaN/negative rejected, +Inf passed through).
// Shared by every constructive builder to avoid repeating the At/err plumbing.
func prefetchWeights(dist matrix.Matrix) (w []float64, n int, err error) {
	if dist == nil {
		return nil, 0, ErrNonSquare
	}
	nr, nc := dist.Rows(), dist.Cols()
	if nr != nc || nr <= 0 {
		return nil, 0, ErrNonSquare
	}
	n = nr
	w = make([]float64, n*n)

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = dist.At(i, j)
			if err != nil {
				return nil, 0, ErrDimensionMismatch
			}
			if math.IsNaN(x) {
				return nil, 0, ErrDimensionMismatch
			}
			if x < 0 {
				return nil, 0, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}

	return w, n, nil
}

// NearestNeighborTour builds a closed tour starting at start by always moving
// to the nearest unvisited vertex, breaking ties by smallest index.
//
// Complexity: O(n^2) time, O(n) space.
func NearestNeighborTour(dist matrix.Matrix, start int) ([]int, float64, error) {
	w, n, err := prefetchWeights(dist)
	if err != nil {
		return nil, 0, err
	}
	if n < 2 {
		return nil, 0, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, 0, ErrStartOutOfRange
	}

	visited := make([]bool, n)
	tour := make([]int, n+1)
	tour[0] = start
	visited[start] = true

	var total float64
	cur := start
	for step := 1; step < n; step++ {
		best := -1
		bestW := math.Inf(1)
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			x := w[cur*n+v]
			if x < bestW {
				bestW = x
				best = v
			}
		}
		if best < 0 {
			return nil, 0, ErrIncompleteGraph
		}
		visited[best] = true
		tour[step] = best
		total += bestW
		cur = best
	}
	closing := w[cur*n+start]
	if math.IsInf(closing, 0) {
		return nil, 0, ErrIncompleteGraph
	}
	total += closing
	tour[n] = start

	return tour, round1e9(total), nil
}

// GraspNearestNeighborTour is Nearest Neighbor with a restricted candidate
// list of size rclSize: at each step the next vertex is sampled uniformly
// from the rclSize cheapest unvisited candidates (rclSize<=1 degenerates to
// plain NearestNeighborTour). rng drives the sampling; pass a stream from
// deriveRNG/NewRNG for reproducibility.
//
// Complexity: O(rclSize·n) per step (partial selection of the rclSize
// cheapest candidates), O(rclSize·n^2) overall; O(n) space.
func GraspNearestNeighborTour(dist matrix.Matrix, start, rclSize int, rng *rand.Rand) ([]int, float64, error) {
	w, n, err := prefetchWeights(dist)
	if err != nil {
		return nil, 0, err
	}
	if n < 2 {
		return nil, 0, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, 0, ErrStartOutOfRange
	}
	if rclSize < 1 {
		rclSize = 1
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	visited := make([]bool, n)
	tour := make([]int, n+1)
	tour[0] = start
	visited[start] = true

	type cand struct {
		v int
		w float64
	}
	cands := make([]cand, 0, n)

	var total float64
	cur := start
	for step := 1; step < n; step++ {
		cands = cands[:0]
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			x := w[cur*n+v]
			if math.IsInf(x, 0) {
				continue
			}
			cands = append(cands, cand{v: v, w: x})
		}
		if len(cands) == 0 {
			return nil, 0, ErrIncompleteGraph
		}
		// Partial selection sort over the RCL window only; n is expected small
		// to moderate for GRASP restarts, so O(k*len(cands)) is acceptable.
		k := rclSize
		if k > len(cands) {
			k = len(cands)
		}
		for i := 0; i < k; i++ {
			minIdx := i
			for j := i + 1; j < len(cands); j++ {
				if cands[j].w < cands[minIdx].w {
					minIdx = j
				}
			}
			cands[i], cands[minIdx] = cands[minIdx], cands[i]
		}
		pick := cands[rng.Intn(k)]

		visited[pick.v] = true
		tour[step] = pick.v
		total += pick.w
		cur = pick.v
	}
	closing := w[cur*n+start]
	if math.IsInf(closing, 0) {
		return nil, 0, ErrIncompleteGraph
	}
	total += closing
	tour[n] = start

	return tour, round1e9(total), nil
}
