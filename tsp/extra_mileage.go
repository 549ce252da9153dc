// Package tsp - Extra Mileage (cheapest insertion) constructive builder.
//
// ExtraMileageTour starts from the two farthest-apart vertices (a natural,
// deterministic seed edge) and repeatedly inserts the unvisited vertex that
// adds the least extra mileage into the cheapest edge of the partial tour,
// until every vertex is placed.
package tsp

import (
	"math"

	"github.com/hexway-oss/tspkit/matrix"
)

// ExtraMileageTour builds a closed tour over dist using cheapest insertion.
//
// Complexity: O(n^2) per insertion scan, O(n) insertions => O(n^3) worst case;
// acceptable for the instance sizes this package targets (n in the low
// thousands at most, consistent with the dense-matrix model throughout).
func ExtraMileageTour(dist matrix.Matrix) ([]int, float64, error) {
	w, n, err := prefetchWeights(dist)
	if err != nil {
		return nil, 0, err
	}
	if n < 3 {
		return nil, 0, ErrDimensionMismatch
	}

	// Seed edge: the farthest pair, broken by smallest (i,j) for determinism.
	seedI, seedJ := 0, 1
	best := w[0*n+1]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x := w[i*n+j]
			if math.IsInf(x, 0) {
				continue
			}
			if x > best {
				best = x
				seedI, seedJ = i, j
			}
		}
	}

	inTour := make([]bool, n)
	cycle := []int{seedI, seedJ}
	inTour[seedI] = true
	inTour[seedJ] = true

	for len(cycle) < n {
		bestDelta := math.Inf(1)
		bestVertex := -1
		bestPos := -1

		for v := 0; v < n; v++ {
			if inTour[v] {
				continue
			}
			for pos := 0; pos < len(cycle); pos++ {
				a := cycle[pos]
				b := cycle[(pos+1)%len(cycle)]
				delta := w[a*n+v] + w[v*n+b] - w[a*n+b]
				if delta < bestDelta {
					bestDelta = delta
					bestVertex = v
					bestPos = pos
				}
			}
		}
		if bestVertex < 0 {
			return nil, 0, ErrIncompleteGraph
		}

		// Insert bestVertex right after bestPos.
		newCycle := make([]int, 0, len(cycle)+1)
		newCycle = append(newCycle, cycle[:bestPos+1]...)
		newCycle = append(newCycle, bestVertex)
		newCycle = append(newCycle, cycle[bestPos+1:]...)
		cycle = newCycle
		inTour[bestVertex] = true
	}

	tour := make([]int, n+1)
	copy(tour, cycle)
	tour[n] = cycle[0]

	total, err := tourCostFlat(w, n, tour)
	if err != nil {
		return nil, 0, err
	}

	return tour, round1e9(total), nil
}

// CompletePartialTour extends an existing open path (not necessarily closed)
// over the remaining unvisited vertices using the same cheapest-insertion
// rule as ExtraMileageTour, then closes the cycle. No strategy in this
// package calls it.
func CompletePartialTour(dist matrix.Matrix, partial []int) ([]int, float64, error) {
	w, n, err := prefetchWeights(dist)
	if err != nil {
		return nil, 0, err
	}
	if len(partial) < 2 {
		return nil, 0, ErrDimensionMismatch
	}

	inTour := make([]bool, n)
	cycle := make([]int, len(partial))
	copy(cycle, partial)
	for _, v := range cycle {
		if v < 0 || v >= n {
			return nil, 0, ErrDimensionMismatch
		}
		inTour[v] = true
	}

	for len(cycle) < n {
		bestDelta := math.Inf(1)
		bestVertex := -1
		bestPos := -1

		for v := 0; v < n; v++ {
			if inTour[v] {
				continue
			}
			for pos := 0; pos < len(cycle); pos++ {
				a := cycle[pos]
				b := cycle[(pos+1)%len(cycle)]
				delta := w[a*n+v] + w[v*n+b] - w[a*n+b]
				if delta < bestDelta {
					bestDelta = delta
					bestVertex = v
					bestPos = pos
				}
			}
		}
		if bestVertex < 0 {
			return nil, 0, ErrIncompleteGraph
		}

		newCycle := make([]int, 0, len(cycle)+1)
		newCycle = append(newCycle, cycle[:bestPos+1]...)
		newCycle = append(newCycle, bestVertex)
		newCycle = append(newCycle, cycle[bestPos+1:]...)
		cycle = newCycle
		inTour[bestVertex] = true
	}

	tour := make([]int, n+1)
	copy(tour, cycle)
	tour[n] = cycle[0]

	total, err := tourCostFlat(w, n, tour)
	if err != nil {
		return nil, 0, err
	}

	return tour, round1e9(total), nil
}

// tourCostFlat sums edge costs over tour using a prefetched flat weight buffer.
func tourCostFlat(w []float64, n int, tour []int) (float64, error) {
	if len(tour) != n+1 {
		return 0, ErrDimensionMismatch
	}
	var total float64
	for i := 0; i < n; i++ {
		total += w[tour[i]*n+tour[i+1]]
	}

	return total, nil
}
