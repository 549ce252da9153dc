// Package tsp - Or-opt style n-opt: relocating short segments elsewhere in
// the tour, complementing the edge-exchange moves in two_opt.go.
//
// ComputeNOptDelta/ApplyNOptMove operate on a segment of L consecutive
// vertices (L in [1,maxSegLen]) starting at position i, relocated to just
// after position k (optionally reversed). This is the generalization the
// edge-exchange family (2-opt, 3-opt) does not cover: 2-opt/3-opt only ever
// reconnect existing edges, never move a short chain of vertices to a
// distant part of the tour.
//
// Design note carried from the local-search engines above: candidate
// positions are scanned in ascending order without re-validating that the
// tour's edge list is already free of crossing artifacts left by a prior
// pass; callers are expected to run this after, not instead of, 2-opt.
package tsp

import (
	"github.com/hexway-oss/tspkit/matrix"
)

// NOptDefaultMaxSegLen bounds relocated segment length for RunNOpt.
const NOptDefaultMaxSegLen = 3

// ComputeNOptDelta returns the cost change of relocating the L-vertex segment
// tour[i:i+L] to sit immediately after position k (k outside [i-1, i+L-1]),
// optionally reversing the segment. A negative delta is an improving move.
func ComputeNOptDelta(w []float64, n int, tour []int, i, segLen, k int, reversed bool) (float64, bool) {
	if segLen < 1 || i < 0 || i+segLen > n || k < 0 || k >= n {
		return 0, false
	}
	if (k >= i-1 && k < i+segLen) || (i == 0 && k == n-1) {
		return 0, false // overlaps or is adjacent to the segment's own gap
	}

	prev := tour[(i-1+n)%n]
	segStart := tour[i]
	segEnd := tour[i+segLen-1]
	next := tour[(i+segLen)%n]

	removed := w[prev*n+segStart] + w[segEnd*n+next]
	bridge := w[prev*n+next]

	a := tour[k]
	b := tour[(k+1)%n]
	removedEdge := w[a*n+b]

	first, last := segStart, segEnd
	if reversed {
		first, last = segEnd, segStart
	}
	added := w[a*n+first] + w[last*n+b]

	delta := (bridge + added) - (removed + removedEdge)

	return delta, true
}

// ApplyNOptMove relocates tour[i:i+segLen] to follow position k in a new
// slice, reversing the segment first if requested, and returns the result.
// tour must be a plain vertex cycle without an explicit closing duplicate
// (RunNOpt manages the closing entry itself).
func ApplyNOptMove(tour []int, i, segLen, k int, reversed bool) []int {
	n := len(tour)
	seg := make([]int, segLen)
	copy(seg, tour[i:i+segLen])
	if reversed {
		for l, r := 0, segLen-1; l < r; l, r = l+1, r-1 {
			seg[l], seg[r] = seg[r], seg[l]
		}
	}

	rest := make([]int, 0, n-segLen)
	rest = append(rest, tour[:i]...)
	rest = append(rest, tour[i+segLen:]...)

	// Find k's vertex identity in rest (k was an index into the original tour).
	kVertex := tour[k]
	out := make([]int, 0, n)
	for _, v := range rest {
		out = append(out, v)
		if v == kVertex {
			out = append(out, seg...)
		}
	}

	return out
}

// RunNOpt applies first-improvement Or-opt relocation passes (segment
// lengths 1..maxSegLen, both orientations) until no improving move remains
// or limiter expires. Returns the refined closed tour and its stabilized cost;
// when limiter expires it returns the tour reached so far, a zero cost and
// ErrTimeLimit.
func RunNOpt(dist matrix.Matrix, initTour []int, maxSegLen int, limiter *TimeLimiter) ([]int, float64, error) {
	if initTour == nil || len(initTour) < 2 {
		return nil, 0, ErrDimensionMismatch
	}
	n := len(initTour) - 1
	if n < 4 {
		cost, err := TourCost(dist, initTour)
		if err != nil {
			return nil, 0, err
		}

		return CopyTour(initTour), cost, nil
	}
	if maxSegLen < 1 {
		maxSegLen = NOptDefaultMaxSegLen
	}
	w, wn, err := prefetchWeights(dist)
	if err != nil {
		return nil, 0, err
	}
	if wn != n {
		return nil, 0, ErrDimensionMismatch
	}

	cycle := make([]int, n)
	copy(cycle, initTour[:n])

	improved := true
	for improved {
		improved = false
		for segLen := 1; segLen <= maxSegLen && segLen < n-2; segLen++ {
			for i := 0; i < n; i++ {
				if limiter != nil && limiter.Tick() {
					return closeCycle(cycle), 0, ErrTimeLimit
				}
				if i+segLen > n {
					continue
				}
				for k := 0; k < n; k++ {
					for _, reversed := range [2]bool{false, true} {
						delta, ok := ComputeNOptDelta(w, n, cycle, i, segLen, k, reversed)
						if !ok || delta >= -DefaultEps {
							continue
						}
						cycle = ApplyNOptMove(cycle, i, segLen, k, reversed)
						improved = true
					}
				}
				if improved {
					break
				}
			}
			if improved {
				break
			}
		}
	}

	tour := closeCycle(cycle)
	cost, err := tourCostFlat(w, n, tour)
	if err != nil {
		return nil, 0, err
	}

	return tour, round1e9(cost), nil
}

func closeCycle(cycle []int) []int {
	out := make([]int, len(cycle)+1)
	copy(out, cycle)
	out[len(cycle)] = cycle[0]

	return out
}
