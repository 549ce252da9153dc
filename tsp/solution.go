// Package tsp - thread-safe incumbent tracking shared by concurrent strategies.
package tsp

import (
	"math"
	"sync"

	"github.com/hexway-oss/tspkit/matrix"
)

// FeasibilityResult classifies a candidate tour against the invariants
// enforced by ValidateTour, mirroring the coarse categories a caller needs
// to decide whether to accept, log, or discard a candidate.
type FeasibilityResult int

const (
	// Feasible indicates the tour satisfies every ValidateTour invariant.
	Feasible FeasibilityResult = iota

	// DuplicatedEntry indicates some vertex appears more than once in Tour[0:n].
	DuplicatedEntry

	// UninitializedEntry indicates the tour is the wrong length or has a gap.
	UninitializedEntry

	// NonMatchingCost indicates the recomputed cost disagrees with the reported one.
	NonMatchingCost
)

// String renders a FeasibilityResult for logging.
func (f FeasibilityResult) String() string {
	switch f {
	case Feasible:
		return "feasible"
	case DuplicatedEntry:
		return "duplicated-entry"
	case UninitializedEntry:
		return "uninitialized-entry"
	case NonMatchingCost:
		return "non-matching-cost"
	default:
		return "unknown"
	}
}

// CheckFeasibility validates tour against n and start, and cross-checks its
// reported cost against a fresh recomputation from dist within eps.
func CheckFeasibility(dist matrix.Matrix, tour []int, n, start int, reportedCost, eps float64) FeasibilityResult {
	if len(tour) != n+1 || tour[0] != start || tour[len(tour)-1] != start {
		return UninitializedEntry
	}
	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n {
			return UninitializedEntry
		}
		if seen[v] {
			return DuplicatedEntry
		}
		seen[v] = true
	}
	// Length, endpoints, range, and uniqueness are all confirmed above, so
	// ValidateTour cannot fail here; skip the redundant call rather than
	// folding a would-be duplicate/length failure back into UninitializedEntry.

	actual, err := TourCost(dist, tour)
	if err != nil {
		return UninitializedEntry
	}
	if abs64(actual-reportedCost) > eps {
		return NonMatchingCost
	}

	return Feasible
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

// Incumbent holds the best-known feasible tour found so far, guarded by a
// mutex so it is safe to update from several goroutines: one incumbent per
// solve call, which the strategies in this package update sequentially.
type Incumbent struct {
	mu    sync.RWMutex
	tour  []int
	cost  float64
	found bool
}

// NewIncumbent returns an empty incumbent tracker.
func NewIncumbent() *Incumbent {
	return &Incumbent{cost: math.Inf(1)}
}

// Offer replaces the incumbent if cost is strictly better (lower) than the
// current best, within eps. Returns true if the offer was accepted.
func (inc *Incumbent) Offer(tour []int, cost, eps float64) bool {
	inc.mu.Lock()
	defer inc.mu.Unlock()

	if inc.found && cost >= inc.cost-eps {
		return false
	}
	inc.tour = CopyTour(tour)
	inc.cost = cost
	inc.found = true

	return true
}

// Snapshot returns a defensive copy of the current best tour and its cost.
func (inc *Incumbent) Snapshot() (tour []int, cost float64, found bool) {
	inc.mu.RLock()
	defer inc.mu.RUnlock()

	if !inc.found {
		return nil, 0, false
	}

	return CopyTour(inc.tour), inc.cost, true
}

