// Package tsp defines common types, configuration options, and sentinel errors used by
// the symmetric Traveling Salesman heuristics and matheuristics in this package.
//
// Design goals:
//   - Mathematical rigor: precise, specialized errors; explicit invariants for tours.
//   - Extensibility: a single Options struct covers every Strategy implementation.
//   - Determinism: all random-driven heuristics are controlled by a Seed.
//   - Zero surprises: sensible defaults (2-opt local search enabled by default).
package tsp

import (
	"errors"
	"time"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility, algorithm governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i].
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrNonZeroDiagonal indicates some dist[i][i] ≠ 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self-distance")

	// ErrIncompleteGraph is returned when no Hamiltonian cycle exists
	// (one or more edges missing, represented by math.Inf(1)).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix (no Hamiltonian cycle possible)")

	// ErrDimensionMismatch indicates an unexpected matrix/tour shape.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// Planner/engine governance sentinels.
var (
	// ErrTimeLimit indicates a user-specified time budget was exhausted.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// TSResult encapsulates the output of a TSP solver.
type TSResult struct {
	// Tour is an ordered sequence of vertex indices representing the Hamiltonian cycle.
	// Invariants:
	//   len(Tour) == n + 1
	//   Tour[0] == Tour[n] == StartVertex
	//   each vertex in [0..n-1] appears exactly once in Tour[0:n]
	Tour []int

	// Cost is the total distance along the cycle, computed from the provided distance matrix.
	Cost float64
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs
const (
	// DefaultEps is the minimal strictly-better improvement for local search steps.
	DefaultEps = 1e-12

	// DefaultTwoOptMaxIters caps the number of accepted 2-opt moves across all iterations.
	DefaultTwoOptMaxIters = 10_000
)

// Options defines configurable parameters shared by every Strategy.
// Zero value is not meaningful; use DefaultOptions() and override fields as needed.
//
// Every strategy solves symmetric, metric instances; the distance matrix must
// satisfy dist[i][j] == dist[j][i] for all i, j.
type Options struct {
	// StartVertex selects the start/end vertex index [0..n-1]. Default: 0.
	StartVertex int

	// RunMetricClosure, if true, lets ValidateInstance accept +Inf off-diagonal
	// entries. No metric closure is computed: the +Inf entries reach the
	// strategies unchanged.
	RunMetricClosure bool

	// EnableLocalSearch applies a 2-opt post-pass after a strategy's constructive phase.
	// Default: true.
	EnableLocalSearch bool

	// TwoOptMaxIters bounds the total number of accepted 2-opt moves.
	// Zero ⇒ unlimited. Default: 10_000.
	TwoOptMaxIters int

	// Eps is the minimal improvement considered significant in local search comparisons.
	// Default: 1e-12.
	Eps float64

	// TimeLimit optionally bounds wall-clock time for long-running heuristics/search.
	// Zero means “no limit”.
	TimeLimit time.Duration

	// Seed controls deterministic behavior of randomized components (seeded RNG).
	// Default: 0 (fixed seed → deterministic).
	Seed int64
}

// DefaultOptions returns a fully populated Options struct with safe, production-ready defaults:
//   - Start at vertex 0
//   - No metric closure by default
//   - Local search enabled (2-opt) with conservative iteration cap
//   - Deterministic RNG (Seed=0), no time limit
func DefaultOptions() Options {
	return Options{
		StartVertex:       0,
		RunMetricClosure:  false,
		EnableLocalSearch: true,
		TwoOptMaxIters:    DefaultTwoOptMaxIters,
		Eps:               DefaultEps,
		TimeLimit:         0,
		Seed:              0,
	}
}
