// Package tsp provides a catalog of Strategy implementations for the
// symmetric, metric Traveling Salesman Problem over distance matrices, with a
// consistent API, strict sentinel errors, deterministic behavior, and stable
// cost rounding (1e-9).
//
// # What & Why
//
// Given an n×n symmetric distance matrix dist, tsp computes a Hamiltonian
// cycle (tour) visiting all vertices once and returning to the start. Every
// solver in this package implements the Strategy interface and is looked up
// by name in StrategyCatalog.
//
//   - Constructive heuristics: nearest-neighbor, extra-mileage.
//   - Metaheuristics: GRASP, tabu search, variable neighborhood search (VNS),
//     a genetic algorithm.
//   - Matheuristics over the MIP relaxation (MIPContext): Benders-style
//     subtour elimination, branch-and-cut, hard-fixing, local-branching.
//
// # Algorithms & Complexity
//
//	nearest-neighbor — O(n²), optionally polished by 2-opt.
//	extra-mileage    — O(n³) worst-case cheapest-insertion construction.
//	grasp            — restarts of randomized-greedy NN + 2-opt, best kept.
//	tabu             — 2-opt neighborhood with a short-term tabu list.
//	vns              — shake (random segment reversals) + 2-opt polish cycle.
//	genetic          — order-crossover (OX) + swap mutation over a tour population.
//	benders          — iteratively solves the degree-2 relaxation and cuts
//	                   subtours found in the integer solution (lazy SECs).
//	branch-and-cut   — MIP relaxation + cutting planes + branching on fractional edges.
//	hard-fixing      — fixes a subset of edges from an incumbent and re-solves.
//	local-branching  — adds a neighborhood constraint around an incumbent and re-solves.
//
// # Determinism & Stability
//
//   - No time-based randomness. Any randomized scan uses Seed; Seed==0 gives fixed stream.
//   - Tie-breaks use indices. Costs are rounded to 1e-9 (round1e9) to avoid FP drift.
//   - CanonicalizeOrientationInPlace fixes tour direction under a fixed start vertex.
//
// # Input Requirements
//
//	dist must be a square n×n matrix, n≥2.  Diagonal ≈ 0 (|a_ii| ≤ 1e-12).  No negatives.
//	NaN is invalid.  +Inf denotes "missing edge" (allowed when RunMetricClosure==true).
//	dist must be symmetric: dist[i][j]==dist[j][i] within tolerance.
//
//	If opts.RunMetricClosure==false the validator rejects +Inf off-diagonal entries.
//	Otherwise, matrix-level metric closure (e.g., Floyd–Warshall) may be applied upstream.
//
// # Options
//
//	type Options struct {
//	    StartVertex int           // start/end vertex [0..n-1] (default 0)
//	    RunMetricClosure bool     // let +Inf entries pass validation (no closure is computed)
//	    EnableLocalSearch bool    // run a 2-opt post-pass where applicable
//	    TwoOptMaxIters int        // cap accepted 2-opt moves (0=unlimited)
//	    Eps         float64       // minimal strict improvement (default 1e-12)
//	    TimeLimit   time.Duration // soft wall-clock budget (0=none)
//	    Seed        int64         // deterministic RNG seed (0=stable default)
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrNegativeWeight, ErrAsymmetry, ErrNonZeroDiagonal,
//	ErrIncompleteGraph, ErrDimensionMismatch, ErrStartOutOfRange, ErrTimeLimit.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type TSResult struct {
//	    Tour []int    // len==n+1, Tour[0]==Tour[n]==StartVertex, each 0..n-1 appears once
//	    Cost float64  // rounded to 1e-9
//	}
//
// # Mathematics (references)
//
//	2-opt Δ:  (a→c)+(b→d)−(a→b)−(c→d)
//	Costs are stabilized by round1e9 for cross-platform reproducibility.
package tsp
