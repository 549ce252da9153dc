// Package tsp - MIP collaborator facade: a minimal symmetric-TSP integer
// program (degree-2 constraints + subtour-elimination constraints) solved
// via gonum's branch-and-bound simplex (lp.BNB).
//
// Variables are the upper-triangle edge indicators x_{ij}, i<j, packed by
// EdgePos into condensed upper-triangle indexing (unlike the full row-major
// w[i*n+j] weight buffers elsewhere in this package):
// pos(i,j) = i*n + j - (i+1)(i+2)/2.
//
// gonum's lp.BNB has no mid-search callback hook for lazy constraint
// generation, unlike a true branch-and-cut solver. MIPContext.Optimize
// emulates the lazy-SEC loop of Branch-and-Cut at the outer-loop level
// instead: solve the current relaxation to integer optimality, separate
// subtours from the result via SeparateComponents, add one SEC per subtour
// found, and resolve — repeating until a single Hamiltonian component
// emerges, a node/time budget is exhausted, or the problem proves infeasible.
// This is a deliberate deviation from true lazy-callback Branch-and-Cut,
// recorded because gonum exposes no hook to intercept integer-feasible
// solutions mid-search.
package tsp

import (
	"context"
	"errors"

	"github.com/hexway-oss/tspkit/matrix"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrMipInfeasible is returned by Optimize whenever lp.BNB reports an error,
// including a relaxation with no edge selection that satisfies every degree
// and SEC constraint.
var ErrMipInfeasible = errors.New("tsp: mip relaxation is infeasible")

// ErrMipFailure is returned by Optimize when maxRounds outer rounds pass
// without the integer solution forming a single Hamiltonian component.
var ErrMipFailure = errors.New("tsp: mip solve failed")

// EdgePos maps an unordered vertex pair (i,j), i != j, in an n-vertex
// instance to its condensed upper-triangle index. Swapping i and j yields
// the same position.
func EdgePos(n, i, j int) int {
	if i > j {
		i, j = j, i
	}

	return i*n + j - (i+1)*(i+2)/2
}

// numEdgeVars returns n*(n-1)/2, the number of upper-triangle variables.
func numEdgeVars(n int) int {
	return n * (n - 1) / 2
}

// MIPContext assembles and incrementally refines the symmetric-TSP integer
// program for one instance: degree-2 equality constraints are fixed at
// construction, inequality rows (edge bounds, fixed edges, SECs, local
// branching) accumulate across calls to FixEdge/AddSEC/AddLocalBranchingConstraint.
type MIPContext struct {
	n       int
	cost    []float64   // objective coefficients, indexed by EdgePos
	eqA     *mat.Dense  // degree-2 equality matrix, one row per vertex
	eqB     []float64   // degree-2 equality RHS (all 2s)
	ineqG   [][]float64 // inequality rows (bounds, fixed edges, SECs, local branching)
	ineqH   []float64
	timeout bool
	budget  *TimeLimiter
	warm    []float64 // optional MIP-start values, indexed by EdgePos
}

// NewMIPContext builds the degree-2 equality system and the default
// 0<=x_{ij}<=1 bound rows for an n-vertex symmetric instance with the given
// dense cost matrix.
func NewMIPContext(dist matrix.Matrix) (*MIPContext, error) {
	w, n, err := prefetchWeights(dist)
	if err != nil {
		return nil, err
	}
	if n < 3 {
		return nil, ErrDimensionMismatch
	}

	nv := numEdgeVars(n)
	cost := make([]float64, nv)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cost[EdgePos(n, i, j)] = w[i*n+j]
		}
	}

	eqData := make([]float64, n*nv)
	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			if u == v {
				continue
			}
			eqData[v*nv+EdgePos(n, u, v)] = 1
		}
	}
	eqB := make([]float64, n)
	for v := range eqB {
		eqB[v] = 2
	}

	mc := &MIPContext{
		n:    n,
		cost: cost,
		eqA:  mat.NewDense(n, nv, eqData),
		eqB:  eqB,
	}

	// Bound rows: x_{ij} <= 1 and -x_{ij} <= 0, for every variable.
	for k := 0; k < nv; k++ {
		upper := make([]float64, nv)
		upper[k] = 1
		mc.ineqG = append(mc.ineqG, upper)
		mc.ineqH = append(mc.ineqH, 1)

		lower := make([]float64, nv)
		lower[k] = -1
		mc.ineqG = append(mc.ineqG, lower)
		mc.ineqH = append(mc.ineqH, 0)
	}

	return mc, nil
}

// FixEdge forces x_{ij} to value (0 or 1) by adding a tight equality-as-two-
// inequalities pair. Used by the Hard Fixing matheuristic to freeze edges
// taken from a heuristic incumbent before re-optimizing the remainder.
func (mc *MIPContext) FixEdge(i, j int, value float64) {
	pos := EdgePos(mc.n, i, j)
	row := make([]float64, numEdgeVars(mc.n))
	row[pos] = 1
	mc.ineqG = append(mc.ineqG, row)
	mc.ineqH = append(mc.ineqH, value)

	negRow := make([]float64, numEdgeVars(mc.n))
	negRow[pos] = -1
	mc.ineqG = append(mc.ineqG, negRow)
	mc.ineqH = append(mc.ineqH, -value)
}

// AddSEC adds a subtour-elimination constraint for component: the sum of
// edge variables with both endpoints in component must not exceed
// len(component)-1.
func (mc *MIPContext) AddSEC(component []int) {
	row := make([]float64, numEdgeVars(mc.n))
	for _, pair := range edgesWithin(component) {
		row[EdgePos(mc.n, pair[0], pair[1])] = 1
	}
	mc.ineqG = append(mc.ineqG, row)
	mc.ineqH = append(mc.ineqH, float64(len(component)-1))
}

// AddLocalBranchingConstraint restricts the search to tours within Hamming
// distance k of reference (a full tour, as a closed cycle): it bounds the
// number of reference edges that may be dropped by adding
// sum_{(i,j) not in reference} x_{ij} <= k, expressed equivalently as a
// lower bound on the number of reference edges kept.
func (mc *MIPContext) AddLocalBranchingConstraint(reference []int, k int) {
	refPositions := make(map[int]bool, len(reference)-1)
	for idx := 0; idx < len(reference)-1; idx++ {
		refPositions[EdgePos(mc.n, reference[idx], reference[idx+1])] = true
	}

	row := make([]float64, numEdgeVars(mc.n))
	for pos := range refPositions {
		row[pos] = -1
	}
	// sum_{ref} (1 - x) <= k  <=>  -sum_{ref} x <= k - |ref|
	mc.ineqG = append(mc.ineqG, row)
	mc.ineqH = append(mc.ineqH, float64(k-len(refPositions)))
}

// AddMIPStart records a feasible edge selection (the listed vertex pairs set
// to 1 in a vector indexed by EdgePos) as a warm-start hint. gonum's lp.BNB
// has no warm-start input and Optimize does not read the stored hint, so it
// does not influence the solve or its result.
func (mc *MIPContext) AddMIPStart(edges [][2]int) {
	warm := make([]float64, numEdgeVars(mc.n))
	for _, e := range edges {
		warm[EdgePos(mc.n, e[0], e[1])] = 1
	}
	mc.warm = warm
}

// SetTimeLimit attaches a wall-clock budget to the outer SEC-separation loop.
func (mc *MIPContext) SetTimeLimit(limiter *TimeLimiter) {
	mc.budget = limiter
}

// mipOutcome is the result of one Optimize call.
type mipOutcome struct {
	x    []float64
	cost float64
}

// Optimize runs the outer lazy-SEC loop: solve the current relaxation with
// lp.BNB, separate subtours from the integer solution, add SECs, and repeat.
// It stops when a single Hamiltonian component is found, ctx is canceled, the
// attached TimeLimiter expires, or maxRounds outer iterations are exhausted.
func (mc *MIPContext) Optimize(ctx context.Context, maxRounds int) (mipOutcome, error) {
	nv := numEdgeVars(mc.n)
	whole := make([]bool, nv)
	for i := range whole {
		whole[i] = true
	}
	A := mc.eqA

	for round := 0; round < maxRounds; round++ {
		if ctx.Err() != nil {
			return mipOutcome{}, ErrTimeLimit
		}
		if mc.budget != nil && mc.budget.Expired() {
			return mipOutcome{}, ErrTimeLimit
		}

		G := denseFromRows(mc.ineqG, nv)
		fit, x, err := lp.BNB(mc.cost, A, mc.eqB, G, mc.ineqH, whole, 1e-9)
		if err != nil {
			return mipOutcome{}, ErrMipInfeasible
		}

		ok, subtours := SeparateComponents(mc.n, func(i, j int) bool {
			return x[EdgePos(mc.n, i, j)] > 0.5
		})
		if ok {
			return mipOutcome{x: x, cost: round1e9(fit)}, nil
		}
		for _, c := range subtours {
			mc.AddSEC(c)
		}
	}

	return mipOutcome{}, ErrMipFailure
}

// ExtractXStar runs Optimize and returns the raw 0/1 edge-selection vector.
func (mc *MIPContext) ExtractXStar(ctx context.Context, maxRounds int) ([]float64, error) {
	out, err := mc.Optimize(ctx, maxRounds)
	if err != nil {
		return nil, err
	}

	return out.x, nil
}

// ExtractCost runs Optimize and returns the stabilized objective value.
func (mc *MIPContext) ExtractCost(ctx context.Context, maxRounds int) (float64, error) {
	out, err := mc.Optimize(ctx, maxRounds)
	if err != nil {
		return 0, err
	}

	return out.cost, nil
}

// ReconstructTour runs Optimize and walks the resulting 0/1 edge selection
// into an explicit closed tour starting at start.
func (mc *MIPContext) ReconstructTour(ctx context.Context, maxRounds, start int) (TSResult, error) {
	out, err := mc.Optimize(ctx, maxRounds)
	if err != nil {
		return TSResult{}, err
	}

	adj := make([][]int, mc.n)
	for i := 0; i < mc.n; i++ {
		for j := i + 1; j < mc.n; j++ {
			if out.x[EdgePos(mc.n, i, j)] > 0.5 {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	tour := make([]int, mc.n+1)
	visited := make([]bool, mc.n)
	tour[0] = start
	visited[start] = true
	cur := start
	for step := 1; step < mc.n; step++ {
		next := -1
		for _, cand := range adj[cur] {
			if !visited[cand] {
				next = cand
				break
			}
		}
		if next < 0 {
			return TSResult{}, ErrIncompleteGraph
		}
		visited[next] = true
		tour[step] = next
		cur = next
	}
	tour[mc.n] = start

	if verr := ValidateTour(tour, mc.n, start); verr != nil {
		return TSResult{}, verr
	}

	return TSResult{Tour: tour, Cost: out.cost}, nil
}

func denseFromRows(rows [][]float64, cols int) *mat.Dense {
	data := make([]float64, len(rows)*cols)
	for i, row := range rows {
		copy(data[i*cols:(i+1)*cols], row)
	}

	return mat.NewDense(len(rows), cols, data)
}
