// Package tsp - subtour detection over a fractional/integer edge-selection
// vector, used by the MIP collaborator facade to separate subtour-elimination
// constraints (SECs) between solver rounds.
package tsp

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components partitions n vertices into connected components according to
// which undirected edges {i,j} are selected (selected(i,j) reports true for
// a present edge). It is the building block SeparateComponents uses to turn
// a relaxed MIP solution into candidate subtour-elimination constraints.
//
// Complexity: O(n^2) to enumerate candidate edges + O(V+E) for the
// connected-components search.
func Components(n int, selected func(i, j int) bool) [][]int {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if selected(i, j) {
				g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
			}
		}
	}

	raw := topo.ConnectedComponents(g)
	out := make([][]int, len(raw))
	for ci, comp := range raw {
		ids := make([]int, len(comp))
		for vi, node := range comp {
			ids[vi] = int(node.ID())
		}
		sort.Ints(ids)
		out[ci] = ids
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out
}

// SeparateComponents inspects an n-vertex edge selection and reports whether
// it forms a single Hamiltonian cycle's worth of components (i.e., exactly
// one component spanning all n vertices) or multiple disjoint subtours.
// When subtours are found, it returns one candidate SEC violator per
// component with fewer than n vertices — the set the MIP facade should add
// "sum of edges inside this component <= |component|-1" constraints for.
func SeparateComponents(n int, selected func(i, j int) bool) (ok bool, subtours [][]int) {
	comps := Components(n, selected)
	if len(comps) == 1 && len(comps[0]) == n {
		return true, nil
	}

	for _, c := range comps {
		if len(c) < n {
			subtours = append(subtours, c)
		}
	}

	return false, subtours
}

// edgesWithin returns every unordered pair (i,j), i<j, with both endpoints in
// component. The MIP facade uses this to build a SEC's left-hand side.
func edgesWithin(component []int) [][2]int {
	pairs := make([][2]int, 0, len(component)*(len(component)-1)/2)
	for a := 0; a < len(component); a++ {
		for b := a + 1; b < len(component); b++ {
			pairs = append(pairs, [2]int{component[a], component[b]})
		}
	}

	return pairs
}

var _ graph.Undirected = (*simple.UndirectedGraph)(nil)
