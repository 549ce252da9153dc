// Package geometry defines the node model and Euclidean cost derivation for
// a symmetric TSP instance: a flat list of planar points plus the dense
// pairwise-distance matrix derived from them.
package geometry

import (
	"errors"
	"math"

	"github.com/hexway-oss/tspkit/matrix"
)

// ErrTooFewNodes signals that an instance was requested with fewer than two nodes.
var ErrTooFewNodes = errors.New("geometry: instance requires at least 2 nodes")

// ErrDuplicateCoordinates signals that two nodes share identical coordinates.
// Neither constructor in this package checks for duplicates or returns it.
var ErrDuplicateCoordinates = errors.New("geometry: duplicate node coordinates")

// Node is a single labeled point in the plane.
type Node struct {
	ID   int
	X, Y float64
}

// Instance is an immutable planar TSP instance: an ordered list of nodes and
// the dense symmetric cost matrix derived from their Euclidean distances.
// Node i's row/column in Costs is always i; Costs is always square and its
// diagonal is always zero.
type Instance struct {
	nodes []Node
	costs *matrix.Dense
}

// NewInstanceFromNodes builds an Instance from an explicit node list.
// Node IDs are reassigned to the node's position in the slice (0..n-1);
// callers that need stable external identifiers should track them separately.
//
// Complexity: O(n^2) to derive the dense cost matrix.
func NewInstanceFromNodes(points []Node) (*Instance, error) {
	n := len(points)
	if n < 2 {
		return nil, ErrTooFewNodes
	}

	nodes := make([]Node, n)
	rows := make([][]float64, n)
	for i := range points {
		nodes[i] = Node{ID: i, X: points[i].X, Y: points[i].Y}
		rows[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			rows[i][j] = euclid(nodes[i], nodes[j])
		}
	}

	dense, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}

	return &Instance{nodes: nodes, costs: dense}, nil
}

// NewRandomInstance generates n nodes with real coordinates drawn uniformly
// from [0, area) x [0, area) using rng, and derives their cost matrix.
// Passing a seeded *rand.Rand (see tsp.NewRNG) makes generation reproducible.
func NewRandomInstance(n int, area float64, rng Randomizer) (*Instance, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	points := make([]Node, n)
	for i := 0; i < n; i++ {
		points[i] = Node{ID: i, X: rng.Float64() * area, Y: rng.Float64() * area}
	}

	return NewInstanceFromNodes(points)
}

// Randomizer is the minimal surface NewRandomInstance needs from a random
// source; *math/rand.Rand satisfies it.
type Randomizer interface {
	Float64() float64
}

// N returns the number of nodes in the instance.
func (inst *Instance) N() int {
	return len(inst.nodes)
}

// Node returns the node at index i. The caller must ensure 0 <= i < N().
func (inst *Instance) Node(i int) Node {
	return inst.nodes[i]
}

// Nodes returns a defensive copy of the instance's node list.
func (inst *Instance) Nodes() []Node {
	out := make([]Node, len(inst.nodes))
	copy(out, inst.nodes)

	return out
}

// Costs returns the dense distance matrix backing this instance. Callers
// must not mutate it; use Costs().Clone() if a mutable copy is required.
func (inst *Instance) Costs() matrix.Matrix {
	return inst.costs
}

// euclid computes the planar Euclidean distance between two nodes.
func euclid(a, b Node) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}
