// Package tsp - Genetic Algorithm: order-crossover (OX) + swap mutation over
// a population of permutations, tournament selection with elitism.
package tsp

import (
	"context"
	"math/rand"

	"github.com/hexway-oss/tspkit/matrix"
)

// GAPopulationSize is the number of individuals maintained each generation.
const GAPopulationSize = 40

// GAGenerations bounds evolution when Options.TwoOptMaxIters is zero.
const GAGenerations = 300

// GAMutationRate is the per-offspring probability of a swap mutation.
const GAMutationRate = 0.15

// GATournamentSize is the number of candidates sampled per tournament pick.
const GATournamentSize = 4

// GAElites is the number of top individuals copied unchanged each generation.
const GAElites = 2

// NewGeneticStrategy runs a permutation GA seeded with one NearestNeighbor
// tour plus randomized permutations, returning the best tour found.
func NewGeneticStrategy() Strategy {
	return RunFunc{
		StrategyName: "genetic",
		Fn: func(ctx context.Context, dist matrix.Matrix, opts Options, limiter *TimeLimiter, rec *Recorder) (TSResult, error) {
			w, n, err := prefetchWeights(dist)
			if err != nil {
				return TSResult{}, err
			}
			if n < 4 {
				tour, cost, nnErr := NearestNeighborTour(dist, opts.StartVertex)
				if nnErr != nil {
					return TSResult{}, nnErr
				}

				return TSResult{Tour: tour, Cost: cost}, nil
			}

			rng := rngFromSeed(opts.Seed)
			pop := make([][]int, GAPopulationSize)
			if seed, _, nnErr := NearestNeighborTour(dist, opts.StartVertex); nnErr == nil {
				pop[0] = seed[:n]
			} else {
				pop[0] = identityPerm(n)
			}
			for i := 1; i < GAPopulationSize; i++ {
				perm, _ := permRange(n, deriveRNG(rng, uint64(i)))
				pop[i] = rotateToFront(perm, opts.StartVertex)
			}

			fitness := func(p []int) float64 {
				closed := append(append([]int{}, p...), p[0])
				c, _ := tourCostFlat(w, n, closed)

				return c
			}

			costs := make([]float64, GAPopulationSize)
			for i, p := range pop {
				costs[i] = fitness(p)
			}

			generations := opts.TwoOptMaxIters
			if generations <= 0 {
				generations = GAGenerations
			}

			bestIdx := argmin(costs)
			best := CopyTour(append(append([]int{}, pop[bestIdx]...), pop[bestIdx][0]))
			bestCost := costs[bestIdx]
			if rec != nil {
				rec.Record("genetic", bestCost)
			}

			for gen := 0; gen < generations; gen++ {
				if ctx.Err() != nil {
					break
				}
				if limiter != nil && limiter.Tick() {
					break
				}

				nextPop := make([][]int, 0, GAPopulationSize)
				order := argsort(costs)
				for e := 0; e < GAElites && e < len(order); e++ {
					nextPop = append(nextPop, pop[order[e]])
				}

				for len(nextPop) < GAPopulationSize {
					p1 := tournamentPick(pop, costs, rng, GATournamentSize)
					p2 := tournamentPick(pop, costs, rng, GATournamentSize)
					child := orderCrossover(p1, p2, rng)
					if rng.Float64() < GAMutationRate {
						swapMutate(child, rng)
					}
					nextPop = append(nextPop, child)
				}

				pop = nextPop
				for i, p := range pop {
					costs[i] = fitness(p)
				}
				gi := argmin(costs)
				if costs[gi] < bestCost-opts.Eps {
					bestCost = costs[gi]
					best = append(append([]int{}, pop[gi]...), pop[gi][0])
					if rec != nil {
						rec.Record("genetic", bestCost)
					}
				}
			}

			if opts.EnableLocalSearch {
				if t2, c2, err2 := TwoOpt(dist, best, opts); err2 == nil {
					best, bestCost = t2, c2
				}
			}

			return TSResult{Tour: best, Cost: round1e9(bestCost)}, nil
		},
	}
}

func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// rotateToFront rotates perm so that start is its first element, preserving order.
func rotateToFront(perm []int, start int) []int {
	idx := 0
	for i, v := range perm {
		if v == start {
			idx = i
			break
		}
	}
	out := make([]int, len(perm))
	copy(out, perm[idx:])
	copy(out[len(perm)-idx:], perm[:idx])

	return out
}

func argmin(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x < xs[best] {
			best = i
		}
	}

	return best
}

func argsort(xs []float64) []int {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && xs[idx[j]] < xs[idx[j-1]]; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}

	return idx
}

func tournamentPick(pop [][]int, costs []float64, rng *rand.Rand, size int) []int {
	best := rng.Intn(len(pop))
	for i := 1; i < size; i++ {
		c := rng.Intn(len(pop))
		if costs[c] < costs[best] {
			best = c
		}
	}

	return pop[best]
}

// orderCrossover implements OX: copy a random slice from p1 verbatim, fill
// the rest in p2's relative order, keeping position 0 fixed to preserve the
// shared start vertex.
func orderCrossover(p1, p2 []int, rng *rand.Rand) []int {
	n := len(p1)
	child := make([]int, n)
	for i := range child {
		child[i] = -1
	}
	child[0] = p1[0]

	a := 1 + rng.Intn(n-1)
	b := 1 + rng.Intn(n-1)
	if a > b {
		a, b = b, a
	}
	used := make(map[int]bool, n)
	used[child[0]] = true
	for i := a; i <= b; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}

	pos := 1
	for _, v := range p2 {
		if used[v] {
			continue
		}
		for pos >= a && pos <= b {
			pos++
		}
		if pos >= n {
			break
		}
		child[pos] = v
		used[v] = true
		pos++
	}

	return child
}

func swapMutate(p []int, rng *rand.Rand) {
	if len(p) < 3 {
		return
	}
	i := 1 + rng.Intn(len(p)-1)
	j := 1 + rng.Intn(len(p)-1)
	p[i], p[j] = p[j], p[i]
}
