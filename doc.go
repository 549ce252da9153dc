// Package tspkit provides a framework for constructing and improving
// solutions to the symmetric Euclidean Traveling Salesman Problem.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	geometry/  — Node/Instance types, Euclidean cost derivation
//	matrix/    — dense cost-matrix storage (Matrix interface + Dense)
//	tsp/       — tour utilities, constructive builders, local search,
//	             heuristic/exact/matheuristic strategies, the MIP facade
//	config/    — layered configuration (flags over file over defaults)
//	tsplibio/  — TSPLIB instance and solution file I/O
//	plotting/  — tour and convergence-curve rendering
//	tsplog/    — verbosity-gated structured logging
//	cmd/tspkit — command-line entry point
package tspkit
