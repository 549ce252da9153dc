package tsp

// StrategyCatalog lists every Strategy factory by the name the CLI and
// config.Options.Algorithm select it with.
var StrategyCatalog = map[string]func() Strategy{
	"nearest-neighbor": NewNearestNeighborStrategy,
	"extra-mileage":    NewExtraMileageStrategy,
	"grasp":            NewGraspStrategy,
	"tabu":             NewTabuSearchStrategy,
	"vns":              NewVNSStrategy,
	"genetic":          NewGeneticStrategy,
	"benders":          NewBendersStrategy,
	"branch-and-cut":   NewBranchAndCutStrategy,
	"hard-fixing":      func() Strategy { return NewHardFixingStrategy(HeuristicNearestNeighbor) },
	"local-branching":  func() Strategy { return NewLocalBranchingStrategy(HeuristicNearestNeighbor) },
}
