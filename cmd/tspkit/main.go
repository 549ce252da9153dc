// Command tspkit runs a single TSP strategy against a random or TSPLIB
// instance and reports the resulting tour, optionally writing a .tspsol
// file and tour/cost plots.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexway-oss/tspkit/config"
	"github.com/hexway-oss/tspkit/geometry"
	"github.com/hexway-oss/tspkit/plotting"
	"github.com/hexway-oss/tspkit/tsp"
	"github.com/hexway-oss/tspkit/tsplibio"
	"github.com/hexway-oss/tspkit/tsplog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "tspkit",
		Short: "Solve Euclidean TSP instances with a chosen strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts)
		},
	}
	config.BindFlags(cmd.Flags(), &opts)

	return cmd
}

func run(cmd *cobra.Command, opts *config.Options) error {
	if err := config.Parse(cmd, opts); err != nil {
		return err
	}
	log := tsplog.New(opts.Verbosity)

	inst, err := loadInstance(opts)
	if err != nil {
		return err
	}
	log.Info("instance loaded", "nodes", inst.N())

	factory, ok := tsp.StrategyCatalog[opts.Algorithm]
	if !ok {
		return fmt.Errorf("%w: unknown algorithm %q", config.ErrWrongValueType, opts.Algorithm)
	}
	strategy := factory()

	solverOpts := tsp.DefaultOptions()
	solverOpts.StartVertex = opts.StartVertex
	solverOpts.Seed = opts.Seed
	solverOpts.TimeLimit = opts.TimeLimit
	solverOpts.EnableLocalSearch = opts.EnableLocalSearch

	if _, err := tsp.ValidateInstance(inst.Costs(), nil, solverOpts); err != nil {
		return fmt.Errorf("validating instance: %w", err)
	}

	var limiter *tsp.TimeLimiter
	if opts.TimeLimit > 0 {
		limiter = tsp.NewTimeLimiter(opts.TimeLimit, 255)
	}
	rec := tsp.NewRecorder()

	ctx := context.Background()
	res, err := strategy.Run(ctx, inst.Costs(), solverOpts, limiter, rec)
	if err != nil {
		return fmt.Errorf("solving with %s: %w", strategy.Name(), err)
	}

	fmt.Printf("strategy=%s cost=%.6f tour=%v\n", strategy.Name(), res.Cost, res.Tour)
	log.Info("solve complete", "strategy", strategy.Name(), "cost", res.Cost)

	if opts.SolutionOutPath != "" {
		if err := tsplibio.WriteSolution(opts.SolutionOutPath, res.Tour, res.Cost); err != nil {
			log.Error(err, "writing solution file")
		}
	}
	if opts.PlotTourPath != "" {
		if err := plotting.PlotTour(inst, res.Tour, opts.PlotTourPath); err != nil {
			log.Error(err, "plotting tour")
		}
	}
	if opts.PlotCostPath != "" {
		if err := plotting.PlotCostSeries(rec, opts.PlotCostPath); err != nil {
			log.Error(err, "plotting cost series")
		}
	}

	return nil
}

func loadInstance(opts *config.Options) (*geometry.Instance, error) {
	if opts.Source == config.SourceFile {
		nodes, _, err := tsplibio.ReadTSPLIB(opts.InstancePath)
		if err != nil {
			return nil, err
		}

		return geometry.NewInstanceFromNodes(nodes)
	}

	rng := tsp.NewRNG(opts.Seed)

	return geometry.NewRandomInstance(opts.RandomNodes, opts.RandomArea, rng)
}
