// Package plotting renders a tour and a cost-improvement series to image
// files using gonum/plot, replacing the Gnuplot-shelling-out approach of the
// original cost plotter with a native in-process renderer.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hexway-oss/tspkit/geometry"
	"github.com/hexway-oss/tspkit/tsp"
)

// PlotTour renders inst's nodes and the closed tour connecting them to path
// (format inferred from its extension, e.g. .png or .svg). Plotting is
// best-effort: callers that treat it as a side channel may log and discard
// the returned error rather than failing the solve.
func PlotTour(inst *geometry.Instance, tour []int, path string) error {
	p := plot.New()
	p.Title.Text = "tour"

	pts := make(plotter.XYs, len(tour))
	for i, v := range tour {
		node := inst.Node(v)
		pts[i] = plotter.XY{X: node.X, Y: node.Y}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotting: building tour line: %w", err)
	}
	scatter, err := plotter.NewScatter(pts[:len(pts)-1])
	if err != nil {
		return fmt.Errorf("plotting: building node scatter: %w", err)
	}
	p.Add(line, scatter)

	if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, path); err != nil {
		return fmt.Errorf("plotting: saving %s: %w", path, err)
	}

	return nil
}

// PlotCostSeries renders rec's recorded checkpoint costs, in recording
// order, as a line chart to path.
func PlotCostSeries(rec *tsp.Recorder, path string) error {
	entries := rec.Entries()

	p := plot.New()
	p.Title.Text = "incumbent cost"
	p.X.Label.Text = "checkpoint"
	p.Y.Label.Text = "cost"

	pts := make(plotter.XYs, len(entries))
	for i, e := range entries {
		pts[i] = plotter.XY{X: float64(i), Y: e.Cost}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotting: building cost line: %w", err)
	}
	p.Add(line)

	if err := p.Save(16*vg.Centimeter, 10*vg.Centimeter, path); err != nil {
		return fmt.Errorf("plotting: saving %s: %w", path, err)
	}

	return nil
}
