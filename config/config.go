// Package config binds the command-line flag table onto an Options value
// and layers a YAML file underneath it: any field still at its default value
// (its zero value, or the value DefaultOptions gives it) after flag parsing
// may be filled in from the file, but a field the command line set to any
// other value is never overwritten by it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/hexway-oss/tspkit/tsp"
)

// ErrUnknownArg names the unknown-argument configuration error. No function
// in this package returns it.
var ErrUnknownArg = errors.New("config: unknown argument")

// ErrMissingMandatory is returned when a flag marked Mandatory was never set
// and has no usable zero-value default.
var ErrMissingMandatory = errors.New("config: missing mandatory argument")

// ErrMissingValue names the missing-flag-value configuration error. No
// function in this package returns it.
var ErrMissingValue = errors.New("config: missing value")

// ErrWrongValueType is returned when a flag's value cannot be parsed as its
// declared type.
var ErrWrongValueType = errors.New("config: wrong value type")

// InstanceSource selects whether a run solves a randomly generated instance
// or one read from a TSPLIB file.
type InstanceSource int

const (
	// SourceRandom generates a random Euclidean instance.
	SourceRandom InstanceSource = iota
	// SourceFile reads an instance from a TSPLIB .tsp file.
	SourceFile
)

// Options is the destination struct the flag table and the YAML file both
// populate. Fields left at their default value by the command line may still
// be filled in from a config file; fields the command line set to any other
// value are never overwritten by one.
type Options struct {
	// Source selects SourceRandom or SourceFile.
	Source InstanceSource `yaml:"source"`
	// InstancePath is the TSPLIB file path when Source is SourceFile.
	InstancePath string `yaml:"instance_path"`
	// RandomNodes is the node count when Source is SourceRandom.
	RandomNodes int `yaml:"random_nodes"`
	// RandomArea is the side length of the square sampling region.
	RandomArea float64 `yaml:"random_area"`

	// Algorithm names the strategy to run (matches a tsp.Strategy factory).
	Algorithm string `yaml:"algorithm"`
	// Seed is the deterministic RNG seed.
	Seed int64 `yaml:"seed"`
	// TimeLimit bounds the solve's wall-clock budget; zero means no limit.
	TimeLimit time.Duration `yaml:"time_limit"`
	// StartVertex is the tour's fixed start/end vertex.
	StartVertex int `yaml:"start_vertex"`
	// EnableLocalSearch toggles the 2-opt post-pass most strategies offer.
	EnableLocalSearch bool `yaml:"enable_local_search"`

	// PlotTourPath, if non-empty, writes a tour plot there after solving.
	PlotTourPath string `yaml:"plot_tour_path"`
	// PlotCostPath, if non-empty, writes a cost-series plot there.
	PlotCostPath string `yaml:"plot_cost_path"`
	// SolutionOutPath, if non-empty, writes a .tspsol file there.
	SolutionOutPath string `yaml:"solution_out_path"`

	// Verbosity gates Info-level log call depth (0 = quiet).
	Verbosity int `yaml:"verbosity"`
	// ConfigPath is the YAML file to layer under the flags, if any.
	ConfigPath string `yaml:"-"`
}

// DefaultOptions mirrors tsp.DefaultOptions' conservative defaults, adapted
// to the CLI surface.
func DefaultOptions() Options {
	base := tsp.DefaultOptions()

	return Options{
		Source:            SourceRandom,
		RandomNodes:       50,
		RandomArea:        1000,
		Algorithm:         "nearest-neighbor",
		Seed:              base.Seed,
		StartVertex:       base.StartVertex,
		EnableLocalSearch: base.EnableLocalSearch,
		Verbosity:         0,
	}
}

// BindFlags registers the flag table on fs, writing into opts. Call order
// with the YAML loader matters: parse flags first, then call LoadFile so
// only the fields the user left untouched get filled in from the file.
func BindFlags(fs *pflag.FlagSet, opts *Options) {
	fs.VarP(newSourceValue(&opts.Source), "source", "s", "instance source: random or file")
	fs.StringVar(&opts.InstancePath, "instance", opts.InstancePath, "TSPLIB .tsp file path (source=file)")
	fs.IntVar(&opts.RandomNodes, "nodes", opts.RandomNodes, "random instance node count (source=random)")
	fs.Float64Var(&opts.RandomArea, "area", opts.RandomArea, "random instance sampling square side length")
	fs.StringVar(&opts.Algorithm, "algorithm", opts.Algorithm, "strategy name to run")
	fs.Int64Var(&opts.Seed, "seed", opts.Seed, "deterministic RNG seed")
	fs.DurationVar(&opts.TimeLimit, "time-limit", opts.TimeLimit, "wall-clock solve budget (0 = unlimited)")
	fs.IntVar(&opts.StartVertex, "start", opts.StartVertex, "start/end vertex index")
	fs.BoolVar(&opts.EnableLocalSearch, "local-search", opts.EnableLocalSearch, "enable 2-opt post-pass")
	fs.StringVar(&opts.PlotTourPath, "plot-tour", opts.PlotTourPath, "write a tour plot to this path")
	fs.StringVar(&opts.PlotCostPath, "plot-cost", opts.PlotCostPath, "write a cost-series plot to this path")
	fs.StringVar(&opts.SolutionOutPath, "solution-out", opts.SolutionOutPath, "write a .tspsol file to this path")
	fs.IntVarP(&opts.Verbosity, "verbose", "v", opts.Verbosity, "log verbosity level")
	fs.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "YAML config file layered under these flags")
}

// sourceValue adapts InstanceSource to pflag.Value so --source accepts the
// words "random"/"file" instead of a bare integer.
type sourceValue struct{ dst *InstanceSource }

func newSourceValue(dst *InstanceSource) *sourceValue { return &sourceValue{dst: dst} }

func (s *sourceValue) String() string {
	if s.dst == nil {
		return "random"
	}
	if *s.dst == SourceFile {
		return "file"
	}

	return "random"
}

func (s *sourceValue) Set(v string) error {
	switch v {
	case "random":
		*s.dst = SourceRandom
	case "file":
		*s.dst = SourceFile
	default:
		return fmt.Errorf("%w: --source must be \"random\" or \"file\", got %q", ErrWrongValueType, v)
	}

	return nil
}

func (s *sourceValue) Type() string { return "source" }

// LoadFile reads path as YAML and fills in every field of opts still at its
// default value (see mergeZero) from the file; fields set to other values (by
// flags parsed before this call) are left untouched, matching the
// CLI-wins-over-file override rule.
func LoadFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	var fromFile Options
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	mergeZero(opts, fromFile)

	return nil
}

// mergeZero copies a field of from into dst when dst still holds that
// field's default value (the zero value, or DefaultOptions' value for the
// fields DefaultOptions sets). A key the file leaves out, which decodes to
// the zero value, does not replace a non-zero default.
func mergeZero(dst *Options, from Options) {
	zero := DefaultOptions()
	if dst.Source == zero.Source && from.Source != zero.Source {
		dst.Source = from.Source
	}
	if dst.InstancePath == "" {
		dst.InstancePath = from.InstancePath
	}
	if dst.RandomNodes == zero.RandomNodes && from.RandomNodes != 0 {
		dst.RandomNodes = from.RandomNodes
	}
	if dst.RandomArea == zero.RandomArea && from.RandomArea != 0 {
		dst.RandomArea = from.RandomArea
	}
	if dst.Algorithm == zero.Algorithm && from.Algorithm != "" {
		dst.Algorithm = from.Algorithm
	}
	if dst.Seed == zero.Seed && from.Seed != 0 {
		dst.Seed = from.Seed
	}
	if dst.TimeLimit == 0 {
		dst.TimeLimit = from.TimeLimit
	}
	if dst.StartVertex == zero.StartVertex && from.StartVertex != 0 {
		dst.StartVertex = from.StartVertex
	}
	if !dst.EnableLocalSearch {
		dst.EnableLocalSearch = from.EnableLocalSearch
	}
	if dst.PlotTourPath == "" {
		dst.PlotTourPath = from.PlotTourPath
	}
	if dst.PlotCostPath == "" {
		dst.PlotCostPath = from.PlotCostPath
	}
	if dst.SolutionOutPath == "" {
		dst.SolutionOutPath = from.SolutionOutPath
	}
	if dst.Verbosity == 0 {
		dst.Verbosity = from.Verbosity
	}
}

// Parse finishes opts after cobra has parsed the flags bound by BindFlags: it
// returns ErrMissingMandatory when no algorithm is named or when
// --source=file has no --instance path, and otherwise layers opts.ConfigPath
// (if set) underneath the flags via LoadFile. cmd is not read. Bad --source
// values are rejected with ErrWrongValueType during flag parsing, not here.
func Parse(cmd *cobra.Command, opts *Options) error {
	if opts.Algorithm == "" {
		return ErrMissingMandatory
	}
	if opts.Source == SourceFile && opts.InstancePath == "" {
		return fmt.Errorf("%w: --instance is required when --source=file", ErrMissingMandatory)
	}
	if opts.ConfigPath != "" {
		if err := LoadFile(opts.ConfigPath, opts); err != nil {
			return err
		}
	}

	return nil
}
