// Package tsplog provides the verbosity-gated structured logging sink
// used by the CLI: a thin logr.Logger facade backed by stdr. The tsp
// strategies take no logger.
package tsplog

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logr.Logger backed by the standard library logger, gated at
// the given verbosity: Info calls with a V-level above verbosity are
// discarded. verbosity <= 0 only logs V(0) (errors and top-level progress).
func New(verbosity int) logr.Logger {
	std := log.New(os.Stderr, "", log.LstdFlags)
	l := stdr.New(std)
	stdr.SetVerbosity(verbosity)

	return l
}

// Discard returns the no-op logger (logr.Discard()).
func Discard() logr.Logger {
	return logr.Discard()
}
