package tsp

import "time"

// RecordEntry is one observation in a Recorder's convergence trace: a new
// incumbent cost found at a given wall-clock offset from the run's start.
type RecordEntry struct {
	Elapsed time.Duration
	Cost    float64
	Label   string // which strategy/phase produced this improvement
}

// Recorder accumulates the convergence trace of a run: strategies append an
// entry for their starting cost and for the improvements they find. The trace
// is consumed by the plotting package to render a cost-over-time curve.
type Recorder struct {
	start   time.Time
	entries []RecordEntry
}

// NewRecorder starts a recorder with its clock zeroed at the current instant.
func NewRecorder() *Recorder {
	return &Recorder{start: time.Now()}
}

// Record appends a new observation, timestamped relative to NewRecorder.
func (r *Recorder) Record(label string, cost float64) {
	r.entries = append(r.entries, RecordEntry{
		Elapsed: time.Since(r.start),
		Cost:    cost,
		Label:   label,
	})
}

// Entries returns a defensive copy of the accumulated trace, in recording order.
func (r *Recorder) Entries() []RecordEntry {
	out := make([]RecordEntry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Best returns the lowest cost recorded so far, or (0, false) if empty.
func (r *Recorder) Best() (float64, bool) {
	if len(r.entries) == 0 {
		return 0, false
	}
	best := r.entries[0].Cost
	for _, e := range r.entries[1:] {
		if e.Cost < best {
			best = e.Cost
		}
	}

	return best, true
}
