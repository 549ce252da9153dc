// Package tsp - shared wall-clock budget used by every long-running strategy.
package tsp

import "time"

// TimeLimiter tracks an optional wall-clock deadline and amortizes the cost
// of checking it across many hot-loop iterations, following the same
// sparse-check discipline two_opt.go applies to its own deadline: callers
// call Tick() once per loop iteration and only every stepMask+1-th call
// actually reads the clock.
type TimeLimiter struct {
	deadline time.Time
	enabled  bool
	step     int
	stepMask int
}

// NewTimeLimiter builds a TimeLimiter for budget. budget<=0 disables the
// limiter entirely (Tick/Expired always report no expiry). stepMask governs
// check cadence: the clock is read once every stepMask+1 Tick calls, so
// stepMask must be of the form 2^k-1. A stepMask of 0 checks every call.
func NewTimeLimiter(budget time.Duration, stepMask int) *TimeLimiter {
	tl := &TimeLimiter{stepMask: stepMask}
	if budget > 0 {
		tl.enabled = true
		tl.deadline = time.Now().Add(budget)
	}

	return tl
}

// Tick increments the internal counter and reports whether the deadline has
// passed, reading the wall clock only at the configured cadence.
func (tl *TimeLimiter) Tick() bool {
	if !tl.enabled {
		return false
	}
	tl.step++
	if (tl.step & tl.stepMask) != 0 {
		return false
	}

	return time.Now().After(tl.deadline)
}

// Expired reports deadline expiry unconditionally, always reading the clock.
// Use at coarse-grained checkpoints (e.g., once per outer-loop iteration)
// where Tick's amortization would be too imprecise.
func (tl *TimeLimiter) Expired() bool {
	if !tl.enabled {
		return false
	}

	return time.Now().After(tl.deadline)
}

// Remaining returns the time left until the deadline, or a large sentinel
// duration when the limiter is disabled.
func (tl *TimeLimiter) Remaining() time.Duration {
	if !tl.enabled {
		return time.Duration(1<<63 - 1)
	}

	return time.Until(tl.deadline)
}

// Enabled reports whether a finite deadline is in effect.
func (tl *TimeLimiter) Enabled() bool {
	return tl.enabled
}
