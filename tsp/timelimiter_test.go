package tsp_test

import (
	"testing"
	"time"

	"github.com/hexway-oss/tspkit/tsp"
)

func TestTimeLimiterDisabledWhenZeroBudget(t *testing.T) {
	l := tsp.NewTimeLimiter(0, 0xff)
	if l.Enabled() {
		t.Fatalf("expected a zero budget to disable the limiter")
	}
	if l.Expired() {
		t.Fatalf("a disabled limiter must never report expired")
	}
}

func TestTimeLimiterExpiresAfterBudget(t *testing.T) {
	l := tsp.NewTimeLimiter(timeTiny, 0)
	if !l.Enabled() {
		t.Fatalf("expected a positive budget to enable the limiter")
	}
	time.Sleep(5 * timeTiny)
	if !l.Expired() {
		t.Fatalf("expected the limiter to be expired after sleeping past its budget")
	}
	if l.Remaining() > 0 {
		t.Fatalf("expected zero remaining time once expired, got %v", l.Remaining())
	}
}

func TestTimeLimiterTickRespectsStepMask(t *testing.T) {
	l := tsp.NewTimeLimiter(timeTiny, 0x3)
	time.Sleep(5 * timeTiny)
	// Ticks are only checked every stepMask+1 calls; the first few calls
	// should not themselves panic or misbehave regardless of the mask.
	var expired bool
	for i := 0; i < 8; i++ {
		if l.Tick() {
			expired = true
		}
	}
	if !expired {
		t.Fatalf("expected Tick to eventually observe expiry within a handful of calls")
	}
}
