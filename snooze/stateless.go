package snooze

import (
	"time"

	"github.com/amp-labs/amp-snooze/sleeper"
)

// Step is the stateless equivalent of Session.Step for callers that already
// track their own timing epoch: start is supplied on every call instead of
// being stored. Semantics are identical — sleep min(max, total − elapsed
// since start) with the coarse strategy and return true, or return false
// immediately once elapsed time reaches total.
//
// Example:
//
//	start := time.Now()
//	for snooze.Step(start, time.Second, 100*time.Millisecond) {
//	    // Check for a cancellation signal...
//	}
func Step(start time.Time, total, max time.Duration) bool {
	return step(sleeper.Default, nil, start, total, max)
}

// PreciseStep is Step with the precise (sleep-then-spin) strategy: identical
// signature and return semantics, tighter timing, higher CPU cost during the
// spin phase of each sleep.
func PreciseStep(start time.Time, total, max time.Duration) bool {
	return step(sleeper.Precise{}, nil, start, total, max)
}
