// Package sleeper provides pluggable blocking-sleep strategies for the snooze
// package. A Sleeper blocks the calling goroutine for a requested duration;
// implementations differ only in timing accuracy and CPU cost.
//
// Two strategies are provided:
//   - Coarse delegates to the runtime's sleep primitive. Accuracy is bounded
//     by the OS scheduler's wake-up granularity, which can overshoot by tens
//     of milliseconds on some platforms.
//   - Precise sleeps via the OS for most of the duration, then yield-spins on
//     the monotonic clock for the remainder. It trades CPU time during the
//     spin phase for much tighter accuracy.
//
// Wrap either strategy in Instrumented to export Prometheus histograms of
// requested durations and overshoot.
package sleeper

import "time"

// Sleeper is a strategy for blocking the calling goroutine for a duration.
// Implementations must treat non-positive durations as a no-op and must not
// return before the requested duration has elapsed (within the accuracy the
// implementation documents).
type Sleeper interface {
	Sleep(d time.Duration)
}

// Coarse sleeps using the runtime's sleep primitive. It is the cheapest
// strategy: the goroutine is parked and consumes no CPU, but the wake-up can
// be late by the OS scheduler's slack.
type Coarse struct{}

// Sleep blocks for at least d. Non-positive durations return immediately.
func (Coarse) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	time.Sleep(d)
}

// Default is the strategy used when callers do not pick one explicitly.
var Default Sleeper = Coarse{} //nolint:gochecknoglobals
