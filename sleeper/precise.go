package sleeper

import (
	"runtime"
	"time"
)

// Precise is a hybrid sleep strategy: it sleeps via the OS primitive for the
// portion of the duration considered reliably accurate, leaving Margin below
// the target, then yield-spins on the monotonic clock until the full duration
// has elapsed.
//
// The spin phase keeps one core busy (it yields the processor between clock
// reads, so other goroutines still run), so Precise should only be chosen
// when the caller explicitly needs sub-scheduler-resolution accuracy.
//
// Example:
//
//	// Calibrated margin, measured once per process:
//	sleeper.Precise{}.Sleep(500 * time.Microsecond)
//
//	// Fixed margin for a platform with known scheduler slack:
//	sleeper.Precise{Margin: 2 * time.Millisecond}.Sleep(time.Millisecond * 10)
type Precise struct {
	// Margin is the safety gap left below the target when issuing the OS
	// sleep. It should be at least the platform's typical sleep overshoot:
	// too small and the OS sleep overshoots past the target (degrading to
	// Coarse accuracy), too large and the spin phase burns CPU needlessly.
	// A zero Margin selects the process-wide calibrated margin.
	Margin time.Duration
}

// Sleep blocks for d with tight accuracy. Non-positive durations return
// immediately.
func (p Precise) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	begin := time.Now()

	margin := p.Margin
	if margin <= 0 {
		margin = CalibratedMargin()
	}

	// OS sleep for the reliably-accurate portion only.
	if d > margin {
		time.Sleep(d - margin)
	}

	// Spin out the remainder, yielding between clock reads.
	for time.Since(begin) < d {
		runtime.Gosched()
	}
}
