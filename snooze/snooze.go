// Package snooze provides bounded, interruptible waiting: a session holds a
// total budget of time to spend sleeping, and each step sleeps for at most a
// caller-chosen increment, never past the budget, returning control between
// increments so the caller can poll for a cancellation signal (or do any
// other work) without overshooting the deadline.
//
// A step reports true when time remained and a sleep was performed, and false
// once the budget is exhausted. Exhaustion is terminal: every later step on
// the same session returns false immediately. The sum of requested sleep
// durations across a session never exceeds the budget; per-call accuracy is
// bounded by the selected sleep strategy (see the sleeper package).
//
// Example:
//
//	session := snooze.New(time.Second)
//	for session.Step(300 * time.Millisecond) {
//	    // Check whether the user pressed CTRL+C...
//	}
//	// Slept approximately 300, 300, 300 and 100 ms.
//
// Callers that already track their own start timestamp can use the stateless
// Step and PreciseStep functions instead of a Session. For loops driven by a
// context, Wait packages the step loop with context cancellation.
package snooze

import (
	"log/slog"
	"time"

	"github.com/amp-labs/amp-snooze/sleeper"
)

// Session tracks a single wait budget: a total duration fixed at creation and
// the monotonic point in time the session was created. Both are immutable; a
// session needs no teardown and may be queried freely after it expires.
//
// A session is meant to be driven by one goroutine in a loop. Step blocks the
// calling goroutine; there is no internal locking and no built-in
// cancellation — the caller's loop body is the place to check for one.
type Session struct {
	total time.Duration
	start time.Time
	sleep sleeper.Sleeper
	log   *slog.Logger
}

// New creates a session with the given total budget, capturing the current
// monotonic time as its start. It always succeeds.
//
// By default steps sleep with the coarse (OS scheduler) strategy; see
// WithPrecision and WithSleeper for alternatives.
func New(total time.Duration, opts ...Option) Session {
	o := newOptions(opts)

	return Session{
		total: total,
		start: time.Now(),
		sleep: o.sleep,
		log:   o.log,
	}
}

// Step sleeps for min(max, time remaining in the budget) and returns true,
// or returns false immediately (no sleep) once the budget is exhausted.
//
// max is unconstrained: zero (and negative) values perform a no-op sleep and
// still return true while time remains; values larger than the remaining
// budget are capped so the budget is never overshot by request.
func (s Session) Step(max time.Duration) bool {
	return step(s.sleep, s.log, s.start, s.total, max)
}

// Remaining reports the unconsumed portion of the budget, saturating at zero
// once the session has expired.
func (s Session) Remaining() time.Duration {
	remaining := s.total - time.Since(s.start)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Expired reports whether the budget is exhausted, i.e. whether the next
// Step would return false.
func (s Session) Expired() bool {
	return s.total-time.Since(s.start) <= 0
}

// Total returns the session's budget as given to New.
func (s Session) Total() time.Duration {
	return s.total
}

// step is the whole wait-stepping algorithm: saturating remaining-time
// arithmetic, capping the increment, then one blocking sleep.
func step(sl sleeper.Sleeper, log *slog.Logger, start time.Time, total, max time.Duration) bool {
	remaining := total - time.Since(start)
	if remaining <= 0 {
		return false
	}

	d := min(max, remaining)

	if log != nil {
		log.Debug("snooze step",
			"requested", max,
			"sleeping", d,
			"remaining", remaining)
	}

	sl.Sleep(d)

	return true
}
