package snooze

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/amp-labs/amp-snooze/sleeper"
)

// Option configures a Session created by New, or a Wait call.
// Options follow the functional options pattern for flexible configuration.
type Option func(*options)

// options holds the internal configuration for a session or a wait.
type options struct {
	sleep  sleeper.Sleeper // Strategy used for each blocking sleep
	log    *slog.Logger    // Optional per-step debug logging
	tracer trace.Tracer    // Optional span around a whole Wait
}

func newOptions(opts []Option) *options {
	o := &options{
		sleep: sleeper.Default,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithSleeper selects the sleep strategy used by every step.
//
// Example:
//
//	s := snooze.New(time.Second,
//	    snooze.WithSleeper(sleeper.Instrumented{Next: sleeper.Coarse{}, Strategy: "coarse"}))
func WithSleeper(s sleeper.Sleeper) Option {
	return func(o *options) {
		o.sleep = s
	}
}

// WithPrecision selects the precise (sleep-then-spin) strategy with the
// process-wide calibrated margin. Steps become tighter at the cost of CPU
// time during the spin tail of each sleep.
//
// Example:
//
//	s := snooze.New(time.Second, snooze.WithPrecision())
func WithPrecision() Option {
	return func(o *options) {
		o.sleep = sleeper.Precise{}
	}
}

// WithLogger enables Debug-level logging of each step (requested increment,
// capped sleep, remaining budget). Off by default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithTracer makes Wait record a single span covering the whole wait.
// Sessions ignore this option; spans need a context, which only Wait has.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}
