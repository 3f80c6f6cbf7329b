package snooze

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Wait drives a fresh session to exhaustion in increments of at most step,
// checking the context between increments. It returns nil once the budget is
// consumed, or ctx.Err() if the context is done first.
//
// The context is only checked between increments, never during one, so an
// in-progress sleep is never interrupted; cancellation latency is therefore
// bounded by step. This is the loop the package documentation shows, packaged
// with Go-native cancellation.
//
// Example:
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := snooze.Wait(ctx, time.Minute, 100*time.Millisecond); err != nil {
//	    return err // interrupted
//	}
func Wait(ctx context.Context, total, step time.Duration, opts ...Option) error {
	o := newOptions(opts)

	session := Session{
		total: total,
		start: time.Now(),
		sleep: o.sleep,
		log:   o.log,
	}

	var span trace.Span
	if o.tracer != nil {
		_, span = o.tracer.Start(ctx, "snooze.wait", trace.WithAttributes(
			attribute.String("snooze.total", total.String()),
			attribute.String("snooze.step", step.String()),
		))
		defer span.End()
	}

	steps := 0

	for {
		select {
		case <-ctx.Done():
			if span != nil {
				span.SetAttributes(attribute.Int("snooze.steps", steps))
				span.SetStatus(codes.Error, ctx.Err().Error())
			}

			return ctx.Err()
		default:
		}

		if !session.Step(step) {
			if span != nil {
				span.SetAttributes(attribute.Int("snooze.steps", steps))
			}

			return nil
		}

		steps++
	}
}
