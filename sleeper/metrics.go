package sleeper

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// sleepRequested tracks the durations callers ask a strategy to sleep for.
//
// Metric name: amp_snooze_sleep_requested_seconds
// Labels:
//   - strategy: The strategy label given to the Instrumented wrapper
//
// Example PromQL query:
//
//	histogram_quantile(0.99, rate(amp_snooze_sleep_requested_seconds_bucket[5m]))
//
//nolint:gochecknoglobals
var sleepRequested = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "amp",
		Subsystem: "snooze",
		Name:      "sleep_requested_seconds",
		Help:      "Requested blocking sleep durations, by strategy",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	},
	[]string{"strategy"},
)

// sleepOvershoot tracks how far past the requested duration a sleep actually
// ran. This is the number that separates the coarse and precise strategies.
//
// Metric name: amp_snooze_sleep_overshoot_seconds
// Labels:
//   - strategy: The strategy label given to the Instrumented wrapper
//
// Example PromQL query:
//
//	histogram_quantile(0.99, sum by (strategy, le) (rate(amp_snooze_sleep_overshoot_seconds_bucket[5m])))
//
//nolint:gochecknoglobals
var sleepOvershoot = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "amp",
		Subsystem: "snooze",
		Name:      "sleep_overshoot_seconds",
		Help:      "Actual minus requested sleep duration, by strategy",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 10, 8),
	},
	[]string{"strategy"},
)

// Instrumented wraps a Sleeper and records Prometheus histograms of the
// requested duration and the overshoot of every sleep. The wrapper adds two
// clock reads per call and is otherwise transparent.
//
// Example:
//
//	s := sleeper.Instrumented{Next: sleeper.Precise{}, Strategy: "precise"}
//	session := snooze.New(time.Second, snooze.WithSleeper(s))
type Instrumented struct {
	// Next is the strategy that performs the sleep.
	Next Sleeper
	// Strategy is the label recorded on both histograms.
	Strategy string
}

// Sleep delegates to Next and records the observed timings.
func (i Instrumented) Sleep(d time.Duration) {
	begin := time.Now()
	i.Next.Sleep(d)
	actual := time.Since(begin)

	sleepRequested.WithLabelValues(i.Strategy).Observe(d.Seconds())

	over := actual - d
	if over < 0 {
		over = 0
	}

	sleepOvershoot.WithLabelValues(i.Strategy).Observe(over.Seconds())
}
