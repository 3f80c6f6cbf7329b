// Command snoozebench compares the accuracy of the coarse and precise sleep
// strategies: it drives one wait session per strategy to exhaustion with
// identical parameters and logs each run's overshoot past the budget.
//
// Usage:
//
//	snoozebench -total 1s -step 10ms
package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/amp-labs/amp-snooze/logger"
	"github.com/amp-labs/amp-snooze/sleeper"
	"github.com/amp-labs/amp-snooze/snooze"
)

func main() {
	total := flag.Duration("total", time.Second, "wait budget per run")
	step := flag.Duration("step", 10*time.Millisecond, "maximum sleep increment")
	jsonOut := flag.Bool("json", false, "log as JSON")
	verbose := flag.Bool("v", false, "log every step")
	flag.Parse()

	minLevel := slog.LevelInfo
	if *verbose {
		minLevel = slog.LevelDebug
	}

	log := logger.Configure(logger.Options{
		JSON:     *jsonOut,
		MinLevel: minLevel,
	})

	log.Info("calibrated sleep margin", "margin", sleeper.CalibratedMargin())

	runs := []struct {
		strategy string
		sleep    sleeper.Sleeper
	}{
		{"coarse", sleeper.Coarse{}},
		{"precise", sleeper.Precise{}},
	}

	for _, run := range runs {
		session := snooze.New(*total,
			snooze.WithSleeper(sleeper.Instrumented{Next: run.sleep, Strategy: run.strategy}),
			snooze.WithLogger(log))

		begin := time.Now()

		steps := 0
		for session.Step(*step) {
			steps++
		}

		elapsed := time.Since(begin)

		log.Info("run complete",
			"strategy", run.strategy,
			"budget", *total,
			"step", *step,
			"steps", steps,
			"elapsed", elapsed,
			"overshoot", elapsed-*total)
	}
}
