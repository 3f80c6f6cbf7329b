package sleeper

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

const (
	calibrationRounds = 5
	calibrationTarget = 500 * time.Microsecond

	// Bounds on the calibrated margin. The floor covers platforms whose
	// timers are accurate enough that the measured overshoot rounds to
	// nearly zero; the ceiling keeps a single noisy measurement (a CPU
	// spike during calibration) from condemning Precise to spin for
	// tens of milliseconds on every call.
	minMargin = 100 * time.Microsecond
	maxMargin = 10 * time.Millisecond
)

//nolint:gochecknoglobals
var (
	calibrateOnce sync.Once
	margin        = atomic.NewDuration(0)
)

// CalibratedMargin returns the measured overshoot of the platform's sleep
// primitive, clamped to [100µs, 10ms]. The measurement runs once per process,
// on first use, by timing a handful of short sleeps and taking the worst
// overshoot observed. Precise uses it as the default Margin.
func CalibratedMargin() time.Duration {
	calibrateOnce.Do(func() {
		var worst time.Duration

		for i := 0; i < calibrationRounds; i++ {
			begin := time.Now()
			time.Sleep(calibrationTarget)

			if over := time.Since(begin) - calibrationTarget; over > worst {
				worst = over
			}
		}

		if worst < minMargin {
			worst = minMargin
		} else if worst > maxMargin {
			worst = maxMargin
		}

		margin.Store(worst)
	})

	return margin.Load()
}
