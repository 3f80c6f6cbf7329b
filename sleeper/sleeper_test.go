package sleeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoarse_SleepsAtLeast(t *testing.T) {
	t.Parallel()

	begin := time.Now()
	Coarse{}.Sleep(30 * time.Millisecond)

	assert.GreaterOrEqual(t, time.Since(begin), 30*time.Millisecond)
}

func TestCoarse_NonPositive(t *testing.T) {
	t.Parallel()

	begin := time.Now()
	Coarse{}.Sleep(0)
	Coarse{}.Sleep(-time.Second)

	assert.Less(t, time.Since(begin), 20*time.Millisecond)
}

func TestPrecise_SleepsAtLeast(t *testing.T) {
	t.Parallel()

	begin := time.Now()
	Precise{Margin: 2 * time.Millisecond}.Sleep(20 * time.Millisecond)

	assert.GreaterOrEqual(t, time.Since(begin), 20*time.Millisecond)
}

func TestPrecise_NonPositive(t *testing.T) {
	t.Parallel()

	begin := time.Now()
	Precise{}.Sleep(0)
	Precise{}.Sleep(-time.Second)

	assert.Less(t, time.Since(begin), 20*time.Millisecond)
}

func TestPrecise_ShorterThanMargin(t *testing.T) {
	t.Parallel()

	// The whole duration falls inside the margin: no OS sleep at all,
	// pure spin. Still must not return early.
	begin := time.Now()
	Precise{Margin: 5 * time.Millisecond}.Sleep(time.Millisecond)
	elapsed := time.Since(begin)

	assert.GreaterOrEqual(t, elapsed, time.Millisecond)
	assert.Less(t, elapsed, 20*time.Millisecond)
}

func TestCalibratedMargin_Bounds(t *testing.T) {
	t.Parallel()

	m := CalibratedMargin()

	assert.GreaterOrEqual(t, m, 100*time.Microsecond)
	assert.LessOrEqual(t, m, 10*time.Millisecond)

	// Calibration runs once; later calls return the cached value.
	assert.Equal(t, m, CalibratedMargin())
}

// Reproduces the accuracy comparison from the package contract: over the same
// budget with a tiny increment, the precise strategy completes at least as
// many steps as the coarse one, because each coarse sleep pays the scheduler's
// wake-up slack while the precise sleep spins it away.
func TestPrecise_MoreResponsiveThanCoarse(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("timing-sensitive")
	}

	const (
		budget         = 50 * time.Millisecond
		responsiveness = time.Microsecond
	)

	countSteps := func(s Sleeper) int {
		start := time.Now()

		steps := 0
		for time.Since(start) < budget {
			s.Sleep(responsiveness)
			steps++
		}

		return steps
	}

	coarse := countSteps(Coarse{})
	precise := countSteps(Precise{})

	assert.GreaterOrEqual(t, precise, coarse)
}
