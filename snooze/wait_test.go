package snooze

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestWait_ConsumesBudget(t *testing.T) {
	t.Parallel()

	begin := time.Now()

	err := Wait(context.Background(), 60*time.Millisecond, 20*time.Millisecond)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(begin), 60*time.Millisecond)
}

func TestWait_ZeroTotal(t *testing.T) {
	t.Parallel()

	begin := time.Now()

	err := Wait(context.Background(), 0, 20*time.Millisecond)

	require.NoError(t, err)
	assert.Less(t, time.Since(begin), immediateCost)
}

func TestWait_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	begin := time.Now()

	err := Wait(ctx, 5*time.Second, 10*time.Millisecond)

	require.Error(t, err)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.Less(t, time.Since(begin), time.Second, "cancellation must cut the wait short")
}

func TestWait_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	begin := time.Now()

	err := Wait(ctx, time.Second, 10*time.Millisecond)

	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
	assert.Less(t, time.Since(begin), immediateCost)
}

func TestWait_WithTracer(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	err := Wait(context.Background(), 30*time.Millisecond, 10*time.Millisecond,
		WithTracer(provider.Tracer("test")))

	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "snooze.wait", spans[0].Name())
}
