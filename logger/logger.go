// Package logger configures slog for amp-snooze commands and tests.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
)

// configMutex protects concurrent calls to Configure. This is necessary
// because the function modifies global state (slog.SetDefault and
// log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options is used to configure logging.
type Options struct {
	// JSON selects JSON output instead of text.
	JSON bool
	// MinLevel is the minimum level emitted by the handler.
	MinLevel slog.Level
	// LegacyLevel is the level assigned to messages arriving through the
	// standard library's log package.
	LegacyLevel slog.Level
	// Output defaults to os.Stdout.
	Output io.Writer
}

// Configure sets up the process-wide loggers and returns the new default
// logger. Both slog's default and the legacy log.Default are replaced, so
// third-party packages logging through either one follow the same handler.
// This function is thread-safe but modifies global state, so concurrent
// calls will be serialized.
func Configure(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Route the legacy logger through the same handler (we won't be using
	// it directly, but third-party packages might).
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	return logger
}
