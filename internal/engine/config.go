package engine

import (
	"time"

	"go.uber.org/zap"
)

// DefaultQueueCapacity is the per-worker queue capacity used when Config
// leaves it unset. The router suspends on a full queue until the worker
// frees space.
const DefaultQueueCapacity = 32

// Config tunes the engine. The zero value is a valid production
// configuration.
type Config struct {
	// QueueCapacity bounds each worker's queue. Zero selects
	// DefaultQueueCapacity.
	QueueCapacity int

	// ProcessDelay pauses a worker before each record it applies, without
	// blocking other workers. It exists for tests and benchmarks that need
	// to widen the window in which queues fill up.
	ProcessDelay time.Duration

	// Logger receives structured diagnostics for dropped and rejected
	// records. Nil selects a no-op logger.
	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.QueueCapacity <= 0 {
		c.QueueCapacity = DefaultQueueCapacity
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c
}
