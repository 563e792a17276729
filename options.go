package seggo

import (
	"log/slog"

	"github.com/hupe1980/seggo/distance"
)

type options struct {
	logger        *Logger
	metric        distance.Metric
	maxIterations int
	parallelism   int
}

// Option configures ambient pipeline behavior.
type Option func(*options)

// WithLogger configures structured logging for pipeline runs.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetric selects the distance metric for the clustering step.
// Default: distance.MetricSquaredL2.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithMaxIterations caps Lloyd's iterations. Hitting the cap is reported via
// Result.Converged, not as an error. Default: 100.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithParallelism sets the worker count for the clustering assignment step.
// Values <= 1 run sequentially. Results are identical either way.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:        NoopLogger(),
		maxIterations: 100,
		parallelism:   1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
