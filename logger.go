package seggo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with seggo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRun adds a run id field to the logger.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithK adds a cluster-count field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithRows adds a row-count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// LogImpute logs an imputation step.
func (l *Logger) LogImpute(ctx context.Context, column string, before, after int) {
	l.DebugContext(ctx, "imputation completed",
		"column", column,
		"missing_before", before,
		"missing_after", after,
	)
}

// LogCluster logs the outcome of the clustering step.
func (l *Logger) LogCluster(ctx context.Context, iterations int, converged bool, inertia float64) {
	if converged {
		l.DebugContext(ctx, "clustering converged",
			"iterations", iterations,
			"inertia", inertia,
		)
	} else {
		l.WarnContext(ctx, "clustering hit iteration cap",
			"iterations", iterations,
			"inertia", inertia,
		)
	}
}

// LogRun logs a completed pipeline run.
func (l *Logger) LogRun(ctx context.Context, rows, k int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "pipeline run failed",
			"rows", rows,
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "pipeline run completed",
			"rows", rows,
			"k", k,
		)
	}
}
