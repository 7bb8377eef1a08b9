// Package logging provides the structured logger used by the numconv tools.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/numconv/matrix"
)

// Logger wraps slog.Logger with numconv-specific context.
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

// New creates a Logger writing to w in the given format ("text" or "json").
func New(w io.Writer, format string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return NewLogger(slog.NewJSONHandler(w, opts))
	}
	return NewLogger(slog.NewTextHandler(w, opts))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// ParseLevel parses "debug", "info", "warn" or "error".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// WithPolicy adds a policy field to the logger.
func (l *Logger) WithPolicy(p matrix.Policy) *Logger {
	return &Logger{
		Logger: l.Logger.With("policy", p.String()),
	}
}

// WithPair adds src and dst fields to the logger.
func (l *Logger) WithPair(p matrix.Pair) *Logger {
	return &Logger{
		Logger: l.Logger.With("src", p.Src.String(), "dst", p.Dst.String()),
	}
}

// LogGenerate logs the generation of one source file.
func (l *Logger) LogGenerate(ctx context.Context, target, output string, functions int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed",
			"target", target,
			"output", output,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "generate completed",
			"target", target,
			"output", output,
			"functions", functions,
		)
	}
}

// LogSweep logs the completion of one policy sweep.
func (l *Logger) LogSweep(ctx context.Context, pairs int, checks int64, violations int) {
	if violations > 0 {
		l.WarnContext(ctx, "sweep completed with violations",
			"pairs", pairs,
			"checks", checks,
			"violations", violations,
		)
	} else {
		l.DebugContext(ctx, "sweep completed",
			"pairs", pairs,
			"checks", checks,
		)
	}
}

// LogVerify logs the outcome of a full verification run.
func (l *Logger) LogVerify(ctx context.Context, pairs int, checks int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "verification failed",
			"pairs", pairs,
			"checks", checks,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "verification passed",
			"pairs", pairs,
			"checks", checks,
		)
	}
}
