package vecdist

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/vecdist/distance"
)

// Logger wraps slog.Logger with vecdist-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithElementType adds an element type field to the logger.
func (l *Logger) WithElementType(et distance.ElementType) *Logger {
	return &Logger{
		Logger: l.Logger.With("element_type", et.String()),
	}
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(m distance.Metric) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", m.String()),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogCapabilities logs the probed CPU features and the effective level.
func (l *Logger) LogCapabilities(ctx context.Context, c Capabilities) {
	l.InfoContext(ctx, "cpu capabilities",
		"vendor", c.Vendor,
		"brand", c.Brand,
		"sse", c.SSE,
		"sse2", c.SSE2,
		"avx", c.AVX,
		"avx2", c.AVX2,
		"avx512", c.AVX512,
		"simd_level", c.Level.String(),
		"overridden", c.Overridden,
	)
}

// LogSelection logs the kernel tier chosen for an element type.
func (l *Logger) LogSelection(ctx context.Context, et distance.ElementType, tier distance.Tier) {
	l.DebugContext(ctx, "kernels selected",
		"element_type", et.String(),
		"tier", tier.String(),
	)
}

// LogValidation logs a rejected buffer pair.
func (l *Logger) LogValidation(ctx context.Context, et distance.ElementType, dim int, err error) {
	if err == nil {
		return
	}
	l.WarnContext(ctx, "buffer validation failed",
		"element_type", et.String(),
		"dimension", dim,
		"error", err,
	)
}
