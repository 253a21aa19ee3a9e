package vecdist

import "github.com/hupe1980/vecdist/distance"

type options struct {
	level  distance.Level
	pinned bool
	logger *Logger
}

// Option configures NewKernelTable.
type Option func(*options)

// WithLevel pins the table to the kernels the selection policy picks for a
// CPU at level l, regardless of the detected hardware.
//
// Every tier is portable, so pinning above the hardware is safe; it is meant
// for tests and tier comparisons.
func WithLevel(l distance.Level) Option {
	return func(o *options) {
		if l > distance.LevelAVX512 {
			l = distance.LevelAVX512
		}
		o.level = l
		o.pinned = true
	}
}

// WithLogger configures the logger used while building the table.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
