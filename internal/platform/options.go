package platform

import (
	"log/slog"
	"runtime"
)

// options holds the internal configuration for the decode service.
type options struct {
	logger      *slog.Logger
	concurrency int
	tagPattern  string
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:      nil,
		concurrency: runtime.NumCPU(),
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConcurrency limits how many notes are decoded at the same time.
// Values below 1 mean sequential decoding.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

// WithTagFilter keeps only notes with at least one tag matching the
// doublestar pattern (e.g. "work/**"). An empty pattern keeps every note.
func WithTagFilter(pattern string) Option {
	return func(o *options) {
		o.tagPattern = pattern
	}
}
