package respond

import "log/slog"

// Options contains configuration for a Reporter.
type Options struct {
	// Logger receives one record per reported error.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger

	// IncludeLocation exposes the capture location in responses.
	// Disabled by default since it reveals source paths to clients.
	IncludeLocation bool
}

// Option is a functional option for configuring a Reporter.
type Option func(*Options)

// WithLogger sets the logger used to record reported errors.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLocation includes the capture location in responses.
func WithLocation() Option {
	return func(opts *Options) {
		opts.IncludeLocation = true
	}
}
