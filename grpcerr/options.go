package grpcerr

// DefaultDomain is the ErrorInfo domain used when none is configured.
const DefaultDomain = "frontend"

// Options contains configuration for Encode.
type Options struct {
	// Domain identifies the service that produced the error.
	Domain string

	// IncludeLocation attaches the capture location to the error metadata.
	IncludeLocation bool
}

// Option is a functional option for configuring Encode.
type Option func(*Options)

// WithDomain sets the ErrorInfo domain.
func WithDomain(domain string) Option {
	return func(opts *Options) {
		opts.Domain = domain
	}
}

// WithLocation attaches the location the error was constructed at to the
// ErrorInfo metadata. Disabled by default since it exposes source paths to
// the remote peer.
func WithLocation() Option {
	return func(opts *Options) {
		opts.IncludeLocation = true
	}
}

func defaultOptions() *Options {
	return &Options{Domain: DefaultDomain}
}
