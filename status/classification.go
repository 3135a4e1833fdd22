package status

// Classification indicates whether a failure may succeed when retried.
// Retry policies consume it; this package never retries anything itself.
type Classification string

const (
	// Retryable indicates a temporary failure that may succeed on retry.
	// Examples: storage unavailable, runtime resources exhausted.
	Retryable Classification = "RETRYABLE"

	// Permanent indicates a failure that will not succeed on retry.
	// Examples: invalid arguments, violated frontend invariants.
	Permanent Classification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c Classification) IsRetryable() bool {
	return c == Retryable
}

// defaultClassifications maps codes to their default classification.
var defaultClassifications = map[Code]Classification{
	// Transient lower-layer conditions
	StorageUnavailable:        Retryable,
	RuntimeResourcesExhausted: Retryable,

	// Client input: the caller must correct the request
	InvalidArguments:    Permanent,
	InvalidSyntax:       Permanent,
	TableAlreadyExists:  Permanent,
	TableNotFound:       Permanent,
	TableColumnNotFound: Permanent,
	Unsupported:         Permanent,

	// Frontend invariants and internal failures alert rather than retry
	Unexpected:         Permanent,
	Internal:           Permanent,
	PlanQuery:          Permanent,
	EngineExecuteQuery: Permanent,
	Unknown:            Permanent,
	Success:            Permanent,
}

// Classification returns the default classification for the code.
// Codes without an entry are permanent.
func (c Code) Classification() Classification {
	if class, ok := defaultClassifications[c]; ok {
		return class
	}
	return Permanent
}
