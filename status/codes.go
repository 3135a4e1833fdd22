// Package status defines the status codes shared by the frontend and its
// collaborators, the retry classification attached to each code, and the
// capability interfaces a collaborator error implements to classify itself.
package status

// Code identifies the outcome of a frontend request.
// Codes are string-based for debuggability and natural JSON serialization.
type Code string

const (
	// Success indicates the request completed without error.
	Success Code = "SUCCESS"

	// Common errors.

	// Unknown indicates the failure could not be classified.
	Unknown Code = "UNKNOWN"

	// Unsupported indicates the requested operation is not supported.
	Unsupported Code = "UNSUPPORTED"

	// Unexpected indicates an invariant of the frontend itself was violated.
	// It signals a bug rather than bad input.
	Unexpected Code = "UNEXPECTED"

	// Internal indicates an internal failure owned by the frontend.
	Internal Code = "INTERNAL"

	// InvalidArguments indicates the client supplied malformed or unresolvable input.
	InvalidArguments Code = "INVALID_ARGUMENTS"

	// SQL related errors.

	// InvalidSyntax indicates a statement could not be parsed.
	InvalidSyntax Code = "INVALID_SYNTAX"

	// Query errors.

	// PlanQuery indicates the query planner failed.
	PlanQuery Code = "PLAN_QUERY"

	// EngineExecuteQuery indicates the query engine failed while executing a plan.
	EngineExecuteQuery Code = "ENGINE_EXECUTE_QUERY"

	// Catalog errors.

	// TableAlreadyExists indicates a table cannot be created twice.
	TableAlreadyExists Code = "TABLE_ALREADY_EXISTS"

	// TableNotFound indicates the referenced table does not exist.
	TableNotFound Code = "TABLE_NOT_FOUND"

	// TableColumnNotFound indicates the referenced column does not exist.
	TableColumnNotFound Code = "TABLE_COLUMN_NOT_FOUND"

	// Storage errors.

	// StorageUnavailable indicates the storage layer is temporarily unavailable.
	StorageUnavailable Code = "STORAGE_UNAVAILABLE"

	// Runtime errors.

	// RuntimeResourcesExhausted indicates the process ran out of runtime resources.
	RuntimeResourcesExhausted Code = "RUNTIME_RESOURCES_EXHAUSTED"
)

// registry lists every known code in declaration order.
var registry = []Code{
	Success,
	Unknown,
	Unsupported,
	Unexpected,
	Internal,
	InvalidArguments,
	InvalidSyntax,
	PlanQuery,
	EngineExecuteQuery,
	TableAlreadyExists,
	TableNotFound,
	TableColumnNotFound,
	StorageUnavailable,
	RuntimeResourcesExhausted,
}

// Codes returns every known code. The returned slice is a copy.
func Codes() []Code {
	out := make([]Code, len(registry))
	copy(out, registry)
	return out
}

// String returns the code value.
func (c Code) String() string {
	return string(c)
}

// Valid reports whether c is one of the known codes.
func (c Code) Valid() bool {
	for _, known := range registry {
		if c == known {
			return true
		}
	}
	return false
}

// IsServerFault reports whether the code attributes the failure to the server
// side rather than to the client's input.
func (c Code) IsServerFault() bool {
	switch c {
	case Unknown, Unexpected, Internal, PlanQuery, EngineExecuteQuery,
		StorageUnavailable, RuntimeResourcesExhausted:
		return true
	default:
		return false
	}
}
