package frontend

import (
	"errors"
	"fmt"

	"github.com/jmgilman/go/frontend/status"
)

// Error is the single error type returned across the frontend boundary.
//
// An Error is one variant of a closed set identified by Kind. Leaf variants
// carry a message; wrapping variants carry exactly one collaborator error and
// optional scalar context. Every Error records the location it was
// constructed at. Values are immutable and safe to share between goroutines.
//
// Build an Error with the constructor named after its variant.
type Error struct {
	kind     Kind
	message  string
	addr     string
	column   string
	expect   int
	actual   int
	source   error
	location status.Location
}

var (
	_ status.ErrorExt  = (*Error)(nil)
	_ status.Locatable = (*Error)(nil)
)

// Error renders the failure kind, its context fields and, for wrapping
// variants, the collaborator's own display text.
func (e *Error) Error() string {
	switch e.kind {
	case KindConnectDatanode:
		return fmt.Sprintf("failed to connect datanode at %s: %s", e.addr, e.sourceText())
	case KindRequestDatanode:
		return "failed to request datanode: " + e.sourceText()
	case KindRuntimeResource:
		return "runtime resource error: " + e.sourceText()
	case KindStartServer:
		return "failed to start server: " + e.sourceText()
	case KindParseAddr:
		return fmt.Sprintf("failed to parse address %s: %s", e.addr, e.sourceText())
	case KindParseSQL:
		return "failed to parse SQL: " + e.sourceText()
	case KindColumnDataType:
		return "column datatype error: " + e.sourceText()
	case KindConvertColumnDefaultConstraint:
		return fmt.Sprintf("failed to convert column default constraint, column: %s: %s", e.column, e.sourceText())
	case KindInvalidSQL:
		return "invalid SQL: " + e.message
	case KindIllegalFrontendState:
		return "illegal frontend state: " + e.message
	case KindIncompleteGRPCResult:
		return "incomplete gRPC result: " + e.message
	case KindExecOpentsdbPut:
		return "failed to execute OpenTSDB put: " + e.message
	case KindFindPartitionColumn:
		return "failed to find partition column: " + e.column
	case KindFindRegion:
		return "failed to find region: " + e.message
	case KindInvalidInsertRequest:
		return "invalid insert request: " + e.message
	case KindRegionKeysSize:
		return fmt.Sprintf("expect %d region keys, actual %d", e.expect, e.actual)
	case kindInvalid, kindCount:
	}
	return "frontend error"
}

func (e *Error) sourceText() string {
	if e.source == nil {
		return "<nil>"
	}
	return e.source.Error()
}

// Kind returns the variant of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the message of a leaf variant (the reason or error message
// it was built with). Returns "" for wrapping variants.
func (e *Error) Message() string {
	return e.message
}

// Addr returns the address attached to ConnectDatanode and ParseAddr errors.
func (e *Error) Addr() string {
	return e.addr
}

// ColumnName returns the column attached to FindPartitionColumn and
// ConvertColumnDefaultConstraint errors.
func (e *Error) ColumnName() string {
	return e.column
}

// RegionKeys returns the expected and actual region key counts of a
// RegionKeysSize error.
func (e *Error) RegionKeys() (expect, actual int) {
	return e.expect, e.actual
}

// Source returns the wrapped collaborator error, or nil for leaf variants.
func (e *Error) Source() error {
	return e.source
}

// Unwrap returns the wrapped collaborator error for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.source
}

// Location returns where the error was constructed.
func (e *Error) Location() status.Location {
	return e.location
}

// Context returns the variant's context fields as a new map.
// Returns nil for variants without context fields.
func (e *Error) Context() map[string]interface{} {
	switch e.kind {
	case KindConnectDatanode, KindParseAddr:
		return map[string]interface{}{"addr": e.addr}
	case KindConvertColumnDefaultConstraint, KindFindPartitionColumn:
		return map[string]interface{}{"column_name": e.column}
	case KindRegionKeysSize:
		return map[string]interface{}{"expect": e.expect, "actual": e.actual}
	case kindInvalid, KindRequestDatanode, KindRuntimeResource, KindStartServer, KindParseSQL,
		KindColumnDataType, KindInvalidSQL, KindIllegalFrontendState, KindIncompleteGRPCResult,
		KindExecOpentsdbPut, KindFindRegion, KindInvalidInsertRequest, kindCount:
	}
	return nil
}

// As finds the first frontend Error in err's chain.
//
// Example:
//
//	if fe, ok := frontend.As(err); ok && fe.Kind() == frontend.KindFindRegion {
//	    // Refresh the route table
//	}
func As(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
