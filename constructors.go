package frontend

import (
	"fmt"
	"reflect"

	"github.com/jmgilman/go/frontend/status"
)

// Wrapping constructors take ownership of one collaborator error. A nil
// source, including a typed nil pointer, is recorded as absent and the Error
// is still built, so a constructor never returns nil.

// present returns err, or nil when err holds a nil pointer (or other nil
// reference) behind a non-nil interface.
func present(err error) error {
	if err == nil {
		return nil
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return nil
		}
	default:
	}
	return err
}

// ConnectDatanode reports that connecting to the datanode at addr failed.
// Classified as InvalidArguments regardless of the client error's own code.
//
// Example:
//
//	conn, err := client.Connect(ctx, addr)
//	if err != nil {
//	    return nil, frontend.ConnectDatanode(addr, err)
//	}
func ConnectDatanode(addr string, src status.ErrorExt) *Error {
	return &Error{kind: KindConnectDatanode, addr: addr, source: present(src), location: status.Caller(1)}
}

// RequestDatanode reports that a request to a datanode failed.
// Classified by the client error.
func RequestDatanode(src status.ErrorExt) *Error {
	return &Error{kind: KindRequestDatanode, source: present(src), location: status.Caller(1)}
}

// RuntimeResource reports a runtime resource failure.
// Classified by the runtime error.
func RuntimeResource(src status.ErrorExt) *Error {
	return &Error{kind: KindRuntimeResource, source: present(src), location: status.Caller(1)}
}

// StartServer reports that a server failed to start.
// Classified by the server error.
func StartServer(src status.ErrorExt) *Error {
	return &Error{kind: KindStartServer, source: present(src), location: status.Caller(1)}
}

// ParseAddrError reports that addr could not be parsed. The parser's error
// does not classify itself; the result is always InvalidArguments.
func ParseAddrError(addr string, err error) *Error {
	return parseAddrError(1, addr, err)
}

// parseAddrError builds a ParseAddr error located skip frames above its caller.
func parseAddrError(skip int, addr string, err error) *Error {
	return &Error{kind: KindParseAddr, addr: addr, source: present(err), location: status.Caller(skip + 1)}
}

// ParseSQL reports that the SQL parser rejected a statement.
// Classified by the parser error.
func ParseSQL(src status.ErrorExt) *Error {
	return &Error{kind: KindParseSQL, source: present(src), location: status.Caller(1)}
}

// ColumnDataType reports a column datatype conversion failure.
// Always Internal: the frontend produced a column the type system rejects.
func ColumnDataType(src status.ErrorExt) *Error {
	return &Error{kind: KindColumnDataType, source: present(src), location: status.Caller(1)}
}

// ConvertColumnDefaultConstraint reports that the default constraint of
// column could not be converted. Classified by the datatypes error.
func ConvertColumnDefaultConstraint(column string, src status.ErrorExt) *Error {
	return &Error{kind: KindConvertColumnDefaultConstraint, column: column, source: present(src), location: status.Caller(1)}
}

// InvalidSQL reports a statement the frontend cannot accept.
func InvalidSQL(msg string) *Error {
	return &Error{kind: KindInvalidSQL, message: msg, location: status.Caller(1)}
}

// InvalidSQLf is InvalidSQL with a formatted message.
//
// Example:
//
//	return frontend.InvalidSQLf("expect %d values, found %d", len(columns), len(values))
func InvalidSQLf(format string, args ...interface{}) *Error {
	return &Error{kind: KindInvalidSQL, message: fmt.Sprintf(format, args...), location: status.Caller(1)}
}

// IllegalFrontendState reports a violated frontend invariant.
func IllegalFrontendState(msg string) *Error {
	return &Error{kind: KindIllegalFrontendState, message: msg, location: status.Caller(1)}
}

// IllegalFrontendStatef is IllegalFrontendState with a formatted message.
func IllegalFrontendStatef(format string, args ...interface{}) *Error {
	return &Error{kind: KindIllegalFrontendState, message: fmt.Sprintf(format, args...), location: status.Caller(1)}
}

// IncompleteGRPCResult reports a partial result from a remote node.
func IncompleteGRPCResult(msg string) *Error {
	return &Error{kind: KindIncompleteGRPCResult, message: msg, location: status.Caller(1)}
}

// ExecOpentsdbPut reports that an OpenTSDB put could not be executed.
func ExecOpentsdbPut(reason string) *Error {
	return &Error{kind: KindExecOpentsdbPut, message: reason, location: status.Caller(1)}
}

// FindPartitionColumn reports that the partition column could not be found.
func FindPartitionColumn(column string) *Error {
	return &Error{kind: KindFindPartitionColumn, column: column, location: status.Caller(1)}
}

// FindRegion reports that no region could be resolved.
func FindRegion(reason string) *Error {
	return &Error{kind: KindFindRegion, message: reason, location: status.Caller(1)}
}

// InvalidInsertRequest reports a malformed insert request.
func InvalidInsertRequest(reason string) *Error {
	return &Error{kind: KindInvalidInsertRequest, message: reason, location: status.Caller(1)}
}

// RegionKeysSize reports that actual region keys were supplied where the
// partition rule expects expect.
func RegionKeysSize(expect, actual int) *Error {
	return regionKeysSize(1, expect, actual)
}

func regionKeysSize(skip, expect, actual int) *Error {
	return &Error{kind: KindRegionKeysSize, expect: expect, actual: actual, location: status.Caller(skip + 1)}
}
