package frontend

import "github.com/jmgilman/go/frontend/status"

// StatusCode classifies the error.
//
// Wrappers around the datanode request, runtime, server, SQL parser and
// default-constraint collaborators return the collaborator's own code
// unchanged. Every other variant maps to a fixed code: client input problems
// are InvalidArguments, violated frontend invariants are Unexpected, and
// column datatype and OpenTSDB failures are Internal.
func (e *Error) StatusCode() status.Code {
	switch e.kind {
	case KindConnectDatanode,
		KindParseAddr,
		KindInvalidSQL,
		KindFindRegion,
		KindInvalidInsertRequest,
		KindFindPartitionColumn,
		KindRegionKeysSize:
		return status.InvalidArguments
	case KindRuntimeResource,
		KindStartServer,
		KindParseSQL,
		KindConvertColumnDefaultConstraint,
		KindRequestDatanode:
		return e.delegate()
	case KindColumnDataType, KindExecOpentsdbPut:
		return status.Internal
	case KindIllegalFrontendState, KindIncompleteGRPCResult:
		return status.Unexpected
	case kindInvalid, kindCount:
	}
	// Only reachable for an Error that no constructor built.
	return status.Unexpected
}

func (e *Error) delegate() status.Code {
	ext, ok := e.source.(status.ErrorExt)
	if !ok {
		return status.Unknown
	}
	return ext.StatusCode()
}
