package frontend

import "fmt"

// Kind identifies the variant of an Error. The set of kinds is closed; every
// switch over Kind in this package lists all of them.
type Kind int

const (
	kindInvalid Kind = iota

	// Wrapping variants. Each embeds exactly one collaborator error.

	// KindConnectDatanode: connecting to a remote datanode failed.
	KindConnectDatanode
	// KindRequestDatanode: a request to a remote datanode failed.
	KindRequestDatanode
	// KindRuntimeResource: the runtime resource manager failed.
	KindRuntimeResource
	// KindStartServer: a server failed to start.
	KindStartServer
	// KindParseAddr: an address could not be parsed.
	KindParseAddr
	// KindParseSQL: the SQL parser rejected a statement.
	KindParseSQL
	// KindColumnDataType: a column datatype could not be converted.
	KindColumnDataType
	// KindConvertColumnDefaultConstraint: a column default constraint could not be converted.
	KindConvertColumnDefaultConstraint

	// Leaf variants. Native to the frontend.

	// KindInvalidSQL: a statement is well-formed but not acceptable.
	KindInvalidSQL
	// KindIllegalFrontendState: a frontend invariant was violated.
	KindIllegalFrontendState
	// KindIncompleteGRPCResult: a remote node returned a partial result.
	KindIncompleteGRPCResult
	// KindExecOpentsdbPut: an OpenTSDB put could not be written.
	KindExecOpentsdbPut
	// KindFindPartitionColumn: a partition column could not be resolved.
	KindFindPartitionColumn
	// KindFindRegion: a region could not be resolved.
	KindFindRegion
	// KindInvalidInsertRequest: an insert request is malformed.
	KindInvalidInsertRequest
	// KindRegionKeysSize: the number of region keys does not match the partition rule.
	KindRegionKeysSize

	kindCount
)

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := kindInvalid + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Wraps reports whether errors of this kind embed a collaborator error.
func (k Kind) Wraps() bool {
	switch k {
	case KindConnectDatanode, KindRequestDatanode, KindRuntimeResource, KindStartServer,
		KindParseAddr, KindParseSQL, KindColumnDataType, KindConvertColumnDefaultConstraint:
		return true
	case kindInvalid, KindInvalidSQL, KindIllegalFrontendState, KindIncompleteGRPCResult,
		KindExecOpentsdbPut, KindFindPartitionColumn, KindFindRegion, KindInvalidInsertRequest,
		KindRegionKeysSize, kindCount:
		return false
	}
	return false
}

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindConnectDatanode:
		return "ConnectDatanode"
	case KindRequestDatanode:
		return "RequestDatanode"
	case KindRuntimeResource:
		return "RuntimeResource"
	case KindStartServer:
		return "StartServer"
	case KindParseAddr:
		return "ParseAddr"
	case KindParseSQL:
		return "ParseSQL"
	case KindColumnDataType:
		return "ColumnDataType"
	case KindConvertColumnDefaultConstraint:
		return "ConvertColumnDefaultConstraint"
	case KindInvalidSQL:
		return "InvalidSQL"
	case KindIllegalFrontendState:
		return "IllegalFrontendState"
	case KindIncompleteGRPCResult:
		return "IncompleteGRPCResult"
	case KindExecOpentsdbPut:
		return "ExecOpentsdbPut"
	case KindFindPartitionColumn:
		return "FindPartitionColumn"
	case KindFindRegion:
		return "FindRegion"
	case KindInvalidInsertRequest:
		return "InvalidInsertRequest"
	case KindRegionKeysSize:
		return "RegionKeysSize"
	case kindInvalid, kindCount:
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
