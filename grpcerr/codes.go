// Package grpcerr carries frontend status codes across gRPC boundaries.
//
// Encode turns any classified error into a gRPC status whose ErrorInfo detail
// names the status code. Decode turns a status received from a remote node
// back into an error that classifies itself with that same code, so wrapping
// it keeps the remote node's assessment intact:
//
//	resp, err := client.Query(ctx, req)
//	if err != nil {
//	    return nil, frontend.RequestDatanode(grpcerr.Decode(err))
//	}
package grpcerr

import (
	"github.com/jmgilman/go/frontend/status"
	"google.golang.org/grpc/codes"
)

// ToGRPCCode maps a status code to the gRPC code sent to clients.
func ToGRPCCode(code status.Code) codes.Code {
	switch code {
	case status.Success:
		return codes.OK
	case status.Unknown:
		return codes.Unknown
	case status.Unsupported:
		return codes.Unimplemented
	case status.Unexpected, status.Internal, status.PlanQuery, status.EngineExecuteQuery:
		return codes.Internal
	case status.InvalidArguments, status.InvalidSyntax:
		return codes.InvalidArgument
	case status.TableAlreadyExists:
		return codes.AlreadyExists
	case status.TableNotFound, status.TableColumnNotFound:
		return codes.NotFound
	case status.StorageUnavailable:
		return codes.Unavailable
	case status.RuntimeResourcesExhausted:
		return codes.ResourceExhausted
	default:
		return codes.Unknown
	}
}

// fromGRPCCode derives a status code from a bare gRPC code, for statuses
// that carry no ErrorInfo.
func fromGRPCCode(code codes.Code) status.Code {
	switch code {
	case codes.OK:
		return status.Success
	case codes.InvalidArgument, codes.OutOfRange:
		return status.InvalidArguments
	case codes.Unimplemented:
		return status.Unsupported
	case codes.AlreadyExists:
		return status.TableAlreadyExists
	case codes.NotFound:
		return status.TableNotFound
	case codes.Unavailable:
		return status.StorageUnavailable
	case codes.ResourceExhausted:
		return status.RuntimeResourcesExhausted
	case codes.Internal, codes.DataLoss:
		return status.Internal
	default:
		return status.Unknown
	}
}
