package grpcerr

import (
	"github.com/jmgilman/go/frontend/status"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

const metadataLocation = "location"

// Encode converts err into a gRPC status error.
// Returns nil if err is nil.
//
// The gRPC code is derived from status.CodeOf(err), the message is the full
// display text, and an ErrorInfo detail records the status code as its
// reason so Decode can restore it exactly. A non-nil error is never sent as
// codes.OK: a chain that reports Success travels as codes.Unknown.
func Encode(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	code := status.CodeOf(err)
	grpcCode := ToGRPCCode(code)
	if grpcCode == codes.OK {
		grpcCode = codes.Unknown
	}
	st := grpcstatus.New(grpcCode, err.Error())

	info := &errdetails.ErrorInfo{
		Reason: code.String(),
		Domain: options.Domain,
	}
	if options.IncludeLocation {
		if loc, ok := status.LocationOf(err); ok {
			info.Metadata = map[string]string{metadataLocation: loc.String()}
		}
	}

	detailed, detailErr := st.WithDetails(info)
	if detailErr != nil {
		// The code still reaches the peer, only the exact status is lost.
		return st.Err()
	}
	return detailed.Err()
}

// RemoteError is an error received from a remote node over gRPC.
// It classifies itself with the status code the remote node reported.
type RemoteError struct {
	grpcCode codes.Code
	code     status.Code
	message  string
	domain   string
	location string
	cause    error
}

var _ status.ErrorExt = (*RemoteError)(nil)

// Decode converts an error returned by a gRPC call into a RemoteError.
// Returns nil if err is nil.
//
// The status code comes from the ErrorInfo reason when the peer sent a valid
// one; otherwise it is derived from the gRPC code. Errors that are not gRPC
// statuses classify as status.Unknown.
func Decode(err error) *RemoteError {
	if err == nil {
		return nil
	}

	st, _ := grpcstatus.FromError(err)
	remote := &RemoteError{
		grpcCode: st.Code(),
		code:     fromGRPCCode(st.Code()),
		message:  st.Message(),
		cause:    err,
	}

	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		if reason := status.Code(info.GetReason()); reason.Valid() {
			remote.code = reason
		}
		remote.domain = info.GetDomain()
		remote.location = info.GetMetadata()[metadataLocation]
		break
	}

	return remote
}

// Error returns the display text of the received error.
func (e *RemoteError) Error() string {
	return e.cause.Error()
}

// Unwrap returns the error returned by the gRPC call.
func (e *RemoteError) Unwrap() error {
	return e.cause
}

// StatusCode returns the status code reported by the remote node.
func (e *RemoteError) StatusCode() status.Code {
	return e.code
}

// GRPCCode returns the gRPC code of the received status.
func (e *RemoteError) GRPCCode() codes.Code {
	return e.grpcCode
}

// Message returns the status message without the gRPC prefix.
func (e *RemoteError) Message() string {
	return e.message
}

// Domain returns the ErrorInfo domain, or "" if the peer sent none.
func (e *RemoteError) Domain() string {
	return e.domain
}

// RemoteLocation returns the capture location reported by the peer, or "".
func (e *RemoteError) RemoteLocation() string {
	return e.location
}
