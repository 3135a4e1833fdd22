// Package frontend provides the error type returned by the query-serving
// frontend.
//
// The frontend fans client requests (SQL, inserts, OpenTSDB puts) out to
// remote datanodes. Any step can fail for reasons owned by a different
// collaborator: the datanode client, the SQL parser, the type system, the
// server runtime. This package collapses all of them into one closed error
// type, *Error, that keeps the causal chain, classifies the failure into a
// status.Code, and carries the context needed to explain it.
//
// # Variants
//
// Every Error has a Kind. Leaf kinds are native to the frontend and carry a
// message:
//
//	err := frontend.InvalidSQL("expect 3 values, found 2")
//	err := frontend.RegionKeysSize(3, 1)
//
// Wrapping kinds embed exactly one collaborator error, which must implement
// status.ErrorExt so it can classify itself:
//
//	rows, err := client.Select(ctx, req)
//	if err != nil {
//	    return nil, frontend.RequestDatanode(err)
//	}
//
// The collaborator's display text is always part of the wrapper's display
// text, and the collaborator is reachable through errors.Unwrap, errors.Is and
// errors.As.
//
// # Classification
//
// (*Error).StatusCode is total over the kinds:
//
//   - ConnectDatanode, ParseAddr, InvalidSQL, FindRegion, InvalidInsertRequest,
//     FindPartitionColumn, RegionKeysSize: status.InvalidArguments
//   - ColumnDataType, ExecOpentsdbPut: status.Internal
//   - IllegalFrontendState, IncompleteGRPCResult: status.Unexpected
//   - RequestDatanode, RuntimeResource, StartServer, ParseSQL,
//     ConvertColumnDefaultConstraint: the collaborator's own code
//
// Local context never changes the code of a variant.
//
// # Propagation
//
// Errors are built once, where a collaborator call fails or a precondition is
// violated, and returned unchanged up the call chain. The outermost handler
// reads the code:
//
//	if fe, ok := frontend.As(err); ok {
//	    code := fe.StatusCode()
//	}
//
// or, without depending on this package, status.CodeOf(err).
//
// Every Error records the location of its constructor call, available through
// Location and rendered by LogValue.
package frontend
