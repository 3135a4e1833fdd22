package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/jmgilman/go/frontend/status"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestError_DisplayContainsSource(t *testing.T) {
	src := &foreignError{msg: "rpc error: code = Unavailable desc = connection refused", code: distinct}

	for kind, err := range oneOfEach(src) {
		if !kind.Wraps() {
			continue
		}
		t.Run(kind.String(), func(t *testing.T) {
			require.Contains(t, err.Error(), src.Error())
			require.NotEqual(t, src.Error(), err.Error(), "wrapper must add its own kind")
			require.Same(t, src, err.Unwrap())
			require.True(t, errors.Is(err, src))
		})
	}
}

func TestError_Display(t *testing.T) {
	src := &foreignError{msg: "boom", code: distinct}

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "connect datanode", err: ConnectDatanode("10.0.0.1:4001", src), want: "failed to connect datanode at 10.0.0.1:4001: boom"},
		{name: "request datanode", err: RequestDatanode(src), want: "failed to request datanode: boom"},
		{name: "runtime resource", err: RuntimeResource(src), want: "runtime resource error: boom"},
		{name: "start server", err: StartServer(src), want: "failed to start server: boom"},
		{name: "parse addr", err: ParseAddrError("x:y", src), want: "failed to parse address x:y: boom"},
		{name: "parse sql", err: ParseSQL(src), want: "failed to parse SQL: boom"},
		{name: "column datatype", err: ColumnDataType(src), want: "column datatype error: boom"},
		{name: "default constraint", err: ConvertColumnDefaultConstraint("ts", src), want: "failed to convert column default constraint, column: ts: boom"},
		{name: "invalid sql", err: InvalidSQL("no table"), want: "invalid SQL: no table"},
		{name: "illegal state", err: IllegalFrontendState("no catalog"), want: "illegal frontend state: no catalog"},
		{name: "incomplete result", err: IncompleteGRPCResult("missing header"), want: "incomplete gRPC result: missing header"},
		{name: "opentsdb put", err: ExecOpentsdbPut("no tags"), want: "failed to execute OpenTSDB put: no tags"},
		{name: "partition column", err: FindPartitionColumn("ts"), want: "failed to find partition column: ts"},
		{name: "find region", err: FindRegion("empty route"), want: "failed to find region: empty route"},
		{name: "insert request", err: InvalidInsertRequest("no columns"), want: "invalid insert request: no columns"},
		{name: "region keys", err: RegionKeysSize(3, 1), want: "expect 3 region keys, actual 1"},
		{name: "missing source", err: RequestDatanode(nil), want: "failed to request datanode: <nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_ContextRoundTrip(t *testing.T) {
	src := &foreignError{msg: "boom", code: distinct}

	connect := ConnectDatanode("192.168.1.7:3001", src)
	require.Equal(t, "192.168.1.7:3001", connect.Addr())
	require.Equal(t, map[string]interface{}{"addr": "192.168.1.7:3001"}, connect.Context())
	require.Same(t, src, connect.Source())

	constraint := ConvertColumnDefaultConstraint("created_at", src)
	require.Equal(t, "created_at", constraint.ColumnName())
	require.Equal(t, map[string]interface{}{"column_name": "created_at"}, constraint.Context())

	keys := RegionKeysSize(4, 2)
	expect, actual := keys.RegionKeys()
	require.Equal(t, 4, expect)
	require.Equal(t, 2, actual)
	require.Equal(t, map[string]interface{}{"expect": 4, "actual": 2}, keys.Context())

	region := FindRegion("table has no partitions")
	require.Equal(t, "table has no partitions", region.Message())
	require.Nil(t, region.Context())
	require.Nil(t, region.Source())
	require.Nil(t, region.Unwrap())
}

func TestError_ContextIsCopy(t *testing.T) {
	err := FindPartitionColumn("ts")

	ctx := err.Context()
	ctx["column_name"] = "modified"
	ctx["new"] = "value"

	require.Equal(t, "ts", err.ColumnName())
	require.Equal(t, map[string]interface{}{"column_name": "ts"}, err.Context())
}

func TestError_Formatted(t *testing.T) {
	err := InvalidSQLf("expect %d values, found %d", 3, 2)
	require.Equal(t, KindInvalidSQL, err.Kind())
	require.Equal(t, "expect 3 values, found 2", err.Message())

	state := IllegalFrontendStatef("table %s has no schema", "monitor")
	require.Equal(t, KindIllegalFrontendState, state.Kind())
	require.Equal(t, "table monitor has no schema", state.Message())
}

func TestError_Location(t *testing.T) {
	err := InvalidSQL("x")
	line := status.Caller(0).Line - 1

	loc := err.Location()
	require.True(t, strings.HasSuffix(loc.File, "errors_test.go"), loc.File)
	require.Equal(t, line, loc.Line)
	require.Contains(t, loc.Function, "TestError_Location")

	got, ok := status.LocationOf(fmt.Errorf("handler: %w", err))
	require.True(t, ok)
	require.Equal(t, loc, got)
}

func TestError_EveryKindHasLocation(t *testing.T) {
	for kind, err := range oneOfEach(&foreignError{msg: "boom", code: distinct}) {
		loc := err.Location()
		require.False(t, loc.IsZero(), kind.String())
		require.True(t, strings.HasSuffix(loc.File, "classification_test.go"), kind.String())
	}
}

func TestAs(t *testing.T) {
	original := FindRegion("no route")
	wrapped := fmt.Errorf("handle insert: %w", original)

	fe, ok := As(wrapped)
	require.True(t, ok)
	require.Same(t, original, fe)

	_, ok = As(errors.New("plain"))
	require.False(t, ok)

	_, ok = As(nil)
	require.False(t, ok)
}

func TestAs_FindsCollaboratorThroughWrapper(t *testing.T) {
	src := &foreignError{msg: "parse failed", code: status.InvalidSyntax}
	err := ParseSQL(src)

	var target *foreignError
	require.True(t, errors.As(err, &target))
	require.Same(t, src, target)
}

func TestKind_String(t *testing.T) {
	seen := make(map[string]bool)
	for _, kind := range Kinds() {
		name := kind.String()
		require.NotContains(t, name, "Kind(")
		require.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}

	require.Equal(t, "Kind(0)", kindInvalid.String())
	require.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKind_StringMatchesIdentifier(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{kind: KindParseSQL, want: "ParseSQL"},
		{kind: KindInvalidSQL, want: "InvalidSQL"},
		{kind: KindIncompleteGRPCResult, want: "IncompleteGRPCResult"},
		{kind: KindExecOpentsdbPut, want: "ExecOpentsdbPut"},
		{kind: KindConvertColumnDefaultConstraint, want: "ConvertColumnDefaultConstraint"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestKind_Wraps(t *testing.T) {
	var wrapping []Kind
	for _, kind := range Kinds() {
		if kind.Wraps() {
			wrapping = append(wrapping, kind)
		}
	}

	require.ElementsMatch(t, []Kind{
		KindConnectDatanode, KindRequestDatanode, KindRuntimeResource, KindStartServer,
		KindParseAddr, KindParseSQL, KindColumnDataType, KindConvertColumnDefaultConstraint,
	}, wrapping)
}

func TestError_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Error("request failed", "error", RegionKeysSize(3, 1))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	group, ok := record["error"].(map[string]interface{})
	require.True(t, ok, "error should be logged as a group")
	require.Equal(t, "RegionKeysSize", group["kind"])
	require.Equal(t, "INVALID_ARGUMENTS", group["code"])
	require.Equal(t, "expect 3 region keys, actual 1", group["msg"])
	require.EqualValues(t, 3, group["expect"])
	require.EqualValues(t, 1, group["actual"])
	require.Contains(t, group["location"], "errors_test.go:")
}

func TestError_Concurrent(t *testing.T) {
	shared := RequestDatanode(&foreignError{msg: "datanode busy", code: status.StorageUnavailable})

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			local := RegionKeysSize(i, i+1)
			if local.StatusCode() != status.InvalidArguments {
				return fmt.Errorf("goroutine %d: unexpected code %s", i, local.StatusCode())
			}
			if shared.StatusCode() != status.StorageUnavailable {
				return fmt.Errorf("goroutine %d: shared error reclassified", i)
			}
			return shared
		})
	}

	err := g.Wait()
	require.ErrorIs(t, err, shared)
	require.Equal(t, status.StorageUnavailable, status.CodeOf(err))
}
