package respond

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmgilman/go/frontend/status"
	"go.opentelemetry.io/otel/trace"
)

// Reporter turns errors reaching the outermost handler into client responses
// and records them.
//
// Server faults are logged at error level so they reach operators; errors
// caused by client input are logged at warn level. A Reporter is safe for
// concurrent use.
type Reporter struct {
	logger          *slog.Logger
	includeLocation bool
}

// New creates a Reporter.
func New(opts ...Option) *Reporter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Reporter{
		logger:          logger,
		includeLocation: options.IncludeLocation,
	}
}

// Report classifies err, logs it, and returns the response body for the
// client. Returns nil if err is nil.
//
// When ctx carries an OpenTelemetry span, the record includes its trace ID.
func (r *Reporter) Report(ctx context.Context, err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := ToJSON(err)
	code := status.Code(resp.Code)

	if r.includeLocation {
		if loc, ok := status.LocationOf(err); ok {
			resp.Location = loc.String()
		}
	}

	level := slog.LevelWarn
	if code.IsServerFault() || code == status.Success {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("code", resp.Code),
		slog.String("classification", resp.Classification),
		slog.Any("error", err),
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
	}

	r.logger.LogAttrs(ctx, level, "request failed", attrs...)

	return resp
}

// WriteHTTP reports err and writes the response as JSON with the HTTP status
// mapped from its code. Does nothing if err is nil. An error whose chain
// reports Success is answered with 500.
func (r *Reporter) WriteHTTP(ctx context.Context, w http.ResponseWriter, err error) {
	resp := r.Report(ctx, err)
	if resp == nil {
		return
	}

	code := status.Code(resp.Code)
	httpStatus := HTTPStatus(code)
	if code == status.Success {
		httpStatus = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "failed to write error response",
			slog.Any("error", encErr))
	}
}
