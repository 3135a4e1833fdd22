package frontend

import (
	"log/slog"
	"sort"
)

// LogValue renders the error as a structured group so that
//
//	logger.Error("request failed", "error", err)
//
// records the kind, status code and context fields instead of a flat string.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", e.kind.String()),
		slog.String("code", e.StatusCode().String()),
		slog.String("msg", e.Error()),
	}

	if ctx := e.Context(); len(ctx) > 0 {
		keys := make([]string, 0, len(ctx))
		for k := range ctx {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			attrs = append(attrs, slog.Any(k, ctx[k]))
		}
	}

	if !e.location.IsZero() {
		attrs = append(attrs, slog.String("location", e.location.String()))
	}

	return slog.GroupValue(attrs...)
}

var _ slog.LogValuer = (*Error)(nil)
