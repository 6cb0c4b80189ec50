package ctxutil

import "context"

type traceDataKey struct{}

// TraceData carries the per-request correlation id so log lines emitted by
// different layers of one request can be tied together.
type TraceData struct {
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}
