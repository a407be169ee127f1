package logging

import (
	"context"
)

type contextKey struct{}

// WithLogData attaches request-scoped log data to the context.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, contextKey{}, logData)
}

// GetLogData returns the request's log data, or nil when the request was
// not wrapped (tests, background work).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(contextKey{}).(*LogData)
	return logData
}
