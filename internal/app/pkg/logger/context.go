package logger

import "context"

type contextKey string

// RequestIDKey 请求ID的 Context Key
const RequestIDKey contextKey = "request_id"

// WithRequestID 将请求ID写入 Context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
