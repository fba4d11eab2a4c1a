package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

type contextKey string

// Correlation keys. Each is also the log field name it is emitted under.
const (
	TraceIDKey   contextKey = "trace_id"
	SpanIDKey    contextKey = "span_id"
	RequestIDKey contextKey = "request_id"
	ProviderKey  contextKey = "provider"
	ModelKey     contextKey = "model"
	JobIDKey     contextKey = "job_id"
)

// loggedKeys fixes the order correlation fields appear in log lines.
var loggedKeys = []contextKey{TraceIDKey, SpanIDKey, RequestIDKey, ProviderKey, ModelKey, JobIDKey}

// W3C trace context sizes.
const (
	traceIDBytes = 16
	spanIDBytes  = 8
)

func withValue(ctx context.Context, key contextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func value(ctx context.Context, key contextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// WithTraceID stores the trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return withValue(ctx, TraceIDKey, traceID)
}

// WithSpanID stores the span id.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return withValue(ctx, SpanIDKey, spanID)
}

// WithRequestID stores the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, RequestIDKey, requestID)
}

// WithProvider stores the upstream provider serving the request.
func WithProvider(ctx context.Context, provider string) context.Context {
	return withValue(ctx, ProviderKey, provider)
}

// WithModel stores the logical model id.
func WithModel(ctx context.Context, model string) context.Context {
	return withValue(ctx, ModelKey, model)
}

// WithJobID stores the job a request operates on.
func WithJobID(ctx context.Context, jobID string) context.Context {
	return withValue(ctx, JobIDKey, jobID)
}

// GetTraceID returns the trace id or "".
func GetTraceID(ctx context.Context) string { return value(ctx, TraceIDKey) }

// GetSpanID returns the span id or "".
func GetSpanID(ctx context.Context) string { return value(ctx, SpanIDKey) }

// GetRequestID returns the request id or "".
func GetRequestID(ctx context.Context) string { return value(ctx, RequestIDKey) }

// GetProvider returns the provider or "".
func GetProvider(ctx context.Context) string { return value(ctx, ProviderKey) }

// GetModel returns the model id or "".
func GetModel(ctx context.Context) string { return value(ctx, ModelKey) }

// GetJobID returns the job id or "".
func GetJobID(ctx context.Context) string { return value(ctx, JobIDKey) }

// GenerateTraceID returns 32 hex chars, falling back to a UUID if the
// system randomness source fails.
func GenerateTraceID() string {
	return randomHex(traceIDBytes, func() string { return uuid.New().String() })
}

// GenerateSpanID returns 16 hex chars.
func GenerateSpanID() string {
	return randomHex(spanIDBytes, func() string { return uuid.New().String()[:16] })
}

// GenerateRequestID returns a UUID.
func GenerateRequestID() string {
	return uuid.New().String()
}

func randomHex(size int, fallback func() string) string {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return fallback()
	}
	return hex.EncodeToString(buf)
}
