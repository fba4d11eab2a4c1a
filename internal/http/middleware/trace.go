package middleware

import (
	"net/http"
	"time"

	"github.com/davidbz/pronto/internal/observability"
)

const (
	requestIDHeader = "X-Request-Id"
	traceIDHeader   = "X-Trace-Id"
)

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Trace creates a middleware that injects trace ID and request ID into every
// request and logs its completion. A caller-provided X-Request-Id is kept.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			traceID := observability.GenerateTraceID()
			ctx = observability.WithTraceID(ctx, traceID)

			spanID := observability.GenerateSpanID()
			ctx = observability.WithSpanID(ctx, spanID)

			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = observability.GenerateRequestID()
			}
			ctx = observability.WithRequestID(ctx, requestID)

			w.Header().Set(traceIDHeader, traceID)
			w.Header().Set(requestIDHeader, requestID)

			contextLogger := observability.FromContext(ctx)
			contextLogger.Info("request started",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
				observability.String("remote_addr", r.RemoteAddr),
			)

			started := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r.WithContext(ctx))

			contextLogger.Info("request completed",
				observability.Int("status", recorder.status),
				observability.Duration("elapsed", time.Since(started)),
			)
		})
	}
}
