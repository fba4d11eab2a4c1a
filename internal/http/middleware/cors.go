package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/davidbz/pronto/internal/config"
)

// exposedHeaders lets browser playground clients read the correlation ids.
var exposedHeaders = []string{requestIDHeader, traceIDHeader}

// CORS applies the configured cross-origin policy. A nil config disables it.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	policy := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return policy.Handler
}
