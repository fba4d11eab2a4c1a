package middleware

import (
	"net/http"

	"github.com/davidbz/pronto/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares so the first one runs first on a request.
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// BuildMiddlewareChain composes the production chain: CORS, then Trace so
// preflights are logged with ids, then Recover so panics are logged with them.
func BuildMiddlewareChain(corsConfig *config.CORSConfig) Middleware {
	return Chain(
		CORS(corsConfig),
		Trace(),
		Recover(),
	)
}
