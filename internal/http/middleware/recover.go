package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/davidbz/pronto/internal/observability"
)

// Recover turns a handler panic into a 500 JSON response and an error log.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				observability.FromContext(r.Context()).Error("handler panicked",
					observability.String("panic", fmt.Sprint(rec)),
					observability.String("path", r.URL.Path),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
