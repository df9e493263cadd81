package http

import (
	"context"
	"net/http"
	"time"
)

// withRequestTimeout puts a deadline on the request context. Handlers are
// expected to honour it through the context; nothing is written on expiry.
// A non-positive timeout disables the middleware.
func withRequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
