package middleware

import (
	"context"
	"net/http"
	"time"
)

// DefaultRequestTimeout is the default per-request timeout
const DefaultRequestTimeout = 30 * time.Second

// Timeout enforces a deadline on request handlers. The upstream API calls
// inherit it through the request context, so a hung backend cannot pin a
// gateway worker indefinitely.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			handler := http.TimeoutHandler(next, timeout, "Request Timeout")
			handler.ServeHTTP(w, r)
		})
	}
}
