package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/propdesk/propdesk/internal/auth"
	"github.com/propdesk/propdesk/internal/request"
	"go.uber.org/zap"
)

// RequireSession guards protected routes: requests pass only while a live
// (present, unexpired) session exists. An expired token is lazily evicted
// by the gateway during the check, so the next poll of /session already
// reports logged-out.
func RequireSession(gw *auth.Gateway, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if !gw.IsAuthenticated(ctx) {
				logger.Debug("unauthenticated_request",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)
				respondAuthError(w, "Not authenticated")
				return
			}

			if info := gw.UserInfo(ctx); info != nil {
				r = r.WithContext(request.WithUser(ctx, info))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func respondAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	response := map[string]any{
		"success": false,
		"error":   message,
	}
	_ = json.NewEncoder(w).Encode(response)
}
