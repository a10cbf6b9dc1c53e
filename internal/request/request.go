package request

import (
	"context"
	"net/http"
	"strings"

	"github.com/propdesk/propdesk/internal/models"
)

type contextKey string

const userContextKey contextKey = "user"

// ClientIP extracts the client IP from the request, respecting X-Forwarded-For and X-Real-IP.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return r.RemoteAddr
}

// WithUser returns a context with the session's user info attached.
func WithUser(ctx context.Context, info *models.UserInfo) context.Context {
	return context.WithValue(ctx, userContextKey, info)
}

// UserFromContext returns the session user info, or nil if missing or wrong type.
func UserFromContext(r *http.Request) *models.UserInfo {
	u, _ := r.Context().Value(userContextKey).(*models.UserInfo)
	return u
}
