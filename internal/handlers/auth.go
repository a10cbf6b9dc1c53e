package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/propdesk/propdesk/internal/auth"
	"github.com/propdesk/propdesk/internal/models"
	"github.com/propdesk/propdesk/internal/request"
	"github.com/propdesk/propdesk/internal/session"
	"go.uber.org/zap"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	gateway *auth.Gateway
	logger  *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(gateway *auth.Gateway, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{gateway: gateway, logger: logger}
}

// RegisterPublicRoutes registers the routes reachable without a session.
// The router should already have the /api/v1/auth prefix.
func (h *AuthHandler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("POST")
	r.HandleFunc("/session", h.Session).Methods("GET")
}

// RegisterProtectedRoutes registers routes that require a live session.
func (h *AuthHandler) RegisterProtectedRoutes(r *mux.Router) {
	r.HandleFunc("/me", h.Me).Methods("GET")
}

// Login authenticates against the remote API and establishes the session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.LoginRequest
	if err := decodeBody(r, &creds); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	sess, err := h.gateway.Login(r.Context(), creds)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session.StateChange{IsAuthenticated: true, User: sess.User})
}

// Register forwards a registration payload. No session is created; the
// user logs in afterwards.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	if err := h.gateway.Register(r.Context(), req); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"email": req.Email})
}

// Logout clears the session. Idempotent: logging out twice succeeds twice.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.gateway.Logout(r.Context()); err != nil {
		h.logger.Warn("logout_failed", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "failed to clear session")
		return
	}
	respondJSON(w, http.StatusOK, session.StateChange{IsAuthenticated: false, User: nil})
}

// Session reports the current authentication state. The frontend polls
// this on navigation; an expired token observed here is already evicted by
// the time the response is written.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.gateway.IsAuthenticated(ctx) {
		respondJSON(w, http.StatusOK, session.StateChange{IsAuthenticated: false, User: nil})
		return
	}
	respondJSON(w, http.StatusOK, session.StateChange{IsAuthenticated: true, User: h.gateway.UserInfo(ctx)})
}

// Me returns current user information
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	info := request.UserFromContext(r)
	if info == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}
	respondJSON(w, http.StatusOK, info)
}
