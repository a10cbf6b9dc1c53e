// Package auth orchestrates login, registration, and logout against the
// remote real-estate API and reconciles the server's response shape with
// the token's claims before persisting the session.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/propdesk/propdesk/internal/session"
	"github.com/propdesk/propdesk/internal/token"
	"github.com/propdesk/propdesk/internal/validation"
	"go.uber.org/zap"
)

const (
	loginPath    = "/api/Authentication/Login"
	registerPath = "/api/Authentication/Register"

	// Compact tokens always start with the base64url encoding of a JSON
	// header, which is how a raw-text login response is recognized.
	compactTokenPrefix = "eyJ"
)

// Gateway is the only component that performs authentication network calls.
// It owns the login state machine: request, decode, merge, persist.
type Gateway struct {
	baseURL  string
	httpc    *http.Client
	sessions *session.Manager
	codec    *token.Codec
	logger   *zap.Logger
}

// NewGateway creates an authentication gateway. A nil http.Client gets a
// default with a 30 second timeout so a hung backend cannot block a login
// attempt forever.
func NewGateway(baseURL string, httpc *http.Client, sessions *session.Manager, codec *token.Codec, logger *zap.Logger) *Gateway {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    httpc,
		sessions: sessions,
		codec:    codec,
		logger:   logger,
	}
}

// serverLoginPayload covers the response shapes the backend has been seen
// to produce for a successful login.
type serverLoginPayload struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	User    *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// Login authenticates against the remote API and persists the resulting
// session. Identity fields derived from the token's claims take priority;
// fields from the response body fill the gaps.
func (g *Gateway) Login(ctx context.Context, creds models.LoginRequest) (*models.Session, error) {
	if err := validation.Validate.Struct(creds); err != nil {
		return nil, &Error{Message: "userName and password are required", Err: err}
	}

	g.logger.Info("login_attempt", zap.String("user_name", creds.UserName))

	resp, err := g.postJSON(ctx, loginPath, creds)
	if err != nil {
		g.logger.Warn("login_request_failed", zap.Error(err))
		return nil, &Error{Message: msgConnectionFailed, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &Error{Message: msgConnectionFailed, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(body)
		if msg == "" {
			msg = msgAuthenticationFailed
		}
		g.logger.Warn("login_rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", msg),
		)
		return nil, &Error{Message: msg, StatusCode: resp.StatusCode}
	}

	tok, payload, err := extractToken(resp.Header.Get("Content-Type"), body)
	if err != nil {
		g.logger.Warn("login_response_undecodable", zap.Error(err))
		return nil, &Error{Message: msgUnexpectedResponse, StatusCode: resp.StatusCode, Err: err}
	}
	if tok == "" {
		msg := payload.Message
		if msg == "" {
			msg = msgAuthenticationFailed
		}
		return nil, &Error{Message: msg, StatusCode: resp.StatusCode}
	}

	info := MergeUserInfo(g.codec.ExtractUserInfo(tok), userInfoFromPayload(payload))
	if err := g.sessions.Save(ctx, tok, info); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	g.logger.Info("login_succeeded", zap.String("user_name", info.UserName))
	return &models.Session{Token: tok, User: info}, nil
}

// Register submits a registration payload. Success creates no session; the
// user logs in separately.
func (g *Gateway) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := validation.Validate.Struct(req); err != nil {
		return &Error{Message: validation.Describe(err), Err: err}
	}

	resp, err := g.postJSON(ctx, registerPath, req)
	if err != nil {
		g.logger.Warn("register_request_failed", zap.Error(err))
		return &Error{Message: msgConnectionFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		msg := serverMessage(body)
		if msg == "" {
			msg = msgRegistrationFailed
		}
		return &Error{Message: msg, StatusCode: resp.StatusCode}
	}

	g.logger.Info("register_succeeded", zap.String("email", req.Email))
	return nil
}

// Logout clears the local session. The backend offers no token invalidation
// endpoint, so logout is purely local; the token simply ages out server-side.
func (g *Gateway) Logout(ctx context.Context) error {
	return g.sessions.Clear(ctx)
}

// IsAuthenticated reports whether a live session exists. Finding an expired
// token here evicts the session as a side effect, so observers see the
// logout without waiting for an explicit one.
func (g *Gateway) IsAuthenticated(ctx context.Context) bool {
	tok, _, err := g.sessions.Read(ctx)
	if err != nil {
		g.logger.Warn("session_read_failed", zap.Error(err))
		return false
	}
	if tok == "" {
		return false
	}
	if g.codec.IsExpired(tok) {
		g.logger.Info("session_expired_evicting")
		if err := g.sessions.Clear(ctx); err != nil {
			g.logger.Warn("session_evict_failed", zap.Error(err))
		}
		return false
	}
	return true
}

// UserInfo returns the persisted identity record. When stored fields are
// missing and the live token can supply them, the merged record is
// re-persisted once; subsequent calls find nothing left to backfill.
func (g *Gateway) UserInfo(ctx context.Context) *models.UserInfo {
	tok, info, err := g.sessions.Read(ctx)
	if err != nil {
		g.logger.Warn("session_read_failed", zap.Error(err))
		return nil
	}
	if tok == "" {
		return nil
	}
	if info.Complete() {
		return info
	}

	fromToken := g.codec.ExtractUserInfo(tok)
	if fromToken == nil {
		return info
	}

	merged := MergeUserInfo(info, fromToken)
	if info == nil || *merged != *info {
		if err := g.sessions.Save(ctx, tok, merged); err != nil {
			g.logger.Warn("user_info_backfill_failed", zap.Error(err))
		}
	}
	return merged
}

func (g *Gateway) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return g.httpc.Do(req)
}

// extractToken branches on the response Content-Type: JSON bodies carry a
// token field, anything else is accepted as a raw compact token iff it looks
// like one.
func extractToken(contentType string, body []byte) (string, *serverLoginPayload, error) {
	mediaType := contentType
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = mt
	}

	if strings.Contains(mediaType, "application/json") {
		var payload serverLoginPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", nil, fmt.Errorf("failed to parse login response: %w", err)
		}
		return payload.Token, &payload, nil
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, compactTokenPrefix) {
		return text, &serverLoginPayload{Token: text}, nil
	}
	return "", nil, fmt.Errorf("response is neither JSON nor a compact token")
}

// userInfoFromPayload maps the server's login response fields onto the
// identity record. The name field is split into first/last on the first
// space when the server only returns a display name.
func userInfoFromPayload(payload *serverLoginPayload) *models.UserInfo {
	if payload == nil {
		return nil
	}
	info := &models.UserInfo{
		UserID: payload.UserID,
		Email:  payload.Email,
	}
	name := payload.Name
	if payload.User != nil {
		if info.UserID == "" {
			info.UserID = payload.User.ID
		}
		if info.Email == "" {
			info.Email = payload.User.Email
		}
		if name == "" {
			name = payload.User.Name
		}
	}
	if parts := strings.Fields(name); len(parts) > 0 {
		info.FirstName = parts[0]
		if len(parts) > 1 {
			info.LastName = strings.Join(parts[1:], " ")
		}
	}
	info.UserName = info.Email
	return info
}

// serverMessage pulls a human-readable message out of an error body, which
// may be JSON with a message/error field or plain text.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
