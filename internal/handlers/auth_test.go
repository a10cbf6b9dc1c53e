package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/propdesk/propdesk/internal/auth"
	"github.com/propdesk/propdesk/internal/models"
	"github.com/propdesk/propdesk/internal/session"
	"github.com/propdesk/propdesk/internal/token"
	"go.uber.org/zap"
)

func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	sig := base64.RawURLEncoding.EncodeToString([]byte("signature"))
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + "." + sig
}

// newAuthRig wires a real gateway against a fake upstream and mounts the
// auth routes the way the server does.
func newAuthRig(t *testing.T, upstream http.Handler) (*mux.Router, *session.Manager) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	store, err := session.NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	sessions := session.NewManager(store, session.NewBroadcaster(), nil)
	gw := auth.NewGateway(srv.URL, srv.Client(), sessions, token.NewCodec(nil), nil)

	r := mux.NewRouter()
	NewAuthHandler(gw, zap.NewNop()).RegisterPublicRoutes(r.PathPrefix("/api/v1/auth").Subrouter())
	return r, sessions
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, rec.Body.String())
	}
	return rec, env
}

func TestLoginEndpoint(t *testing.T) {
	tok := makeToken(t, map[string]any{
		"exp":                   time.Now().Add(time.Hour).Unix(),
		token.ClaimGivenName:    "Ana",
		token.ClaimSurname:      "Ruiz",
		token.ClaimEmailAddress: "ana@example.com",
	})
	r, _ := newAuthRig(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": tok})
	}))

	rec, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"userName": "ana@example.com",
		"password": "pw",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !env.Success {
		t.Fatal("success = false, want true")
	}

	var state session.StateChange
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("data is not a state change: %v", err)
	}
	if !state.IsAuthenticated || state.User == nil || state.User.FirstName != "Ana" {
		t.Errorf("state = %+v, want authenticated Ana", state)
	}
}

func TestLoginEndpointRejected(t *testing.T) {
	r, _ := newAuthRig(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))

	rec, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"userName": "ana@example.com",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if env.Success {
		t.Error("success = true for a rejected login")
	}
	if env.Message != "invalid credentials" {
		t.Errorf("message = %q, want server message", env.Message)
	}
}

func TestLoginEndpointUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	store, err := session.NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	sessions := session.NewManager(store, session.NewBroadcaster(), nil)
	gw := auth.NewGateway(srv.URL, nil, sessions, token.NewCodec(nil), nil)
	srv.Close()

	r := mux.NewRouter()
	NewAuthHandler(gw, zap.NewNop()).RegisterPublicRoutes(r.PathPrefix("/api/v1/auth").Subrouter())

	rec, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"userName": "ana@example.com",
		"password": "pw",
	})
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 when the upstream is unreachable", rec.Code)
	}
	if env.Success {
		t.Error("success = true with an unreachable upstream")
	}
}

func TestLoginEndpointBadBody(t *testing.T) {
	r, _ := newAuthRig(t, http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{nope")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSessionEndpointLifecycle(t *testing.T) {
	tok := makeToken(t, map[string]any{
		"exp":                   time.Now().Add(time.Hour).Unix(),
		token.ClaimEmailAddress: "ana@example.com",
	})
	r, sessions := newAuthRig(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": tok})
	}))

	readState := func() session.StateChange {
		t.Helper()
		rec, env := doJSON(t, r, http.MethodGet, "/api/v1/auth/session", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("session status = %d, want 200", rec.Code)
		}
		var state session.StateChange
		if err := json.Unmarshal(env.Data, &state); err != nil {
			t.Fatalf("data is not a state change: %v", err)
		}
		return state
	}

	if state := readState(); state.IsAuthenticated {
		t.Error("fresh rig reports authenticated")
	}

	if rec, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"userName": "ana@example.com", "password": "pw",
	}); rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d", rec.Code)
	}
	if state := readState(); !state.IsAuthenticated {
		t.Error("session endpoint does not see the new login")
	}

	if rec, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", nil); rec.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", rec.Code)
	}
	if state := readState(); state.IsAuthenticated {
		t.Error("session endpoint still authenticated after logout")
	}

	if stored, _, _ := sessions.Read(context.Background()); stored != "" {
		t.Error("token survived logout")
	}
}

func TestSessionEndpointEvictsExpired(t *testing.T) {
	r, sessions := newAuthRig(t, http.NotFoundHandler())

	expired := makeToken(t, map[string]any{"exp": time.Now().Add(-time.Hour).Unix()})
	if err := sessions.Save(context.Background(), expired, &models.UserInfo{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, env := doJSON(t, r, http.MethodGet, "/api/v1/auth/session", nil)
	var state session.StateChange
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("data is not a state change: %v", err)
	}
	if state.IsAuthenticated {
		t.Error("expired session reported as authenticated")
	}
	if stored, _, _ := sessions.Read(context.Background()); stored != "" {
		t.Error("expired token was not evicted by the session check")
	}
}
