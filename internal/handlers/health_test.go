package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthCheckBasic(t *testing.T) {
	checker := NewHealthChecker("http://localhost:1", nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	checker.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	// Basic mode never probes collaborators
	if resp.Status != "healthy" || resp.Checks != nil {
		t.Errorf("response = %+v, want healthy with no checks", resp)
	}
}

func TestHealthCheckExtended(t *testing.T) {
	t.Run("upstream reachable", func(t *testing.T) {
		// Any HTTP answer counts as reachable, even an auth rejection.
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer upstream.Close()
		checker := NewHealthChecker(upstream.URL, upstream.Client(), nil)

		req := httptest.NewRequest(http.MethodGet, "/healthz?mode=extended", nil)
		rec := httptest.NewRecorder()
		checker.HealthCheck(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Checks["upstream_api"] != "healthy" {
			t.Errorf("upstream check = %q, want healthy", resp.Checks["upstream_api"])
		}
	})

	t.Run("upstream unreachable", func(t *testing.T) {
		upstream := httptest.NewServer(http.NotFoundHandler())
		upstream.Close()
		checker := NewHealthChecker(upstream.URL, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/healthz?mode=extended", nil)
		rec := httptest.NewRecorder()
		checker.HealthCheck(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}
		var resp HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Status != "unhealthy" {
			t.Errorf("status = %q, want unhealthy", resp.Status)
		}
	})
}
