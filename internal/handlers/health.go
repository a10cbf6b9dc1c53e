package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// HealthChecker handles health check requests. The gateway is stateless
// apart from the session, so extended checks probe its collaborators: the
// remote API and, when configured, the Redis session backend.
type HealthChecker struct {
	apiBaseURL  string
	httpc       *http.Client
	redisClient *redis.Client
}

// NewHealthChecker creates a new health checker. redisClient may be nil.
func NewHealthChecker(apiBaseURL string, httpc *http.Client, redisClient *redis.Client) *HealthChecker {
	if httpc == nil {
		httpc = &http.Client{Timeout: 5 * time.Second}
	}
	return &HealthChecker{apiBaseURL: apiBaseURL, httpc: httpc, redisClient: redisClient}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck handles the /healthz endpoint
func (h *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if r.URL.Query().Get("mode") == "extended" {
		checks := make(map[string]string)

		if err := h.checkUpstream(r.Context()); err != nil {
			response.Status = "unhealthy"
			checks["upstream_api"] = "unhealthy: " + err.Error()
		} else {
			checks["upstream_api"] = "healthy"
		}

		if h.redisClient != nil {
			if err := h.checkRedis(r.Context()); err != nil {
				response.Status = "unhealthy"
				checks["redis"] = "unhealthy: " + err.Error()
			} else {
				checks["redis"] = "healthy"
			}
		}

		response.Checks = checks
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// checkUpstream verifies the remote API answers at all. Any HTTP response,
// including 401, counts as reachable; only transport failures are unhealthy.
func (h *HealthChecker) checkUpstream(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.apiBaseURL, nil)
	if err != nil {
		return err
	}
	resp, err := h.httpc.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (h *HealthChecker) checkRedis(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.redisClient.Ping(ctx).Err()
}
