// Package api is the typed pass-through client for the remote real-estate
// REST API. It owns no business rules: validation beyond basic form checks,
// persistence, and relational integrity all live server-side.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/propdesk/propdesk/internal/models"
	"go.uber.org/zap"
)

// SessionReader supplies the current bearer token and user info for request
// headers. Satisfied by session.Manager.
type SessionReader interface {
	Read(ctx context.Context) (string, *models.UserInfo, error)
}

// Error is a typed remote-API failure.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error: %s (status %d)", e.Message, e.StatusCode)
}

// Client wraps the remote API with bearer-token injection and JSON
// plumbing. Resource services hang off it the way the console's pages
// consume them.
type Client struct {
	baseURL string
	httpc   *http.Client
	session SessionReader
	logger  *zap.Logger

	Owners     *OwnersService
	Properties *PropertiesService
	Images     *ImagesService
	Traces     *TracesService
}

// NewClient creates an API client. session may be nil for unauthenticated
// use; a nil http.Client gets a 30 second timeout.
func NewClient(baseURL string, httpc *http.Client, sess SessionReader, logger *zap.Logger) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		session: sess,
		logger:  logger,
	}
	c.Owners = &OwnersService{client: c}
	c.Properties = &PropertiesService{client: c}
	c.Images = &ImagesService{client: c}
	c.Traces = &TracesService{client: c}
	return c
}

// BaseURL returns the remote API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// do executes one JSON request. A session token, when present, is attached
// as a bearer header along with the user's role; 2xx responses decode into
// out (which may be nil), anything else becomes a typed *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachSession(ctx, req)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api_request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) attachSession(ctx context.Context, req *http.Request) {
	if c.session == nil {
		return
	}
	tok, info, err := c.session.Read(ctx)
	if err != nil {
		c.logger.Warn("session_read_failed", zap.Error(err))
		return
	}
	if tok == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	if info != nil && info.Role != "" {
		req.Header.Set("X-User-Role", info.Role)
	}
}

func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "request failed"
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(data))
}
