// Package api is the typed client for the remote Tripy service. Every failure
// crossing this boundary is normalized to a single reason string; callers see
// no difference between transport errors and service rejections.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 45 * time.Second

// Client talks to the Tripy API over HTTP with a bounded per-call timeout.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// NewClient builds a client for baseURL, e.g. "http://localhost:8000/api/v1".
// A non-positive timeout falls back to the 45s default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
	}
}

// BaseURL reports the configured API base for display purposes.
func (c *Client) BaseURL() string { return c.baseURL }

// Reason extracts the normalized failure description from a gateway error.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return "Unknown error"
}

// Login exchanges credentials for an access token plus the role and
// permission claims granted to it.
func (c *Client) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return TokenResponse{}, err
	}
	return out, nil
}

// Register creates a user account. It does not sign the new user in.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (User, error) {
	var out User
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", payload, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Me fetches the profile for the presented bearer token.
func (c *Client) Me(ctx context.Context, token string) (User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// ExecuteGraph runs one conversational turn. An empty threadID asks the
// service to open a new thread; the response always carries the thread the
// turn landed on.
func (c *Client) ExecuteGraph(ctx context.Context, token, userInput, threadID string) (GraphResponse, error) {
	var out GraphResponse
	req := graphRequest{UserInput: userInput, ThreadID: threadID}
	if err := c.do(ctx, http.MethodPost, "/graph/execute", token, req, &out); err != nil {
		return GraphResponse{}, err
	}
	return out, nil
}

// ListUsers pages through the admin user inventory.
func (c *Client) ListUsers(ctx context.Context, token string, skip, limit int) ([]User, error) {
	path := fmt.Sprintf("/admin/users?skip=%d&limit=%d", skip, limit)
	var out []User
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckLive probes the liveness endpoint.
func (c *Client) CheckLive(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health/live", "", nil, &out); err != nil {
		return HealthResponse{}, err
	}
	return out, nil
}

// CheckReady probes the readiness endpoint.
func (c *Client) CheckReady(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health/ready", "", nil, &out); err != nil {
		return HealthResponse{}, err
	}
	return out, nil
}

// errorBody is the structured failure payload the service attaches to
// non-2xx responses.
type errorBody struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return normalizeTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return normalizeTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && strings.TrimSpace(eb.Detail) != "" {
			return errors.New(eb.Detail)
		}
		if resp.Status != "" {
			return errors.New(resp.Status)
		}
		return errors.New("Unknown error")
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// normalizeTransport trims the url.Error wrapping so timeouts and connection
// refusals read like the other reason strings.
func normalizeTransport(err error) error {
	if err == nil {
		return nil
	}
	var uerr interface{ Unwrap() error }
	if errors.As(err, &uerr) {
		if inner := uerr.Unwrap(); inner != nil {
			return inner
		}
	}
	return err
}
