// Package api wraps the workout backend's REST interface. The client
// attaches the stored bearer credential to outbound requests, classifies
// non-2xx responses into typed errors, and purges the credential whenever
// the backend answers 401 so no caller has to remember to log out.
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

	"github.com/google/uuid"

	"github.com/repkit/repkit/internal/config"
	"github.com/repkit/repkit/internal/logger"
	"github.com/repkit/repkit/internal/session"
)

// Client talks to the workout backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Service
}

// NewClient creates a Client for the configured base URL, reading and
// purging credentials through the given session service.
func NewClient(cfg *config.Config, sess *session.Service) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		session:    sess,
	}
}

// requestOpts tweaks per-endpoint behavior.
type requestOpts struct {
	// skipPurge disables the 401 credential purge. Only the login endpoint
	// sets it: a 401 there rejects the submitted password, not the stored
	// credential, which must stay untouched.
	skipPurge bool
}

// request performs one HTTP call. A JSON content type is set only when a
// body is present; the Authorization header only when a credential is held.
// The returned payload is nil when the response body was absent or not
// parseable as declared.
func (c *Client) request(ctx context.Context, method, path string, body any, opts requestOpts) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("api: create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	if token, err := c.session.Get(); err == nil {
		req.Header.Set("Authorization", "Bearer "+token)
	} else if !errors.Is(err, session.ErrNoToken) {
		logger.Warn("Credential store read failed, sending unauthenticated request", "error", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read response body: %w", err)
	}

	// A declared-JSON body that fails to parse yields an absent payload
	// rather than a parse error.
	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")
	var payload json.RawMessage
	if len(raw) > 0 {
		if isJSON {
			if json.Valid(raw) {
				payload = raw
			}
		} else {
			payload = raw
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return payload, nil
	}

	if resp.StatusCode == http.StatusUnauthorized && !opts.skipPurge {
		c.session.PurgeOnUnauthorized()
	}

	return nil, classify(resp.StatusCode, payload, isJSON)
}

// do performs a request and decodes the payload into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any, opts requestOpts) error {
	payload, err := c.request(ctx, method, path, body, opts)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if payload == nil {
		return fmt.Errorf("api: %s %s: empty response", method, path)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("api: decode %s response: %w", path, err)
	}
	return nil
}
