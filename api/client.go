// Package api implements the HTTP client for the vidtogallery backend:
// quality lookups, download resolution, proxied media fetches and health checks.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/vidtogallery/vidtogallery/constant"
	"github.com/vidtogallery/vidtogallery/log"
)

// Endpoint paths relative to the backend base URL.
const (
	qualitiesPath = "/api/v1/qualities"
	downloadPath  = "/api/v1/download"
	proxyPath     = "/api/v1/proxy-download"
	healthPath    = "/health"
)

// Generic failure messages used when the backend gives no explanation.
const (
	qualitiesFailed = "Error getting video qualities"
	downloadFailed  = "Error downloading video"
	healthFailed    = "Error checking backend health"
)

// Doer executes raw HTTP requests. *http.Client satisfies this interface.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one vidtogallery backend.
type Client struct {
	baseURL string
	http    Doer
	token   string
}

// Option customizes a Client.
type Option func(*Client)

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New returns a Client for the backend at baseURL.
func New(baseURL string, doer Doer, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// BaseURL returns the backend root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a request with the standard headers and returns the response body of a 2xx answer.
// Any other outcome becomes an *Error carrying generic as the fallback message.
func (c *Client) do(ctx context.Context, method, path string, payload any, generic string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	entry := log.WithFields(log.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})
	entry.Debug("backend request")

	resp, err := c.http.Do(req)
	if err != nil {
		entry.WithError(err).Warn("backend unreachable")
		return nil, nil, transportError(err, generic)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, transportError(fmt.Errorf("read response: %w", err), generic)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := statusError(resp.StatusCode, data, generic)
		entry.WithField("status", resp.StatusCode).Warn(apiErr.Message)
		return nil, nil, apiErr
	}

	return resp, data, nil
}

// decode unmarshals a 2xx JSON body, reporting malformed payloads as *Error.
func decode(data []byte, target any, generic string) error {
	if err := json.Unmarshal(data, target); err != nil {
		return &Error{
			Message: fmt.Sprintf("%s: invalid response: %v", generic, err),
			Err:     err,
		}
	}
	return nil
}
