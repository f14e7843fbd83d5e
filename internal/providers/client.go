// Package providers talks to the RapidAPI-hosted travel data providers and
// builds the provider-specific request for each search.
package providers

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
)

const defaultTimeout = 30 * time.Second

// Client sends requests to one RapidAPI host.
type Client struct {
	domain     string
	host       string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	message    func(body map[string]json.RawMessage) string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the https://<host> base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a client for host. Domain names the provider in errors
// ("flight", "accommodation", "event/place").
func NewClient(domain, host, apiKey string, opts ...Option) *Client {
	c := &Client{
		domain:     domain,
		host:       host,
		apiKey:     apiKey,
		baseURL:    "https://" + host,
		httpClient: &http.Client{Timeout: defaultTimeout},
		message:    topLevelMessage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	headers map[string]string
}

func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	u, err := url.Parse(c.baseURL + r.path)
	if err != nil {
		return nil, &SetupError{Domain: c.domain, Err: fmt.Errorf("invalid base URL: %w", err)}
	}
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, &SetupError{Domain: c.domain, Err: fmt.Errorf("failed to encode body: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, &SetupError{Domain: c.domain, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &GatewayError{Domain: c.domain, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{Domain: c.domain, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.upstreamError(resp.StatusCode, payload)
	}
	return payload, nil
}

func (c *Client) upstreamError(status int, payload []byte) *UpstreamError {
	upErr := &UpstreamError{Domain: c.domain, StatusCode: status}

	var fields map[string]json.RawMessage
	if json.Unmarshal(payload, &fields) == nil {
		upErr.Message = c.message(fields)
	}
	if json.Valid(payload) {
		upErr.Details = json.RawMessage(payload)
	} else if len(payload) > 0 {
		quoted, _ := json.Marshal(string(payload))
		upErr.Details = quoted
	}
	return upErr
}

func topLevelMessage(fields map[string]json.RawMessage) string {
	return stringField(fields, "message")
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if err := json.Unmarshal(fields[key], &s); err != nil {
		return ""
	}
	return s
}
