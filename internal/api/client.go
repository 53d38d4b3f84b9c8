// Package api is the HTTP client for the Pond memory service. Every
// exported method maps one CLI invocation to exactly one outbound request;
// there is no batching, retrying, or caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pondhq/pond-cli/internal/config"
)

// apiPrefix is the version prefix the server mounts all endpoints under.
const apiPrefix = "/api/v1"

// Doer abstracts the HTTP transport so tests can inject one.
// The standard *http.Client satisfies this interface.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one Pond server. It is safe to build once per
// invocation and throw away; it holds no connection state of its own.
type Client struct {
	baseURL   string
	apiKey    string
	http      Doer
	logger    *zap.Logger
	userAgent string
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the HTTP transport, mainly for tests.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header, normally pond-cli/<version>.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New builds a client from validated configuration.
func New(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		http:      &http.Client{Timeout: cfg.Timeout()},
		logger:    zap.NewNop(),
		userAgent: "pond-cli",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store creates one memory record with the given content and tags.
func (c *Client) Store(ctx context.Context, content string, tags []string) (*StoreResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "store", nil, storeRequest{Content: content, Tags: tags})
	if err != nil {
		return nil, err
	}

	var out StoreResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a semantic search and returns records in the server's
// relevance order. An empty result set is not an error.
func (c *Client) Search(ctx context.Context, query string, limit int) (*MemoryList, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))

	req, err := c.newRequest(ctx, http.MethodGet, "search", params, nil)
	if err != nil {
		return nil, err
	}

	var out MemoryList
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recent returns records from the lookback window, newest first.
func (c *Client) Recent(ctx context.Context, hours, limit int) (*MemoryList, error) {
	params := url.Values{}
	params.Set("hours", strconv.Itoa(hours))
	params.Set("limit", strconv.Itoa(limit))

	req, err := c.newRequest(ctx, http.MethodGet, "recent", params, nil)
	if err != nil {
		return nil, err
	}

	var out MemoryList
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Init fetches the context-priming payload used at conversation start.
func (c *Client) Init(ctx context.Context) (*InitResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "init", nil, struct{}{})
	if err != nil {
		return nil, err
	}

	var out InitResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health checks service liveness. The credential is attached like on any
// other request so the call doubles as an auth smoke test.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "health", nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// newRequest builds one request against the versioned API with the full
// header set: bearer auth, JSON content negotiation, and a per-request ID
// for correlating client runs with server-side traces.
func (c *Client) newRequest(ctx context.Context, method, endpoint string, params url.Values, body any) (*http.Request, error) {
	u := c.baseURL + apiPrefix + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do sends the request and decodes the response into out. Unknown response
// fields are ignored so additive server schema changes stay non-fatal.
func (c *Client) do(req *http.Request, out any) error {
	c.logger.Debug("Sending request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", req.Header.Get("X-Request-Id")))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach Pond at %s (check connectivity and VPN): %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("Received response",
		zap.Int("status", resp.StatusCode),
		zap.Int("body_bytes", len(raw)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Code: resp.StatusCode, Message: serverMessage(raw), Body: raw}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &DecodeError{Body: raw, Err: err}
		}
		if rc, ok := out.(interface{ setRaw([]byte) }); ok {
			rc.setRaw(raw)
		}
	}

	return nil
}
