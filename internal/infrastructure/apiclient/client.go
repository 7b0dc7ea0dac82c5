// Package apiclient is the HTTP client for the repair-shop REST API.
package apiclient

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

	"github.com/google/uuid"

	"github.com/onlyfix/admin/internal/infrastructure/credentials"
	"github.com/onlyfix/admin/internal/shared/errors"
	"github.com/onlyfix/admin/internal/shared/logger"
	"github.com/onlyfix/admin/internal/shared/pagination"
)

const apiPrefix = "/api"

// Client is the admin API client. It issues one request per call and never retries.
type Client struct {
	baseURL    string
	store      credentials.Store
	httpClient *http.Client
	userAgent  string
	logger     logger.Interface
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout. Zero leaves the transport default.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

func WithLogger(l logger.Interface) Option {
	return func(client *Client) {
		client.logger = l
	}
}

func WithUserAgent(ua string) Option {
	return func(client *Client) {
		client.userAgent = ua
	}
}

// NewClient creates a new API client.
//
// Parameters:
//   - baseURL: the backend root (e.g., "http://onlyfix.local"); paths are joined under /api
//   - store: where the bearer token is read from before every authenticated call
func NewClient(baseURL string, store credentials.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		store:      store,
		httpClient: &http.Client{},
		userAgent:  "onlyfix-admin",
		logger:     logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Credentials exposes the store the client authenticates with.
func (c *Client) Credentials() credentials.Store {
	return c.store
}

// doRequest sends one request and returns the raw body of a 2xx response.
// Non-2xx responses become *errors.APIError.
func (c *Client) doRequest(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + apiPrefix + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debugw("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// errorEnvelope is the backend error shape {message, errors?}.
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func decodeError(status int, body []byte) *errors.APIError {
	var env errorEnvelope
	_ = json.Unmarshal(body, &env)

	message := env.Message
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d", status)
	}
	return errors.NewAPIError(status, message, env.Errors)
}

// decodeEnvelope accepts either {"data": T} or a bare T.
func decodeEnvelope(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("invalid response: empty body")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err == nil {
		if inner, ok := fields["data"]; ok {
			if bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
				return fmt.Errorf("invalid response: empty data")
			}
			trimmed = inner
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) getResource(ctx context.Context, path string, out any) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(body, out)
}

func (c *Client) sendResource(ctx context.Context, method, path string, in, out any) error {
	body, err := c.doRequest(ctx, method, path, nil, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeEnvelope(body, out)
}

func listResource[T any](ctx context.Context, c *Client, path string, params url.Values) (*pagination.Response[T], error) {
	body, err := c.doRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}

	var page pagination.Response[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("unmarshal page: %w", err)
	}
	if page.Data == nil {
		page.Data = []T{}
	}
	return &page, nil
}

func resourcePath(collection string, id int, sub ...string) string {
	path := fmt.Sprintf("/%s/%d", collection, id)
	for _, s := range sub {
		path += "/" + s
	}
	return path
}
