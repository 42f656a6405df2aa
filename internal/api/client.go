package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dhesend-org/dhesend-go/internal/apierrors"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://dhesend.onrender.com"

// Config holds configuration for creating a new Client.
type Config struct {
	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string
	// APIKey is sent as a bearer token on every request. Required.
	APIKey string
	// UserAgent is sent on every request when non-empty.
	UserAgent string
	// Headers are extra default headers. Authorization is always derived
	// from APIKey and cannot be overridden here.
	Headers http.Header
	// HTTPClient is the client used for requests. Defaults to a new http.Client.
	HTTPClient *http.Client
}

// Client is the HTTP dispatcher shared by every resource service.
// It is immutable after NewClient and safe for concurrent use.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
}

// NewClient creates a new API client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	headers := make(http.Header, len(cfg.Headers)+2)
	for k, vs := range cfg.Headers {
		for _, v := range vs {
			headers.Add(k, v)
		}
	}
	if cfg.UserAgent != "" {
		headers.Set("User-Agent", cfg.UserAgent)
	}
	headers.Set("Authorization", "Bearer "+cfg.APIKey)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    headers,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Headers returns a copy of the default headers sent on every request.
func (c *Client) Headers() http.Header {
	return c.headers.Clone()
}

// Request describes one outbound call.
type Request struct {
	Method string
	// Path is relative to the base URL, e.g. "email/send".
	Path   string
	Body   *Body
	Header http.Header
}

// Do executes r and decodes a 2xx JSON response into result. Every failure
// is returned as an *apierrors.Error; nothing panics past this point.
func (c *Client) Do(ctx context.Context, r *Request, result any) *apierrors.Error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return apierrors.Transport(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierrors.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierrors.Transport(err)
	}
	// Unmarshal rejects trailing bytes after the value.
	if err := json.Unmarshal(data, result); err != nil {
		return &apierrors.Error{
			Kind:    apierrors.KindDecode,
			Payload: apierrors.MessagePayload(apierrors.MsgInternal),
			Err:     fmt.Errorf("decode response: %w", err),
		}
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, r *Request) (*http.Request, error) {
	if r == nil {
		return nil, errors.New("nil request")
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var req *http.Request
	var err error
	if r.Body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.url(r.Path), r.Body.reader())
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.url(r.Path), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// Request headers first, then client defaults so Authorization always wins.
	for k, vs := range r.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", r.Body.ContentType())
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range c.headers {
		req.Header[k] = append([]string(nil), vs...)
	}

	return req, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
