package dhesend

import (
	"net/http"

	"github.com/dhesend-org/dhesend-go/internal/api"
)

const defaultBaseURL = api.DefaultBaseURL

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
	userAgent  string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts, proxies and transports
// are configured there; the SDK sets none of its own.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithHeaders adds default headers sent with every request. Authorization is
// always derived from the API key and cannot be replaced.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		if c.headers == nil {
			c.headers = make(http.Header, len(headers))
		}
		for k, v := range headers {
			c.headers.Set(k, v)
		}
	}
}

// WithUserAgent overrides the User-Agent header.
// Default: DHESEND_USER_AGENT, else "dhesend-go:<Version>".
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}
