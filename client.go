package dhesend

import (
	"net/http"
	"os"

	"github.com/dhesend-org/dhesend-go/internal/api"
)

// Version is the SDK version reported in the default User-Agent.
const Version = "0.3.0"

// Environment variables consulted once, by New.
const (
	EnvAPIKey    = "DHESEND_API_KEY"
	EnvUserAgent = "DHESEND_USER_AGENT"
)

// Client is the Dhesend API client. It is immutable after New and safe for
// concurrent use; every call works on its own request and response.
type Client struct {
	apiClient *api.Client

	// Emails sends and inspects emails.
	Emails *EmailService
	// Domains manages sending domains.
	Domains *DomainService
	// APIKeys manages API keys.
	APIKeys *APIKeyService
	// Webhooks manages webhook endpoints.
	Webhooks *WebhookService
}

// New creates a new Dhesend client. When apiKey is empty the DHESEND_API_KEY
// environment variable is used instead; it is read here and never again.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{apiClient: apiClient}
	c.Emails = &EmailService{api: apiClient}
	c.Domains = &DomainService{api: apiClient}
	c.APIKeys = &APIKeyService{api: apiClient}
	c.Webhooks = &WebhookService{api: apiClient}
	return c, nil
}

// buildAPIClient creates the shared dispatcher from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	return api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		UserAgent:  cfg.userAgent,
		Headers:    cfg.headers,
		HTTPClient: cfg.httpClient,
	})
}

func defaultUserAgent() string {
	if ua := os.Getenv(EnvUserAgent); ua != "" {
		return ua
	}
	return "dhesend-go:" + Version
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Headers returns a copy of the headers sent with every request, including
// Authorization.
func (c *Client) Headers() http.Header {
	return c.apiClient.Headers()
}
