package dhesend

import (
	"context"
	"regexp"
	"time"

	"github.com/dhesend-org/dhesend-go/internal/api"
	"github.com/dhesend-org/dhesend-go/internal/apierrors"
)

// WebhookEvent is an event a webhook can subscribe to.
type WebhookEvent string

const (
	WebhookEventEmailSent      WebhookEvent = "email:sent"
	WebhookEventEmailDelivered WebhookEvent = "email:delivered"
	WebhookEventEmailOpened    WebhookEvent = "email:opened"
	WebhookEventEmailClicked   WebhookEvent = "email:clicked"
	WebhookEventEmailBounced   WebhookEvent = "email:bounced"
	WebhookEventEmailFailed    WebhookEvent = "email:failed"
	WebhookEventEmailComplaint WebhookEvent = "email:complaint"
)

// WebhookEvents returns every supported event.
func WebhookEvents() []WebhookEvent {
	return []WebhookEvent{
		WebhookEventEmailSent,
		WebhookEventEmailDelivered,
		WebhookEventEmailOpened,
		WebhookEventEmailClicked,
		WebhookEventEmailBounced,
		WebhookEventEmailFailed,
		WebhookEventEmailComplaint,
	}
}

// Valid reports whether e is a supported event. The SDK does not reject
// unknown events; the API decides.
func (e WebhookEvent) Valid() bool {
	for _, known := range WebhookEvents() {
		if e == known {
			return true
		}
	}
	return false
}

// WebhookStatus is whether a webhook receives events.
type WebhookStatus string

const (
	WebhookStatusEnabled  WebhookStatus = "enabled"
	WebhookStatusDisabled WebhookStatus = "disabled"
)

var webhookEndpointRE = regexp.MustCompile(`(?i)^(https?://)[^\s$.?#].[^\s]*$`)

// CreateWebhookParams describes a webhook to create.
type CreateWebhookParams struct {
	// Endpoint is the http(s) URL events are posted to,
	// e.g. "https://xyz.com/api/webhook".
	Endpoint string
	// Events lists the events to deliver.
	Events []WebhookEvent
}

// CreateWebhookResponse is returned by WebhookService.Create.
type CreateWebhookResponse struct {
	ID string `json:"id"`
	// Secret verifies incoming webhook requests.
	Secret string `json:"secret"`
}

// Webhook is a configured webhook.
type Webhook struct {
	ID        string         `json:"id"`
	Endpoint  string         `json:"endpoint"`
	Events    []WebhookEvent `json:"events"`
	CreatedAt time.Time      `json:"createdAt"`
	Status    WebhookStatus  `json:"status"`
	Secret    string         `json:"secret"`
}

// RefreshSecretResponse is returned by WebhookService.RefreshSecret.
type RefreshSecretResponse struct {
	ID string `json:"id"`
	// Secret is the new verification secret.
	Secret string `json:"secret"`
}

// UpdateWebhookStatusResponse is returned by WebhookService.UpdateStatus.
type UpdateWebhookStatusResponse struct {
	ID     string        `json:"id"`
	Status WebhookStatus `json:"status"`
}

// WebhookService manages webhooks.
type WebhookService struct {
	api *api.Client
}

// Create registers a webhook. The endpoint must be an http(s) URL.
func (s *WebhookService) Create(ctx context.Context, params *CreateWebhookParams) (*CreateWebhookResponse, error) {
	if params == nil || !webhookEndpointRE.MatchString(params.Endpoint) {
		return api.Fail[CreateWebhookResponse](apierrors.Validation(apierrors.ErrInvalidWebhookEndpoint,
			"Provide a valid webhook endpoint, e.g., `https://xyz.com/api/webhook`.")).Unwrap()
	}

	events := make([]string, 0, len(params.Events))
	for _, e := range params.Events {
		events = append(events, string(e))
	}

	return api.PostJSON[CreateWebhookResponse](ctx, s.api, api.PathCreateWebhook,
		&api.CreateWebhookRequest{Endpoint: params.Endpoint, Events: events}).Unwrap()
}

// Get returns a single webhook.
func (s *WebhookService) Get(ctx context.Context, id string) (*Webhook, error) {
	return api.Get[Webhook](ctx, s.api, api.WebhookPath(id)).Unwrap()
}

// List returns all webhooks.
func (s *WebhookService) List(ctx context.Context) ([]Webhook, error) {
	hooks, err := api.Get[[]Webhook](ctx, s.api, api.PathListWebhooks).Unwrap()
	if err != nil {
		return nil, err
	}
	return *hooks, nil
}

// RefreshSecret replaces the webhook's verification secret.
func (s *WebhookService) RefreshSecret(ctx context.Context, id string) (*RefreshSecretResponse, error) {
	return api.PostJSON[RefreshSecretResponse](ctx, s.api, api.PathRefreshWebhookSecret,
		&api.WebhookIDRequest{WebhookID: id}).Unwrap()
}

// Delete removes a webhook.
func (s *WebhookService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	return api.PostJSON[DeleteResponse](ctx, s.api, api.PathDeleteWebhook,
		&api.WebhookIDRequest{WebhookID: id}).Unwrap()
}

// UpdateStatus enables or disables a webhook.
func (s *WebhookService) UpdateStatus(ctx context.Context, id string, status WebhookStatus) (*UpdateWebhookStatusResponse, error) {
	return api.PostJSON[UpdateWebhookStatusResponse](ctx, s.api, api.PathUpdateWebhookStatus,
		&api.UpdateWebhookStatusRequest{WebhookID: id, Status: string(status)}).Unwrap()
}
