package dhesend

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookService_Create(t *testing.T) {
	id := uuid.NewString()
	srv := newFakeAPI(t, http.StatusOK, map[string]string{"id": id, "secret": "whsec_123"})
	client := srv.client(t)

	resp, err := client.Webhooks.Create(t.Context(), &CreateWebhookParams{
		Endpoint: "https://acme.com/api/webhook",
		Events:   []WebhookEvent{WebhookEventEmailDelivered, WebhookEventEmailBounced},
	})
	require.NoError(t, err)
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "whsec_123", resp.Secret)

	req := srv.last(t)
	assert.Equal(t, "/webhook/create", req.Path)
	assert.JSONEq(t, `{"endpoint":"https://acme.com/api/webhook","events":["email:delivered","email:bounced"]}`, string(req.Body))
}

func TestWebhookService_Create_InvalidEndpoint(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, `{}`)
	client := srv.client(t)

	tests := []struct {
		name   string
		params *CreateWebhookParams
	}{
		{"nil params", nil},
		{"not a url", &CreateWebhookParams{Endpoint: "not-a-url"}},
		{"ftp scheme", &CreateWebhookParams{Endpoint: "ftp://acme.com/hook"}},
		{"whitespace", &CreateWebhookParams{Endpoint: "https://acme .com/hook"}},
		{"empty", &CreateWebhookParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Webhooks.Create(t.Context(), tt.params)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidWebhookEndpoint)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, "Provide a valid webhook endpoint, e.g., `https://xyz.com/api/webhook`.", apiErr.Payload.Message)
		})
	}

	assert.Empty(t, srv.calls(), "no request may be sent")
}

func TestWebhookEndpointPattern(t *testing.T) {
	valid := []string{
		"https://xyz.com/api/webhook",
		"http://localhost:8080/hook",
		"HTTPS://ACME.COM",
	}
	for _, e := range valid {
		assert.True(t, webhookEndpointRE.MatchString(e), e)
	}

	invalid := []string{"", "https://", "https://.acme.com", "acme.com/hook", "https://acme.com/a b"}
	for _, e := range invalid {
		assert.False(t, webhookEndpointRE.MatchString(e), e)
	}
}

func TestWebhookEvent_Valid(t *testing.T) {
	for _, e := range WebhookEvents() {
		assert.True(t, e.Valid(), e)
	}
	assert.Len(t, WebhookEvents(), 7)
	assert.False(t, WebhookEvent("email:archived").Valid())
}

func TestWebhookService_Get(t *testing.T) {
	id := uuid.NewString()
	srv := newFakeAPI(t, http.StatusOK, map[string]any{
		"id":        id,
		"endpoint":  "https://acme.com/hook",
		"events":    []string{"email:sent"},
		"createdAt": "2026-04-01T12:00:00Z",
		"status":    "enabled",
		"secret":    "whsec_1",
	})
	client := srv.client(t)

	hook, err := client.Webhooks.Get(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, WebhookStatusEnabled, hook.Status)
	assert.Equal(t, []WebhookEvent{WebhookEventEmailSent}, hook.Events)
	assert.Equal(t, "/webhook/"+id, srv.last(t).Path)
}

func TestWebhookService_List(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, `[]`)
	client := srv.client(t)

	hooks, err := client.Webhooks.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, hooks)
	assert.Equal(t, "/webhook/list", srv.last(t).Path)
}

func TestWebhookService_RefreshSecret(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, map[string]string{"id": "wh_1", "secret": "whsec_new"})
	client := srv.client(t)

	resp, err := client.Webhooks.RefreshSecret(t.Context(), "wh_1")
	require.NoError(t, err)
	assert.Equal(t, "whsec_new", resp.Secret)

	req := srv.last(t)
	assert.Equal(t, "/webhook/refresh-secret", req.Path)
	assert.JSONEq(t, `{"webhookId":"wh_1"}`, string(req.Body))
}

func TestWebhookService_Delete(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, `{"success":"Webhook deleted"}`)
	client := srv.client(t)

	resp, err := client.Webhooks.Delete(t.Context(), "wh_1")
	require.NoError(t, err)
	assert.Equal(t, "Webhook deleted", resp.Success)
	assert.JSONEq(t, `{"webhookId":"wh_1"}`, string(srv.last(t).Body))
}

func TestWebhookService_UpdateStatus(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, map[string]string{"id": "wh_1", "status": "disabled"})
	client := srv.client(t)

	resp, err := client.Webhooks.UpdateStatus(t.Context(), "wh_1", WebhookStatusDisabled)
	require.NoError(t, err)
	assert.Equal(t, WebhookStatusDisabled, resp.Status)

	req := srv.last(t)
	assert.Equal(t, "/webhook/update-status", req.Path)
	assert.JSONEq(t, `{"webhookId":"wh_1","status":"disabled"}`, string(req.Body))
}
