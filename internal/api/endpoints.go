package api

import (
	"net/url"
)

// Email endpoints
const (
	PathSendEmail  = "email/send"
	PathListEmails = "email/list"
)

// Domain endpoints
const (
	PathCreateDomain = "domain/create"
	PathListDomains  = "domain/list"
	PathDeleteDomain = "domain/delete"
)

// API key endpoints
const (
	PathCreateAPIKey = "apikey/create"
	PathListAPIKeys  = "apikey/list"
	PathDeleteAPIKey = "apikey/delete"
)

// Webhook endpoints
const (
	PathCreateWebhook        = "webhook/create"
	PathListWebhooks         = "webhook/list"
	PathDeleteWebhook        = "webhook/delete"
	PathRefreshWebhookSecret = "webhook/refresh-secret"
	PathUpdateWebhookStatus  = "webhook/update-status"
)

// EmailPath returns the path of a single email.
func EmailPath(id string) string {
	return "email/" + url.PathEscape(id)
}

// DomainPath returns the path of a single domain.
func DomainPath(name string) string {
	return "domain/" + url.PathEscape(name)
}

// WebhookPath returns the path of a single webhook.
func WebhookPath(id string) string {
	return "webhook/" + url.PathEscape(id)
}

// WithQuery appends an encoded query to path. Empty queries leave it unchanged.
func WithQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
