package api

// Request bodies as the API expects them on the wire.

// SendEmailRequest is the JSON body of an email send without file attachments.
type SendEmailRequest struct {
	From        string             `json:"from,omitempty"`
	To          []string           `json:"to"`
	Cc          []string           `json:"cc,omitempty"`
	Bcc         []string           `json:"bcc,omitempty"`
	ReplyTo     []string           `json:"replyTo,omitempty"`
	Subject     string             `json:"subject"`
	HTMLBody    string             `json:"htmlBody,omitempty"`
	TextBody    string             `json:"textBody,omitempty"`
	Tags        []TagDTO           `json:"tags,omitempty"`
	Attachments []AttachmentRefDTO `json:"attachments,omitempty"`
}

// TagDTO is an email tag.
type TagDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AttachmentRefDTO references an attachment the server downloads itself.
type AttachmentRefDTO struct {
	URL         string `json:"url"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// DomainRequest is the body of domain create and delete.
type DomainRequest struct {
	Domain string `json:"domain"`
}

// CreateAPIKeyRequest is the body of API key creation.
type CreateAPIKeyRequest struct {
	Title string `json:"title,omitempty"`
}

// DeleteAPIKeyRequest is the body of API key deletion.
type DeleteAPIKeyRequest struct {
	ID string `json:"id"`
}

// CreateWebhookRequest is the body of webhook creation.
type CreateWebhookRequest struct {
	Endpoint string   `json:"endpoint"`
	Events   []string `json:"events"`
}

// WebhookIDRequest is the body of webhook delete and secret refresh.
type WebhookIDRequest struct {
	WebhookID string `json:"webhookId"`
}

// UpdateWebhookStatusRequest is the body of a webhook status change.
type UpdateWebhookStatusRequest struct {
	WebhookID string `json:"webhookId"`
	Status    string `json:"status"`
}
