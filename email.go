package dhesend

import (
	"context"
	"net/url"
	"time"

	"github.com/dhesend-org/dhesend-go/internal/api"
)

// EmailStatus is the delivery state of an email.
type EmailStatus string

const (
	EmailStatusDelivery  EmailStatus = "delivery"
	EmailStatusScheduled EmailStatus = "scheduled"
	EmailStatusSent      EmailStatus = "sent"
	EmailStatusComplaint EmailStatus = "complaint"
	EmailStatusBounce    EmailStatus = "bounce"
	EmailStatusFailed    EmailStatus = "failed"
	EmailStatusOpened    EmailStatus = "opened"
	EmailStatusClicked   EmailStatus = "clicked"
)

// Tag labels an email. Name and Value may contain ASCII letters, digits,
// underscores and dashes, up to 256 characters each. The API validates them.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SendEmailParams describes an email to send.
type SendEmailParams struct {
	// From is the sender, optionally as "Your Name <sender@domain.com>".
	From string
	// To lists up to 50 recipients.
	To      []string
	Cc      []string
	Bcc     []string
	ReplyTo []string
	// Subject is required by the API.
	Subject  string
	HTMLBody string
	TextBody string
	Tags     []Tag
	// Attachments holds up to MaxAttachments attachments of a single kind.
	// File attachments may total at most MaxAttachmentsSize bytes.
	Attachments []Attachment
}

// SendEmailResponse is returned by EmailService.Send.
type SendEmailResponse struct {
	MessageID string `json:"messageId"`
}

// EmailSummary is one entry of an email listing.
type EmailSummary struct {
	ID        string      `json:"id"`
	To        string      `json:"to"`
	Subject   string      `json:"subject"`
	CreatedAt time.Time   `json:"createdAt"`
	Status    EmailStatus `json:"status"`
}

// EmailList is one page of emails.
type EmailList struct {
	// Next reports whether more emails follow this page.
	Next   bool           `json:"next"`
	Emails []EmailSummary `json:"emails"`
}

// Email is a sent or scheduled email.
type Email struct {
	ID          string      `json:"id"`
	From        string      `json:"from"`
	Tags        []Tag       `json:"tags"`
	To          []string    `json:"to"`
	Cc          []string    `json:"cc"`
	Bcc         []string    `json:"bcc"`
	ReplyTo     []string    `json:"replyTo"`
	Subject     string      `json:"subject"`
	HTMLBody    string      `json:"htmlBody"`
	TextBody    string      `json:"textBody"`
	Status      EmailStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	CompletedAt *time.Time  `json:"completedAt"`
	ScheduledAt *time.Time  `json:"scheduledAt"`
}

// EmailService sends and inspects emails.
type EmailService struct {
	api *api.Client
}

// Send sends an email. Attachment limits are checked before any request is
// made. File attachments are sent as multipart/form-data, everything else as
// JSON.
func (s *EmailService) Send(ctx context.Context, params *SendEmailParams) (*SendEmailResponse, error) {
	body, verr := encodeSendEmail(params)
	if verr != nil {
		return api.Fail[SendEmailResponse](verr).Unwrap()
	}
	return api.Post[SendEmailResponse](ctx, s.api, api.PathSendEmail, body).Unwrap()
}

// List returns a page of sent emails. filter is passed to the API as the
// query string and may be nil.
func (s *EmailService) List(ctx context.Context, filter url.Values) (*EmailList, error) {
	return api.Get[EmailList](ctx, s.api, api.WithQuery(api.PathListEmails, filter)).Unwrap()
}

// Get returns a single email.
func (s *EmailService) Get(ctx context.Context, id string) (*Email, error) {
	return api.Get[Email](ctx, s.api, api.EmailPath(id)).Unwrap()
}
