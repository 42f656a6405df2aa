package dhesend

import (
	"fmt"

	"github.com/dhesend-org/dhesend-go/internal/api"
	"github.com/dhesend-org/dhesend-go/internal/apierrors"
)

// encodeSendEmail validates the attachments of p and encodes it. The
// attachments' Kind selects the encoding: files go as multipart/form-data,
// URLs or no attachments as a single JSON document.
func encodeSendEmail(p *SendEmailParams) (*api.Body, *apierrors.Error) {
	if p == nil {
		p = &SendEmailParams{}
	}

	attachments := compactAttachments(p.Attachments)

	if len(attachments) > MaxAttachments {
		return nil, apierrors.Validation(apierrors.ErrTooManyAttachments,
			fmt.Sprintf("You can attach up to %d attachments.", MaxAttachments))
	}

	kind, ok := attachmentsKind(attachments)
	if !ok {
		return nil, apierrors.Validation(apierrors.ErrMixedAttachments,
			"All attachments must be files or all must be URLs.")
	}

	var (
		body *api.Body
		err  error
	)
	switch kind {
	case AttachmentFile:
		files := make([]FileAttachment, 0, len(attachments))
		var total int64
		for _, a := range attachments {
			f, ok := fileAttachment(a)
			if !ok {
				return nil, invalidAttachment(a)
			}
			files = append(files, f)
			total += f.Size()
		}
		if total > MaxAttachmentsSize {
			return nil, apierrors.Validation(apierrors.ErrAttachmentsTooLarge,
				fmt.Sprintf("Total attachment size must not exceed %d MB.", MaxAttachmentsSizeMB))
		}
		body, err = encodeSendEmailForm(p, files)
	case AttachmentURL:
		urls := make([]URLAttachment, 0, len(attachments))
		for _, a := range attachments {
			u, ok := urlAttachment(a)
			if !ok {
				return nil, invalidAttachment(a)
			}
			urls = append(urls, u)
		}
		body, err = api.JSON(sendEmailRequest(p, urls))
	case 0:
		body, err = api.JSON(sendEmailRequest(p, nil))
	default:
		return nil, invalidAttachment(attachments[0])
	}
	if err != nil {
		return nil, apierrors.Validation(err, err.Error())
	}
	return body, nil
}

func invalidAttachment(a Attachment) *apierrors.Error {
	return apierrors.Validation(apierrors.ErrInvalidAttachment,
		fmt.Sprintf("Unsupported attachment type %T.", a))
}

// compactAttachments drops nil entries.
func compactAttachments(in []Attachment) []Attachment {
	out := make([]Attachment, 0, len(in))
	for _, a := range in {
		if !isNilAttachment(a) {
			out = append(out, a)
		}
	}
	return out
}

// attachmentsKind returns the Kind shared by every attachment, or 0 for an
// empty list. ok is false when kinds are mixed.
func attachmentsKind(attachments []Attachment) (kind AttachmentKind, ok bool) {
	for i, a := range attachments {
		k := a.Kind()
		if i == 0 {
			kind = k
			continue
		}
		if k != kind {
			return 0, false
		}
	}
	return kind, true
}

func encodeSendEmailForm(p *SendEmailParams, files []FileAttachment) (*api.Body, error) {
	form := api.NewForm()

	if p.From != "" {
		form.Field("from", p.From)
	}
	if p.To != nil {
		form.JSONField("to", p.To)
	}
	if p.Cc != nil {
		form.JSONField("cc", p.Cc)
	}
	if p.Bcc != nil {
		form.JSONField("bcc", p.Bcc)
	}
	if p.ReplyTo != nil {
		form.JSONField("replyTo", p.ReplyTo)
	}
	if p.Tags != nil {
		form.JSONField("tags", p.Tags)
	}
	if p.HTMLBody != "" {
		form.Field("htmlBody", p.HTMLBody)
	}
	if p.TextBody != "" {
		form.Field("textBody", p.TextBody)
	}

	form.Field("subject", p.Subject)

	for _, f := range files {
		form.File("attachments", f.Filename, f.contentType(), f.Content)
	}

	return form.Body()
}

func sendEmailRequest(p *SendEmailParams, urls []URLAttachment) *api.SendEmailRequest {
	req := &api.SendEmailRequest{
		From:     p.From,
		To:       p.To,
		Cc:       p.Cc,
		Bcc:      p.Bcc,
		ReplyTo:  p.ReplyTo,
		Subject:  p.Subject,
		HTMLBody: p.HTMLBody,
		TextBody: p.TextBody,
	}
	if req.To == nil {
		req.To = []string{}
	}
	for _, t := range p.Tags {
		req.Tags = append(req.Tags, api.TagDTO{Name: t.Name, Value: t.Value})
	}
	for _, u := range urls {
		req.Attachments = append(req.Attachments, api.AttachmentRefDTO{
			URL:         u.URL,
			Filename:    u.Filename,
			ContentType: u.ContentType,
		})
	}
	return req
}
