package dhesend

import (
	"github.com/dhesend-org/dhesend-go/internal/apierrors"
)

// Error is returned by every failed operation. Payload holds either a plain
// message or the field errors reported by the API.
type Error = apierrors.Error

// ErrorPayload is the error reported for a failed operation.
type ErrorPayload = apierrors.ErrorPayload

// FieldError is one validation failure reported by the API.
type FieldError = apierrors.FieldError

// ErrorKind classifies where an error came from.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	// KindValidation is a local precondition failure; no request was sent.
	KindValidation = apierrors.KindValidation
	// KindTransport is a network-level failure, including cancellation.
	KindTransport = apierrors.KindTransport
	// KindRemote is a non-2xx response whose body was valid JSON.
	KindRemote = apierrors.KindRemote
	// KindRemoteUnparseable is a non-2xx response whose body was not JSON.
	KindRemoteUnparseable = apierrors.KindRemoteUnparseable
	// KindDecode is a 2xx response whose body could not be decoded.
	KindDecode = apierrors.KindDecode
)

// Fixed messages used when the API gives nothing usable.
const (
	MessageGeneric  = apierrors.MsgGeneric
	MessageInternal = apierrors.MsgInternal
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned by New when no API key is available.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrInvalidDomain is returned when a domain name has no dot.
	ErrInvalidDomain = apierrors.ErrInvalidDomain

	// ErrInvalidWebhookEndpoint is returned when a webhook endpoint is not an http(s) URL.
	ErrInvalidWebhookEndpoint = apierrors.ErrInvalidWebhookEndpoint

	// ErrTooManyAttachments is returned when an email has more than MaxAttachments attachments.
	ErrTooManyAttachments = apierrors.ErrTooManyAttachments

	// ErrAttachmentsTooLarge is returned when file attachments exceed MaxAttachmentsSize.
	ErrAttachmentsTooLarge = apierrors.ErrAttachmentsTooLarge

	// ErrMixedAttachments is returned when file and URL attachments are combined.
	ErrMixedAttachments = apierrors.ErrMixedAttachments

	// ErrInvalidAttachment is returned when an attachment's kind does not match its content.
	ErrInvalidAttachment = apierrors.ErrInvalidAttachment

	// ErrUnauthorized is returned for 401 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden is returned for 403 responses.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is returned for 429 responses.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer is returned for 5xx responses.
	ErrServer = apierrors.ErrServer
)
