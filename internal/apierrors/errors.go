// Package apierrors provides shared error types for the Dhesend client.
package apierrors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Fixed messages surfaced in place of remote content.
const (
	// MsgGeneric is used when the remote service gives no usable error.
	MsgGeneric = "Oops! Something went wrong, please try again later."
	// MsgInternal is used when an error body is not valid JSON.
	MsgInternal = "Internal server error. We are not able to process your request right now, please try again later."
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("missing API key: pass it to dhesend.New or set DHESEND_API_KEY")

	// ErrInvalidDomain is returned when a domain name has no dot.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidWebhookEndpoint is returned when a webhook endpoint is not an http(s) URL.
	ErrInvalidWebhookEndpoint = errors.New("invalid webhook endpoint")

	// ErrTooManyAttachments is returned when an email carries more attachments than allowed.
	ErrTooManyAttachments = errors.New("too many attachments")

	// ErrAttachmentsTooLarge is returned when file attachments exceed the total size limit.
	ErrAttachmentsTooLarge = errors.New("attachments too large")

	// ErrMixedAttachments is returned when file and URL attachments are combined.
	ErrMixedAttachments = errors.New("mixed attachment kinds")

	// ErrInvalidAttachment is returned for attachments that are neither a file nor a URL.
	ErrInvalidAttachment = errors.New("invalid attachment")

	// ErrUnauthorized is returned when the API key is invalid or revoked.
	ErrUnauthorized = errors.New("invalid or revoked API key")

	// ErrForbidden is returned when the API key may not access a resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for 5xx responses.
	ErrServer = errors.New("server error")
)

// Kind classifies where an error came from.
type Kind int

const (
	// KindValidation is a local precondition failure; no request was sent.
	KindValidation Kind = iota
	// KindTransport is a network-level failure, including cancellation.
	KindTransport
	// KindRemote is a non-2xx response whose body was valid JSON.
	KindRemote
	// KindRemoteUnparseable is a non-2xx response whose body was not valid JSON.
	KindRemoteUnparseable
	// KindDecode is a 2xx response whose body could not be decoded.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindRemoteUnparseable:
		return "remote_unparseable"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// FieldError is one validation failure reported by the API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorPayload is the error reported for a failed operation. It holds either a
// plain message or a list of field errors, never both.
type ErrorPayload struct {
	Message string
	Fields  []FieldError
}

// MessagePayload returns a payload carrying a plain message.
func MessagePayload(msg string) ErrorPayload {
	return ErrorPayload{Message: msg}
}

// FieldsPayload returns a payload carrying field errors.
func FieldsPayload(fields []FieldError) ErrorPayload {
	return ErrorPayload{Fields: fields}
}

// IsFields reports whether the payload is a field error list.
func (p ErrorPayload) IsFields() bool {
	return p.Fields != nil
}

// IsZero reports whether the payload carries nothing.
func (p ErrorPayload) IsZero() bool {
	return p.Message == "" && len(p.Fields) == 0
}

func (p ErrorPayload) String() string {
	if !p.IsFields() {
		return p.Message
	}
	parts := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// MarshalJSON encodes the payload the way the API sends it: a string or a
// list of {field, message} objects.
func (p ErrorPayload) MarshalJSON() ([]byte, error) {
	if p.IsFields() {
		return json.Marshal(p.Fields)
	}
	return json.Marshal(p.Message)
}

// UnmarshalJSON accepts a JSON string or a JSON array of field errors.
func (p *ErrorPayload) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty error payload")
	}
	switch data[0] {
	case '"':
		var msg string
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		*p = MessagePayload(msg)
		return nil
	case '[':
		var fields []FieldError
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		if fields == nil {
			fields = []FieldError{}
		}
		*p = FieldsPayload(fields)
		return nil
	default:
		return fmt.Errorf("unsupported error payload: %s", data)
	}
}

// Error is returned by every failed operation.
type Error struct {
	Kind       Kind
	StatusCode int
	Payload    ErrorPayload
	// Err is the underlying cause for transport and decode failures, or the
	// sentinel for local validation failures.
	Err error
}

func (e *Error) Error() string {
	msg := e.Payload.String()
	if e.StatusCode != 0 {
		if msg == "" {
			return fmt.Sprintf("dhesend: API error %d", e.StatusCode)
		}
		return fmt.Sprintf("dhesend: API error %d: %s", e.StatusCode, msg)
	}
	return "dhesend: " + msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch {
	case e.StatusCode == 401:
		return target == ErrUnauthorized
	case e.StatusCode == 403:
		return target == ErrForbidden
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServer
	}
	return false
}

// Validation returns a local validation error carrying msg and matching cause.
func Validation(cause error, msg string) *Error {
	return &Error{
		Kind:    KindValidation,
		Payload: MessagePayload(msg),
		Err:     cause,
	}
}

// Transport wraps a network-level failure.
func Transport(err error) *Error {
	msg := MsgGeneric
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{
		Kind:    KindTransport,
		Payload: MessagePayload(msg),
		Err:     err,
	}
}
