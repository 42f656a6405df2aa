package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dhesend-org/dhesend-go/internal/apierrors"
)

// decoded is the outcome of the first parse step over an error body: either
// the decoded JSON value, or failed when the body is not valid JSON.
type decoded struct {
	raw    json.RawMessage
	failed bool
}

func decodeBody(body []byte) decoded {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		return decoded{failed: true}
	}
	return decoded{raw: body}
}

// parseErrorResponse turns a non-2xx response into an *apierrors.Error.
// Raw non-JSON bodies never reach the caller.
func parseErrorResponse(resp *http.Response) *apierrors.Error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = apierrors.MsgGeneric
		}
		return &apierrors.Error{
			Kind:       apierrors.KindRemoteUnparseable,
			StatusCode: resp.StatusCode,
			Payload:    apierrors.MessagePayload(msg),
			Err:        err,
		}
	}

	d := decodeBody(body)
	if d.failed {
		return &apierrors.Error{
			Kind:       apierrors.KindRemoteUnparseable,
			StatusCode: resp.StatusCode,
			Payload:    apierrors.MessagePayload(apierrors.MsgInternal),
		}
	}

	return &apierrors.Error{
		Kind:       apierrors.KindRemote,
		StatusCode: resp.StatusCode,
		Payload:    payloadFromValue(d.raw),
	}
}

// payloadFromValue maps a decoded error body to a payload. Only an object's
// "error" field is consulted. Bare strings, true and non-zero numbers are used
// as text; everything else gives the generic message.
func payloadFromValue(raw json.RawMessage) apierrors.ErrorPayload {
	generic := apierrors.MessagePayload(apierrors.MsgGeneric)

	switch raw[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return generic
		}
		if p, ok := payloadFromField(obj["error"]); ok {
			return p
		}
		return generic
	case '"':
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil || msg == "" {
			return generic
		}
		return apierrors.MessagePayload(msg)
	case '[', 'n', 'f':
		// arrays, null and false carry no usable message
		return generic
	case 't':
		return apierrors.MessagePayload(string(raw))
	default:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil || n == 0 {
			return generic
		}
		return apierrors.MessagePayload(string(raw))
	}
}

func payloadFromField(raw json.RawMessage) (apierrors.ErrorPayload, bool) {
	if len(raw) == 0 {
		return apierrors.ErrorPayload{}, false
	}
	var p apierrors.ErrorPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.IsZero() {
		return apierrors.ErrorPayload{}, false
	}
	return p, true
}
