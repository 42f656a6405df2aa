// Package api is the request dispatcher behind every Dhesend resource
// service. It builds outbound requests, injects the default headers and turns
// every outcome into a [Result].
//
// # Client Creation
//
// [NewClient] takes a [Config] with the API key, base URL, user agent and any
// extra default headers. The key is sent as a bearer token on every request.
// Default headers are applied after request-specific ones, so the client's
// Authorization header always wins.
//
// # Bodies
//
// Request bodies are either JSON ([JSON]) or multipart/form-data ([Form]).
// Multipart bodies carry the writer's boundary in their content type.
//
// # Error Handling
//
// Every failure is an *apierrors.Error:
//
//   - transport failures (DNS, connection, TLS, cancellation) keep the cause
//     in Err and its text as the message;
//   - non-2xx responses with a JSON body report its "error" field, either a
//     message or a list of field errors;
//   - non-2xx responses that are not JSON report a fixed internal error
//     message, never the raw body;
//   - 2xx responses that cannot be decoded report the same fixed message with
//     the decode error in Err.
//
// There are no retries and no logging.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Each call works on its own
// request and response only.
package api
