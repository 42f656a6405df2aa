package api

import (
	"context"
	"net/http"

	"github.com/dhesend-org/dhesend-go/internal/apierrors"
)

// Result is the outcome of one operation. Exactly one of Data and Err is
// non-nil.
type Result[T any] struct {
	Data *T
	Err  *apierrors.Error
}

// Fail returns a failed Result carrying err.
func Fail[T any](err *apierrors.Error) Result[T] {
	return Result[T]{Err: err}
}

// OK reports whether the result carries data.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Unwrap converts the result to Go's (value, error) form. The returned error
// is nil exactly when the value is non-nil.
func (r Result[T]) Unwrap() (*T, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Data, nil
}

// Dispatch executes req and decodes a successful response as T.
func Dispatch[T any](ctx context.Context, c *Client, req *Request) Result[T] {
	var data T
	if err := c.Do(ctx, req, &data); err != nil {
		return Fail[T](err)
	}
	return Result[T]{Data: &data}
}

// Get issues a GET request for path.
func Get[T any](ctx context.Context, c *Client, path string) Result[T] {
	return Dispatch[T](ctx, c, &Request{Method: http.MethodGet, Path: path})
}

// Post issues a POST request for path with the given body.
func Post[T any](ctx context.Context, c *Client, path string, body *Body) Result[T] {
	return Dispatch[T](ctx, c, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostJSON encodes v as JSON and posts it to path.
func PostJSON[T any](ctx context.Context, c *Client, path string, v any) Result[T] {
	body, err := JSON(v)
	if err != nil {
		return Fail[T](&apierrors.Error{
			Kind:    apierrors.KindValidation,
			Payload: apierrors.MessagePayload(err.Error()),
			Err:     err,
		})
	}
	return Post[T](ctx, c, path, body)
}
