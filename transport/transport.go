// Package transport is the execution boundary between the OAuth2 protocol
// engine and the network. The engine assembles a Request, hands it to a Doer
// and interprets the returned Response; it never talks to the network itself.
package transport

import (
	"context"
	"net/http"
)

// Request is a fully-formed HTTP request produced by the protocol engine.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is the raw outcome of a Request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Doer sends a Request and returns the raw Response.
//
// Implementations must honour ctx cancellation. A non-nil error means no
// response was obtained; it is surfaced to the caller unchanged and never
// retried by the engine. Retry, backoff and timeouts belong to the Doer.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// DoerFunc adapts an ordinary function to the Doer interface.
type DoerFunc func(ctx context.Context, req *Request) (*Response, error)

func (f DoerFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
