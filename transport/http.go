package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// MaxResponseBytes caps how much of a response body is read.
const MaxResponseBytes = 1 << 20

// ErrResponseTooLarge is returned when a response body exceeds MaxResponseBytes.
var ErrResponseTooLarge = errors.New("response body exceeds limit")

// HTTPDoer is a Doer backed by a *http.Client.
type HTTPDoer struct {
	client *http.Client
}

var _ Doer = (*HTTPDoer)(nil)

// NewHTTPDoer wraps client; a nil client means http.DefaultClient.
func NewHTTPDoer(client *http.Client) *HTTPDoer {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPDoer{client: client}
}

// Do sends req and reads the whole body. Bodies larger than
// MaxResponseBytes fail with ErrResponseTooLarge.
func (d *HTTPDoer) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, errors.Wrap(err, "[HTTPDoer.Do] failed to build request")
	}
	if req.Header != nil {
		httpReq.Header = req.Header.Clone()
	}

	res, err := d.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "[HTTPDoer.Do] request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "[HTTPDoer.Do] failed reading response body")
	}
	if len(body) > MaxResponseBytes {
		return nil, errors.Wrapf(ErrResponseTooLarge, "[HTTPDoer.Do] status %d", res.StatusCode)
	}

	return &Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       body,
	}, nil
}
