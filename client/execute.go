package client

import (
	"context"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/rs/zerolog"
)

// TokenPtr constrains Execute's second type parameter to a pointer to T
// implementing oauth2.Token.
type TokenPtr[T any] interface {
	*T
	oauth2.Token
}

// Execute sends r and decodes a successful response into a new T, which lets
// callers pick a provider-specific token shape at the call site:
//
//	tok, err := client.Execute[GitHubToken](ctx, c.ExchangeCode(code))
//
// Errors are one of *oauth2.ConfigurationError, *oauth2.TransportError,
// *oauth2.ServerError or *oauth2.ResponseFormatError.
func Execute[T any, PT TokenPtr[T]](ctx context.Context, r *Request) (*T, error) {
	var tok T
	if err := r.ExecuteInto(ctx, PT(&tok)); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Execute sends the request and decodes the response as a StandardToken.
func (r *Request) Execute(ctx context.Context) (*oauth2.StandardToken, error) {
	return Execute[oauth2.StandardToken](ctx, r)
}

// ExecuteInto sends the request and decodes a successful response into dst.
// A Request can be executed only once; later calls fail with a configuration
// error without touching the transport. The contents of dst are undefined
// when an error is returned.
func (r *Request) ExecuteInto(ctx context.Context, dst oauth2.Token) error {
	if !r.consumed.CompareAndSwap(false, true) {
		return oauth2.NewConfigurationError("request", "already executed")
	}

	req, err := r.Build()
	if err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("grant_type", string(r.grantType)).Str("token_url", req.URL).Msg("Requesting token")

	res, err := r.client.doer.Do(ctx, req)
	if err != nil {
		return &oauth2.TransportError{Err: err}
	}
	receivedAt := NowTimeFunc()

	if err := oauth2.ParseTokenResponse(res.StatusCode, res.Body, dst); err != nil {
		logger.Debug().Err(err).Str("grant_type", string(r.grantType)).Int("status", res.StatusCode).Msg("Token request rejected")
		return err
	}
	oauth2.RecordReceipt(dst, receivedAt)
	return nil
}
