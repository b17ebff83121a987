package client

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-oauth-client/internal/utils"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	xoauth2 "golang.org/x/oauth2"
)

// TokenSource returns a golang.org/x/oauth2 TokenSource that serves initial
// until it expires and then refreshes it with the refresh_token grant.
//
// When the server omits refresh_token from a refresh response the previous
// one is kept. Tokens without expires_in never expire as far as the source is
// concerned. The returned source is safe for concurrent use; ctx is used for
// every refresh.
func (c *Client) TokenSource(ctx context.Context, initial *oauth2.StandardToken) xoauth2.TokenSource {
	src := &refreshingSource{ctx: ctx, client: c}
	var tok *xoauth2.Token
	if initial != nil {
		tok = initial.OAuth2Token()
		if rt, ok := initial.GetRefreshToken(); ok {
			src.refreshToken = rt
		}
	}
	return xoauth2.ReuseTokenSource(tok, src)
}

// refreshingSource is only called by ReuseTokenSource, which serialises calls.
type refreshingSource struct {
	ctx          context.Context
	client       *Client
	refreshToken oauth2.RefreshToken
}

func (s *refreshingSource) Token() (*xoauth2.Token, error) {
	if s.refreshToken == "" {
		return nil, errors.New("[refreshingSource.Token] token expired and no refresh token is available")
	}

	tok, err := s.client.ExchangeRefreshToken(s.refreshToken).Execute(s.ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[refreshingSource.Token] refresh failed")
	}

	if rt, ok := tok.GetRefreshToken(); ok {
		s.refreshToken = rt
	} else {
		tok.RefreshToken = utils.Ptr(s.refreshToken)
	}

	zerolog.Ctx(s.ctx).Debug().Time("expiry", tok.Expiry()).Msg("Access token refreshed")
	return tok.OAuth2Token(), nil
}

// HTTPClient returns an *http.Client that authorizes every request with a
// token from ts.
func HTTPClient(ctx context.Context, ts xoauth2.TokenSource) *http.Client {
	return xoauth2.NewClient(ctx, ts)
}
