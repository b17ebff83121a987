package client

import (
	"context"
	"slices"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// providerMetadata holds the discovery document members not exposed by oidc.Provider.
type providerMetadata struct {
	TokenEndpointAuthMethods []string `json:"token_endpoint_auth_methods_supported"`
}

// Discover builds a Client from the OpenID Connect discovery document of
// issuer. The endpoints come from the document, the openid scope is
// requested first, and the authentication method defaults to
// client_secret_post when the server advertises it but not
// client_secret_basic. opts are applied afterwards and take precedence.
//
// To fetch the document with a specific *http.Client, pass a context built
// with oidc.ClientContext.
func Discover(ctx context.Context, issuer, clientID string, opts ...Option) (*Client, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, errors.Wrap(err, "[client.Discover] failed to fetch provider metadata")
	}

	var meta providerMetadata
	if err := provider.Claims(&meta); err != nil {
		return nil, errors.Wrap(err, "[client.Discover] failed to decode provider metadata")
	}

	defaults := []Option{WithScopes(oidc.ScopeOpenID)}
	if authType, ok := preferredAuthType(meta.TokenEndpointAuthMethods); ok {
		defaults = append(defaults, WithAuthType(authType))
	}

	endpoint := provider.Endpoint()
	c, err := New(clientID, endpoint.AuthURL, endpoint.TokenURL, append(defaults, opts...)...)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("issuer", issuer).
		Str("auth_url", endpoint.AuthURL).
		Str("token_url", endpoint.TokenURL).
		Stringer("auth_type", c.authType).
		Msg("Discovered provider endpoints")
	return c, nil
}

func preferredAuthType(methods []string) (oauth2.AuthType, bool) {
	if len(methods) == 0 || slices.Contains(methods, "client_secret_basic") {
		return oauth2.AuthTypeBasic, false
	}
	if slices.Contains(methods, "client_secret_post") {
		return oauth2.AuthTypeRequestBody, true
	}
	return oauth2.AuthTypeBasic, false
}
