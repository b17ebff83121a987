package client

import (
	"net/http"
	"sync/atomic"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/transport"
)

// Request is a pending token endpoint request for one grant type.
//
// A Request is created by one of the Client.Exchange methods, optionally
// extended with Param, and executed once. It must not be shared between
// goroutines while it is being built.
type Request struct {
	client    *Client
	grantType oauth2.GrantType
	required  []oauth2.Param
	extra     []oauth2.Param
	err       error
	consumed  atomic.Bool
}

// ExchangeCode builds an authorization_code grant request trading code for
// tokens. The configured redirect URI is sent again, as RFC 6749 section
// 4.1.3 requires when one was used for the authorization request.
func (c *Client) ExchangeCode(code oauth2.AuthorizationCode) *Request {
	r := c.newRequest(oauth2.AuthorizationCodeGrant)
	if code == "" {
		r.fail("code", "authorization code must not be empty")
	}
	return r.require("code", code.Secret())
}

// ExchangePassword builds a resource owner password credentials grant request.
// The configured scopes are sent when present.
func (c *Client) ExchangePassword(username string, password oauth2.Password) *Request {
	r := c.newRequest(oauth2.PasswordGrant)
	if username == "" {
		r.fail("username", "must not be empty")
	}
	r.require("username", username).require("password", password.Secret())
	if !c.scopes.IsEmpty() {
		r.require("scope", c.scopes.String())
	}
	return r
}

// ExchangeClientCredentials builds a client_credentials grant request using
// the configured scopes.
func (c *Client) ExchangeClientCredentials() *Request {
	r := c.newRequest(oauth2.ClientCredentialsGrant)
	if !c.scopes.IsEmpty() {
		r.require("scope", c.scopes.String())
	}
	return r
}

// ExchangeRefreshToken builds a refresh_token grant request.
//
// scopes narrows the requested access. They must be a subset of the scopes of
// the original grant; that is not checked here and is the caller's
// responsibility. With no scopes the server reuses the original ones.
func (c *Client) ExchangeRefreshToken(refreshToken oauth2.RefreshToken, scopes ...string) *Request {
	r := c.newRequest(oauth2.RefreshTokenGrant)
	if refreshToken == "" {
		r.fail("refresh_token", "must not be empty")
	}
	r.require("refresh_token", refreshToken.Secret())
	if requested := oauth2.NewScopes(scopes...); !requested.IsEmpty() {
		r.require("scope", requested.String())
	}
	return r
}

func (c *Client) newRequest(grantType oauth2.GrantType) *Request {
	r := &Request{client: c, grantType: grantType}
	r.require("grant_type", string(grantType))
	if c.redirectURL != nil {
		r.require("redirect_uri", c.redirectURL.String())
	}
	return r
}

// Param attaches a provider-specific body parameter, such as a PKCE
// code_verifier. Setting the same key again replaces the earlier value.
// Keys owned by the grant or by the client authentication method are
// rejected with a configuration error when the request is built.
func (r *Request) Param(key, value string) *Request {
	for i := range r.extra {
		if r.extra[i].Key == key {
			r.extra[i].Value = value
			return r
		}
	}
	r.extra = append(r.extra, oauth2.Param{Key: key, Value: value})
	return r
}

// Params attaches several parameters, see Param.
func (r *Request) Params(params ...oauth2.Param) *Request {
	for _, p := range params {
		r.Param(p.Key, p.Value)
	}
	return r
}

// GrantType returns the grant type of the request.
func (r *Request) GrantType() oauth2.GrantType { return r.grantType }

// Build assembles the HTTP request without sending it: a form-encoded POST
// to the token endpoint with Accept: application/json and the configured
// client authentication.
func (r *Request) Build() (*transport.Request, error) {
	if r.err != nil {
		return nil, r.err
	}

	reserved := make(map[string]struct{}, len(r.required)+3)
	for _, p := range r.required {
		reserved[p.Key] = struct{}{}
	}
	for _, k := range r.client.reservedAuthParams() {
		reserved[k] = struct{}{}
	}
	for _, p := range r.extra {
		if _, ok := reserved[p.Key]; ok {
			return nil, oauth2.NewConfigurationError(p.Key, "extra parameter collides with a required field")
		}
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	authParams, err := r.client.authenticate(header)
	if err != nil {
		return nil, err
	}

	body := make([]oauth2.Param, 0, len(authParams)+len(r.required)+len(r.extra))
	body = append(body, authParams...)
	body = append(body, r.required...)
	body = append(body, r.extra...)

	return &transport.Request{
		Method: http.MethodPost,
		URL:    r.client.tokenURL.String(),
		Header: header,
		Body:   []byte(oauth2.EncodeParams(body)),
	}, nil
}

func (r *Request) require(key, value string) *Request {
	r.required = append(r.required, oauth2.Param{Key: key, Value: value})
	return r
}

// fail records the first configuration error; it is reported by Build.
func (r *Request) fail(field, reason string) {
	if r.err == nil {
		r.err = oauth2.NewConfigurationError(field, reason)
	}
}
