// Package client implements the client side of the OAuth2 protocol: building
// authorization URLs and token endpoint requests for each grant type, and
// executing them against an injected transport.
package client

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/transport"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Client holds the static identity and endpoints of an OAuth2 client.
//
// A Client is configured once, either through Options passed to New or with
// the Set/Add mutators before the first request is built. After that it is
// only read and may be shared between goroutines. The mutators are not
// synchronised.
type Client struct {
	clientID     string
	clientSecret *oauth2.ClientSecret
	authURL      *url.URL
	tokenURL     *url.URL
	redirectURL  *url.URL
	scopes       oauth2.Scopes
	authType     oauth2.AuthType
	assertion    *AssertionConfig
	doer         transport.Doer
}

// Option configures a Client at construction time.
type Option func(*Client) error

// New creates a client for clientID using the given authorization and token
// endpoints. Both URLs must be absolute. Without WithTransport or
// WithHTTPClient, requests are sent with http.DefaultClient.
func New(clientID, authURL, tokenURL string, opts ...Option) (*Client, error) {
	if clientID == "" {
		return nil, oauth2.NewConfigurationError("client_id", "must not be empty")
	}

	au, err := parseAbsoluteURL("auth_url", authURL)
	if err != nil {
		return nil, err
	}
	tu, err := parseAbsoluteURL("token_url", tokenURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		clientID: clientID,
		authURL:  au,
		tokenURL: tu,
		authType: oauth2.AuthTypeBasic,
		doer:     transport.NewHTTPDoer(nil),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithClientSecret sets the client secret.
func WithClientSecret(secret oauth2.ClientSecret) Option {
	return func(c *Client) error {
		c.SetClientSecret(secret)
		return nil
	}
}

// WithRedirectURL sets the redirect URI sent with authorization and token requests.
func WithRedirectURL(redirectURL string) Option {
	return func(c *Client) error {
		return c.SetRedirectURL(redirectURL)
	}
}

// WithScopes adds scopes to request.
func WithScopes(scopes ...string) Option {
	return func(c *Client) error {
		c.AddScope(scopes...)
		return nil
	}
}

// WithAuthType selects how the client authenticates to the token endpoint.
func WithAuthType(authType oauth2.AuthType) Option {
	return func(c *Client) error {
		c.SetAuthType(authType)
		return nil
	}
}

// WithTransport sets the Doer used to execute token requests.
func WithTransport(doer transport.Doer) Option {
	return func(c *Client) error {
		if doer == nil {
			return oauth2.NewConfigurationError("transport", "must not be nil")
		}
		c.SetTransport(doer)
		return nil
	}
}

// WithHTTPClient executes token requests with httpClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		c.SetTransport(transport.NewHTTPDoer(httpClient))
		return nil
	}
}

// SetClientSecret sets the client secret.
func (c *Client) SetClientSecret(secret oauth2.ClientSecret) {
	c.clientSecret = &secret
}

// SetRedirectURL sets the redirect URI. It must be an absolute URL.
func (c *Client) SetRedirectURL(redirectURL string) error {
	u, err := parseAbsoluteURL("redirect_url", redirectURL)
	if err != nil {
		return err
	}
	c.redirectURL = u
	return nil
}

// AddScope adds scopes to request. Adding a scope that is already present has
// no effect; the wire order is the order of first insertion.
func (c *Client) AddScope(scopes ...string) {
	c.scopes = c.scopes.Add(scopes...)
}

// SetAuthType selects how the client authenticates to the token endpoint.
func (c *Client) SetAuthType(authType oauth2.AuthType) {
	c.authType = authType
}

// SetTransport sets the Doer used to execute token requests.
func (c *Client) SetTransport(doer transport.Doer) {
	c.doer = doer
}

// ClientID returns the client identifier.
func (c *Client) ClientID() string { return c.clientID }

// AuthURL returns a copy of the authorization endpoint.
func (c *Client) AuthURL() *url.URL { return cloneURL(c.authURL) }

// TokenURL returns a copy of the token endpoint.
func (c *Client) TokenURL() *url.URL { return cloneURL(c.tokenURL) }

// RedirectURL returns a copy of the redirect URI, or nil when none is set.
func (c *Client) RedirectURL() *url.URL { return cloneURL(c.redirectURL) }

// Scopes returns a copy of the configured scopes in insertion order.
func (c *Client) Scopes() oauth2.Scopes { return slices.Clone(c.scopes) }

// AuthType returns the configured client authentication method.
func (c *Client) AuthType() oauth2.AuthType { return c.authType }

// HasClientSecret reports whether a client secret is configured.
func (c *Client) HasClientSecret() bool { return c.clientSecret != nil }

// Clone returns an independent copy that can be reconfigured without
// affecting c.
func (c *Client) Clone() *Client {
	out := *c
	out.authURL = cloneURL(c.authURL)
	out.tokenURL = cloneURL(c.tokenURL)
	out.redirectURL = cloneURL(c.redirectURL)
	out.scopes = slices.Clone(c.scopes)
	if c.clientSecret != nil {
		secret := *c.clientSecret
		out.clientSecret = &secret
	}
	if c.assertion != nil {
		assertion := *c.assertion
		out.assertion = &assertion
	}
	return &out
}

// String describes the client without revealing its secret.
func (c *Client) String() string {
	return fmt.Sprintf("Client{id: %q, auth_url: %q, token_url: %q, secret: %t, auth: %s, scopes: %q}",
		c.clientID, c.authURL, c.tokenURL, c.clientSecret != nil, c.authType, c.scopes.String())
}

// GoString is like String so %#v does not dump the secret.
func (c *Client) GoString() string { return c.String() }

func parseAbsoluteURL(field, raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, oauth2.NewConfigurationError(field, err.Error())
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, oauth2.NewConfigurationError(field, fmt.Sprintf("%q is not an absolute URL", raw))
	}
	return u, nil
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	out := *u
	if u.User != nil {
		user := *u.User
		out.User = &user
	}
	return &out
}
