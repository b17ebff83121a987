package client

import (
	"github.com/jrsteele09/go-oauth-client/oauth2"
)

// AuthorizeURL returns the authorization endpoint URL for the authorization
// code flow (response_type=code). Redirect the user agent to it, then check
// the state echoed on the redirect with state.Verify before exchanging the
// code.
//
// extra parameters (e.g. PKCE code_challenge, prompt, login_hint) are appended
// after the standard ones in the order given. Passing a name the builder
// already emits produces a duplicate parameter whose interpretation is up to
// the server; avoid it.
func (c *Client) AuthorizeURL(state oauth2.State, extra ...oauth2.Param) string {
	return c.authorizeURL(oauth2.CodeResponseType, state, extra)
}

// AuthorizeURLImplicit is AuthorizeURL for the implicit flow
// (response_type=token), where the access token is returned directly in the
// redirect URI fragment.
func (c *Client) AuthorizeURLImplicit(state oauth2.State, extra ...oauth2.Param) string {
	return c.authorizeURL(oauth2.TokenResponseType, state, extra)
}

func (c *Client) authorizeURL(responseType oauth2.ResponseType, state oauth2.State, extra []oauth2.Param) string {
	params := make([]oauth2.Param, 0, 5+len(extra))
	params = append(params,
		oauth2.Param{Key: "response_type", Value: string(responseType)},
		oauth2.Param{Key: "client_id", Value: c.clientID},
	)
	if c.redirectURL != nil {
		params = append(params, oauth2.Param{Key: "redirect_uri", Value: c.redirectURL.String()})
	}
	if !c.scopes.IsEmpty() {
		params = append(params, oauth2.Param{Key: "scope", Value: c.scopes.String()})
	}
	params = append(params, oauth2.Param{Key: "state", Value: state.Secret()})
	params = append(params, extra...)

	u := cloneURL(c.authURL)
	u.RawQuery = oauth2.AppendQuery(u.RawQuery, params)
	return u.String()
}
