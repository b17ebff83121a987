package client_test

import (
	"net/url"
	"testing"

	"github.com/jrsteele09/go-oauth-client/client"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/stretchr/testify/require"
)

func TestClient_AuthorizeURL(t *testing.T) {
	state := oauth2.StateFromString("xyz")

	t.Run("full configuration", func(t *testing.T) {
		c := newTestClient(t, client.WithRedirectURL(testRedirect), client.WithScopes("openid", "email"))
		require.Equal(t,
			"https://auth.example.com/authorize?response_type=code&client_id=abc&redirect_uri=https%3A%2F%2Fapp.example.com%2Fcb&scope=openid+email&state=xyz",
			c.AuthorizeURL(state))
	})

	t.Run("omits redirect_uri and scope when unset", func(t *testing.T) {
		c := newTestClient(t)
		require.Equal(t,
			"https://auth.example.com/authorize?response_type=code&client_id=abc&state=xyz",
			c.AuthorizeURL(state))
	})

	t.Run("implicit", func(t *testing.T) {
		c := newTestClient(t)
		u, err := url.Parse(c.AuthorizeURLImplicit(state))
		require.NoError(t, err)
		require.Equal(t, "token", u.Query().Get("response_type"))
		require.Equal(t, "xyz", u.Query().Get("state"))
	})

	t.Run("keeps existing query and appends extras in order", func(t *testing.T) {
		c, err := client.New(testClientID, "https://auth.example.com/authorize?tenant=t1", testTokenURL)
		require.NoError(t, err)
		got := c.AuthorizeURL(state,
			oauth2.Param{Key: "prompt", Value: "consent"},
			oauth2.Param{Key: "login_hint", Value: "a b@example.com"},
		)
		require.Equal(t,
			"https://auth.example.com/authorize?tenant=t1&response_type=code&client_id=abc&state=xyz&prompt=consent&login_hint=a+b%40example.com",
			got)
	})

	t.Run("state round trip", func(t *testing.T) {
		c := newTestClient(t)
		s := oauth2.MustNewState()
		u, err := url.Parse(c.AuthorizeURL(s))
		require.NoError(t, err)
		require.NoError(t, s.Verify(u.Query().Get("state")))
	})
}
