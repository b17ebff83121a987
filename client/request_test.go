package client_test

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-client/client"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/stretchr/testify/require"
)

func TestRequest_Build(t *testing.T) {
	t.Run("authorization code", func(t *testing.T) {
		c := newTestClient(t, client.WithRedirectURL(testRedirect), client.WithClientSecret("s3cr3t"))
		req, err := c.ExchangeCode("c0de").Build()
		require.NoError(t, err)

		require.Equal(t, http.MethodPost, req.Method)
		require.Equal(t, testTokenURL, req.URL)
		require.Equal(t, "application/json", req.Header.Get("Accept"))
		require.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
		require.Equal(t, "grant_type=authorization_code&redirect_uri=https%3A%2F%2Fapp.example.com%2Fcb&code=c0de", string(req.Body))
	})

	t.Run("password with scopes", func(t *testing.T) {
		c := newTestClient(t, client.WithScopes("read", "write"), client.WithClientSecret("s3cr3t"))
		req, err := c.ExchangePassword("alice", "pw").Build()
		require.NoError(t, err)

		form := formValues(t, req)
		require.Equal(t, "password", form.Get("grant_type"))
		require.Equal(t, "alice", form.Get("username"))
		require.Equal(t, "pw", form.Get("password"))
		require.Equal(t, "read write", form.Get("scope"))
	})

	t.Run("client credentials sends scope", func(t *testing.T) {
		c := newTestClient(t, client.WithScopes("read"), client.WithClientSecret("s3cr3t"))
		req, err := c.ExchangeClientCredentials().Build()
		require.NoError(t, err)

		form := formValues(t, req)
		require.Equal(t, "client_credentials", form.Get("grant_type"))
		require.Equal(t, "read", form.Get("scope"))
		require.False(t, form.Has("scopes"))
	})

	t.Run("client credentials without scopes", func(t *testing.T) {
		c := newTestClient(t, client.WithClientSecret("s3cr3t"))
		req, err := c.ExchangeClientCredentials().Build()
		require.NoError(t, err)
		require.Equal(t, "grant_type=client_credentials", string(req.Body))
	})

	t.Run("refresh token with narrowed scope", func(t *testing.T) {
		c := newTestClient(t, client.WithClientSecret("s3cr3t"))
		req, err := c.ExchangeRefreshToken("r1", "read").Build()
		require.NoError(t, err)
		require.Equal(t, "grant_type=refresh_token&refresh_token=r1&scope=read", string(req.Body))
	})

	t.Run("extra parameters follow required ones", func(t *testing.T) {
		c := newTestClient(t, client.WithClientSecret("s3cr3t"))
		req, err := c.ExchangeCode("c0de").
			Param("code_verifier", "v1").
			Param("resource", "https://api.example.com").
			Param("code_verifier", "v2").
			Build()
		require.NoError(t, err)
		require.Equal(t, "grant_type=authorization_code&code=c0de&code_verifier=v2&resource=https%3A%2F%2Fapi.example.com", string(req.Body))
	})

	t.Run("empty values are rejected", func(t *testing.T) {
		c := newTestClient(t)
		for name, r := range map[string]*client.Request{
			"code":          c.ExchangeCode(""),
			"username":      c.ExchangePassword("", "pw"),
			"refresh_token": c.ExchangeRefreshToken(""),
		} {
			_, err := r.Build()
			require.ErrorIs(t, err, oauth2.ErrConfiguration, name)
		}
	})
}

func TestRequest_Collisions(t *testing.T) {
	tests := []struct {
		name     string
		authType oauth2.AuthType
		key      string
	}{
		{"grant_type", oauth2.AuthTypeBasic, "grant_type"},
		{"grant parameter", oauth2.AuthTypeBasic, "code"},
		{"redirect_uri", oauth2.AuthTypeBasic, "redirect_uri"},
		{"client_id with basic", oauth2.AuthTypeBasic, "client_id"},
		{"client_secret with basic", oauth2.AuthTypeBasic, "client_secret"},
		{"client_secret in body", oauth2.AuthTypeRequestBody, "client_secret"},
		{"client_id in body", oauth2.AuthTypeRequestBody, "client_id"},
		{"client_assertion", oauth2.AuthTypeClientSecretJWT, "client_assertion"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t,
				client.WithRedirectURL(testRedirect),
				client.WithClientSecret("s3cr3t"),
				client.WithAuthType(tc.authType),
			)
			_, err := c.ExchangeCode("c0de").Param(tc.key, "x").Build()
			require.ErrorIs(t, err, oauth2.ErrConfiguration)

			var cfgErr *oauth2.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			require.Equal(t, tc.key, cfgErr.Field)
		})
	}
}

func TestRequest_ClientAuthentication(t *testing.T) {
	t.Run("basic encodes credentials", func(t *testing.T) {
		c, err := client.New("my client", testAuthURL, testTokenURL, client.WithClientSecret("p@ss:word"))
		require.NoError(t, err)
		req, err := c.ExchangeClientCredentials().Build()
		require.NoError(t, err)

		want := base64.StdEncoding.EncodeToString([]byte("my+client:p%40ss%3Aword"))
		require.Equal(t, "Basic "+want, req.Header.Get("Authorization"))
		require.NotContains(t, string(req.Body), "client_secret")
		require.NotContains(t, string(req.Body), "client_id")
	})

	t.Run("public client sends client_id in body", func(t *testing.T) {
		c := newTestClient(t)
		req, err := c.ExchangeCode("c0de").Build()
		require.NoError(t, err)
		require.Empty(t, req.Header.Get("Authorization"))
		require.Equal(t, testClientID, formValues(t, req).Get("client_id"))
	})

	t.Run("request body", func(t *testing.T) {
		c := newTestClient(t, client.WithClientSecret("s3cr3t"), client.WithAuthType(oauth2.AuthTypeRequestBody))
		req, err := c.ExchangeClientCredentials().Build()
		require.NoError(t, err)
		require.Empty(t, req.Header.Get("Authorization"))
		require.Equal(t, "client_id=abc&client_secret=s3cr3t&grant_type=client_credentials", string(req.Body))
	})

	t.Run("client_secret_jwt", func(t *testing.T) {
		c := newTestClient(t, client.WithClientSecret("s3cr3t"), client.WithAuthType(oauth2.AuthTypeClientSecretJWT))
		req, err := c.ExchangeClientCredentials().Build()
		require.NoError(t, err)

		form := formValues(t, req)
		require.Equal(t, testClientID, form.Get("client_id"))
		require.Equal(t, "urn:ietf:params:oauth:client-assertion-type:jwt-bearer", form.Get("client_assertion_type"))
		require.False(t, form.Has("client_secret"))

		tok, err := jwt.Parse(form.Get("client_assertion"), func(tok *jwt.Token) (any, error) {
			return []byte("s3cr3t"), nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithAudience(testTokenURL), jwt.WithIssuer(testClientID))
		require.NoError(t, err)
		claims, ok := tok.Claims.(jwt.MapClaims)
		require.True(t, ok)
		require.Equal(t, testClientID, claims["sub"])
		require.NotEmpty(t, claims["jti"])
	})

	t.Run("client_secret_jwt without secret", func(t *testing.T) {
		c := newTestClient(t, client.WithAuthType(oauth2.AuthTypeClientSecretJWT))
		_, err := c.ExchangeClientCredentials().Build()
		require.ErrorIs(t, err, oauth2.ErrConfiguration)
	})

	t.Run("private_key_jwt", func(t *testing.T) {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		c := newTestClient(t, client.WithClientAssertion(client.AssertionConfig{
			Key:      key,
			KeyID:    "k1",
			Audience: "https://auth.example.com",
		}))
		require.Equal(t, oauth2.AuthTypePrivateKeyJWT, c.AuthType())

		req, err := c.ExchangeClientCredentials().Build()
		require.NoError(t, err)

		tok, err := jwt.Parse(formValues(t, req).Get("client_assertion"), func(tok *jwt.Token) (any, error) {
			return &key.PublicKey, nil
		}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithAudience("https://auth.example.com"))
		require.NoError(t, err)
		require.Equal(t, "k1", tok.Header["kid"])
	})

	t.Run("private_key_jwt requires a key", func(t *testing.T) {
		_, err := client.New(testClientID, testAuthURL, testTokenURL, client.WithClientAssertion(client.AssertionConfig{}))
		require.ErrorIs(t, err, oauth2.ErrConfiguration)
	})

	t.Run("private_key_jwt rejects hmac", func(t *testing.T) {
		c := newTestClient(t, client.WithClientAssertion(client.AssertionConfig{
			Key:           []byte("k"),
			SigningMethod: jwt.SigningMethodHS256,
		}))
		_, err := c.ExchangeClientCredentials().Build()
		require.ErrorIs(t, err, oauth2.ErrConfiguration)
	})
}
