package keys_test

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-client/client"
	"github.com/jrsteele09/go-oauth-client/keys"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/stretchr/testify/require"
)

func TestRSAKeyPair(t *testing.T) {
	kp, err := keys.GenerateRSA("k1", 1024)
	require.NoError(t, err)
	require.Equal(t, 2048, kp.PrivateKey.(*rsa.PrivateKey).N.BitLen())

	pemData, err := kp.PrivateKeyPEM()
	require.NoError(t, err)

	loaded, err := keys.LoadPEM("k1", pemData)
	require.NoError(t, err)
	require.Equal(t, jwt.SigningMethodRS256, loaded.Method)
	require.True(t, kp.PrivateKey.(*rsa.PrivateKey).Equal(loaded.PrivateKey))

	jwk, err := loaded.JWK()
	require.NoError(t, err)
	require.Equal(t, "RSA", jwk.Kty)
	require.Equal(t, "RS256", jwk.Alg)
	require.Equal(t, "k1", jwk.Kid)
	require.Equal(t, "AQAB", jwk.E)
}

func TestECKeyPair(t *testing.T) {
	kp, err := keys.GenerateEC("k2")
	require.NoError(t, err)

	pemData, err := kp.PrivateKeyPEM()
	require.NoError(t, err)

	loaded, err := keys.LoadPEM("k2", pemData)
	require.NoError(t, err)
	require.Equal(t, jwt.SigningMethodES256, loaded.Method)
	require.True(t, kp.PrivateKey.(*ecdsa.PrivateKey).Equal(loaded.PrivateKey))

	jwk, err := loaded.JWK()
	require.NoError(t, err)
	require.Equal(t, "EC", jwk.Kty)
	require.Equal(t, "P-256", jwk.Crv)
	require.Len(t, jwk.X, 43)
	require.Len(t, jwk.Y, 43)
}

func TestLoadPEM_Invalid(t *testing.T) {
	_, err := keys.LoadPEM("k", []byte("not a key"))
	require.Error(t, err)
}

func TestKeyPair_SignsClientAssertions(t *testing.T) {
	kp, err := keys.GenerateEC("k3")
	require.NoError(t, err)

	c, err := client.New("abc", "https://auth.example.com/authorize", "https://auth.example.com/token",
		client.WithClientAssertion(kp.AssertionConfig()))
	require.NoError(t, err)
	require.Equal(t, oauth2.AuthTypePrivateKeyJWT, c.AuthType())

	req, err := c.ExchangeClientCredentials().Build()
	require.NoError(t, err)
	require.Contains(t, string(req.Body), "client_assertion=")
}
