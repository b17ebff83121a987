package client

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-oauth-client/oauth2"
)

const (
	clientAssertionType = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"

	// DefaultAssertionTTL is the lifetime of a client assertion when AssertionConfig.TTL is zero.
	DefaultAssertionTTL = 5 * time.Minute
)

// AssertionConfig configures RFC 7523 JWT client assertions.
type AssertionConfig struct {
	// SigningMethod signs the assertion.
	// Default: HS256 for client_secret_jwt, RS256 for private_key_jwt
	SigningMethod jwt.SigningMethod

	// Key is the private key for private_key_jwt (*rsa.PrivateKey, *ecdsa.PrivateKey or ed25519.PrivateKey).
	// Ignored for client_secret_jwt, which is keyed by the client secret.
	Key any

	// KeyID is placed in the "kid" header when set.
	KeyID string

	// Audience overrides the "aud" claim, which defaults to the token endpoint URL.
	Audience string

	// TTL is how long the assertion is valid. Default: DefaultAssertionTTL
	TTL time.Duration
}

// WithClientAssertion selects private_key_jwt authentication with cfg.
// Use WithAuthType(oauth2.AuthTypeClientSecretJWT) together with this option
// to tune a client_secret_jwt assertion instead.
func WithClientAssertion(cfg AssertionConfig) Option {
	return func(c *Client) error {
		if cfg.Key == nil && c.authType != oauth2.AuthTypeClientSecretJWT {
			return oauth2.NewConfigurationError("client_assertion", "a signing key is required for private_key_jwt")
		}
		c.assertion = &cfg
		if c.authType != oauth2.AuthTypeClientSecretJWT {
			c.authType = oauth2.AuthTypePrivateKeyJWT
		}
		return nil
	}
}

// authenticate applies the configured client authentication to a token
// request, setting header fields and returning the body parameters to send.
func (c *Client) authenticate(header http.Header) ([]oauth2.Param, error) {
	switch c.authType {
	case oauth2.AuthTypeBasic:
		if c.clientSecret == nil {
			// Public client: identify in the body (RFC 6749 section 4.1.3).
			return []oauth2.Param{{Key: "client_id", Value: c.clientID}}, nil
		}
		// RFC 6749 section 2.3.1 requires form-url-encoding the id and secret
		// before they are used as Basic credentials.
		header.Set("Authorization", "Basic "+basicCredentials(
			url.QueryEscape(c.clientID),
			url.QueryEscape(c.clientSecret.Secret()),
		))
		return nil, nil

	case oauth2.AuthTypeRequestBody:
		params := []oauth2.Param{{Key: "client_id", Value: c.clientID}}
		if c.clientSecret != nil {
			params = append(params, oauth2.Param{Key: "client_secret", Value: c.clientSecret.Secret()})
		}
		return params, nil

	case oauth2.AuthTypeClientSecretJWT, oauth2.AuthTypePrivateKeyJWT:
		assertion, err := c.clientAssertion()
		if err != nil {
			return nil, err
		}
		return []oauth2.Param{
			{Key: "client_id", Value: c.clientID},
			{Key: "client_assertion_type", Value: clientAssertionType},
			{Key: "client_assertion", Value: assertion},
		}, nil
	}
	return nil, oauth2.NewConfigurationError("auth_type", "unsupported client authentication method "+c.authType.String())
}

// reservedAuthParams returns the body parameters owned by the configured
// authentication method. Extra parameters may not use them, whether or not
// the method itself sends them in the body.
func (c *Client) reservedAuthParams() []string {
	switch c.authType {
	case oauth2.AuthTypeBasic, oauth2.AuthTypeRequestBody:
		return []string{"client_id", "client_secret"}
	}
	return []string{"client_id", "client_assertion_type", "client_assertion"}
}

func (c *Client) clientAssertion() (string, error) {
	cfg := AssertionConfig{}
	if c.assertion != nil {
		cfg = *c.assertion
	}

	var key any
	switch c.authType {
	case oauth2.AuthTypeClientSecretJWT:
		if c.clientSecret == nil || c.clientSecret.Secret() == "" {
			return "", oauth2.NewConfigurationError("client_secret", "required for client_secret_jwt")
		}
		if cfg.SigningMethod == nil {
			cfg.SigningMethod = jwt.SigningMethodHS256
		}
		if _, ok := cfg.SigningMethod.(*jwt.SigningMethodHMAC); !ok {
			return "", oauth2.NewConfigurationError("client_assertion", "client_secret_jwt requires an HMAC signing method")
		}
		key = []byte(c.clientSecret.Secret())
	default:
		if cfg.Key == nil {
			return "", oauth2.NewConfigurationError("client_assertion", "a signing key is required for private_key_jwt")
		}
		if cfg.SigningMethod == nil {
			cfg.SigningMethod = jwt.SigningMethodRS256
		}
		if _, ok := cfg.SigningMethod.(*jwt.SigningMethodHMAC); ok {
			return "", oauth2.NewConfigurationError("client_assertion", "private_key_jwt requires an asymmetric signing method")
		}
		key = cfg.Key
	}

	if cfg.TTL <= 0 {
		cfg.TTL = DefaultAssertionTTL
	}
	aud := cfg.Audience
	if aud == "" {
		aud = c.tokenURL.String()
	}

	now := NowTimeFunc()
	claims := jwt.MapClaims{
		"iss": c.clientID,
		"sub": c.clientID,
		"aud": aud,
		"iat": now.Unix(),
		"exp": now.Add(cfg.TTL).Unix(),
		"jti": uuid.New().String(),
	}

	token := jwt.NewWithClaims(cfg.SigningMethod, claims)
	if cfg.KeyID != "" {
		token.Header["kid"] = cfg.KeyID
	}

	signed, err := token.SignedString(key)
	if err != nil {
		return "", oauth2.NewConfigurationError("client_assertion", "failed to sign: "+err.Error())
	}
	return signed, nil
}

func basicCredentials(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
