package config

import "strings"

const (
	clientIDVar     = "OAUTH_CLIENT_ID"
	clientSecretVar = "OAUTH_CLIENT_SECRET"
	authURLVar      = "OAUTH_AUTH_URL"
	tokenURLVar     = "OAUTH_TOKEN_URL"
	redirectURLVar  = "OAUTH_REDIRECT_URL"
	issuerURLVar    = "OAUTH_ISSUER_URL"
	scopesVar       = "OAUTH_SCOPES"
	authTypeVar     = "OAUTH_AUTH_TYPE"
	privateKeyVar   = "OAUTH_PRIVATE_KEY_FILE"
	keyIDVar        = "OAUTH_KEY_ID"
)

// OAuthConfig describes the client registration used by the CLI.
// Either an issuer (for discovery) or both endpoint URLs must be set.
type OAuthConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetAuthURL() string
	GetTokenURL() string
	GetRedirectURL() string
	GetIssuerURL() string
	GetScopes() []string
	GetAuthType() string
	GetPrivateKeyFile() string
	GetKeyID() string
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetClientID() string {
	return GetEnv(clientIDVar, "")
}

func (OAuth) GetClientSecret() string {
	return GetEnv(clientSecretVar, "")
}

func (OAuth) GetAuthURL() string {
	return GetEnv(authURLVar, "")
}

func (OAuth) GetTokenURL() string {
	return GetEnv(tokenURLVar, "")
}

func (OAuth) GetRedirectURL() string {
	return GetEnv(redirectURLVar, "")
}

func (OAuth) GetIssuerURL() string {
	return GetEnv(issuerURLVar, "")
}

// GetScopes splits OAUTH_SCOPES on commas and whitespace.
func (OAuth) GetScopes() []string {
	return strings.FieldsFunc(GetEnv(scopesVar, ""), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// GetAuthType returns the token_endpoint_auth_method name, client_secret_basic by default.
func (OAuth) GetAuthType() string {
	return GetEnv(authTypeVar, "client_secret_basic")
}

// GetPrivateKeyFile is the PEM file holding the private_key_jwt signing key.
func (OAuth) GetPrivateKeyFile() string {
	return GetEnv(privateKeyVar, "")
}

func (OAuth) GetKeyID() string {
	return GetEnv(keyIDVar, "")
}
