package oauth2

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow.
	// Used in: Authorization Code Flow (recommended for server-side and native clients)
	// Returns an authorization code that must be exchanged for tokens at the token endpoint.
	// Example: /oauth/authorize?response_type=code&client_id=...
	CodeResponseType ResponseType = "code"

	// TokenResponseType indicates the implicit flow.
	// Used in: Implicit Flow (deprecated by OAuth 2.1, still offered by some providers)
	// Returns the access token directly in the redirect URI fragment.
	// Example: /oauth/authorize?response_type=token&client_id=...
	TokenResponseType ResponseType = "token"
)

// CodeMethodType represents the PKCE (Proof Key for Code Exchange) challenge method.
// Used to prevent authorization code interception attacks (especially for public clients).
type CodeMethodType string

const (
	// CodeMethodTypeS256 indicates SHA-256 hashing is used for the code challenge.
	// Client sends: code_challenge = BASE64URL(SHA256(code_verifier))
	// Server validates: SHA256(provided code_verifier) == stored code_challenge
	CodeMethodTypeS256 CodeMethodType = "S256"

	// CodeMethodTypePlain means no hashing, the code_verifier is sent as the challenge.
	// Client sends: code_challenge = code_verifier (plaintext)
	// Only use when the client cannot compute SHA-256.
	CodeMethodTypePlain CodeMethodType = "plain"
)

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
// Determines what credentials are required to obtain tokens.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Used in: Authorization Code Flow
	// Token request includes: code, redirect_uri (if used at the authorization step)
	AuthorizationCodeGrant GrantType = "authorization_code"

	// PasswordGrant trades the resource owner's username and password for tokens.
	// Used in: Resource Owner Password Credentials (legacy / first-party clients only)
	// Token request includes: username, password, scope
	PasswordGrant GrantType = "password"

	// ClientCredentialsGrant allows machine-to-machine authentication.
	// Used in: Backend service authentication (no user context)
	// Token request includes: scope; the client authenticates itself
	// Returns: access_token (usually no refresh_token)
	ClientCredentialsGrant GrantType = "client_credentials"

	// RefreshTokenGrant exchanges a refresh token for new tokens.
	// Used in: Token refresh flow (new access token without re-authenticating the user)
	// Token request includes: refresh_token, scope (optional, must not widen the original grant)
	RefreshTokenGrant GrantType = "refresh_token"
)

// AuthType selects how the client authenticates itself to the token endpoint.
// RFC 6749 section 2.3.1 permits either HTTP Basic or request body parameters;
// servers differ in which they accept, so the choice is left to configuration.
type AuthType int

const (
	// AuthTypeBasic sends the client_id and client_secret using the HTTP Basic
	// scheme, each form-url-encoded first as required by RFC 6749 section 2.3.1.
	// This is the default. Clients without a secret fall back to sending
	// client_id in the body.
	AuthTypeBasic AuthType = iota

	// AuthTypeRequestBody sends client_id and client_secret as form parameters
	// ("client_secret_post").
	AuthTypeRequestBody

	// AuthTypeClientSecretJWT authenticates with an HMAC signed JWT assertion
	// keyed by the client secret (RFC 7523, "client_secret_jwt").
	AuthTypeClientSecretJWT

	// AuthTypePrivateKeyJWT authenticates with a JWT assertion signed by a
	// private key registered with the server (RFC 7523, "private_key_jwt").
	AuthTypePrivateKeyJWT
)

// String returns the token_endpoint_auth_method name used in discovery documents.
func (a AuthType) String() string {
	switch a {
	case AuthTypeBasic:
		return "client_secret_basic"
	case AuthTypeRequestBody:
		return "client_secret_post"
	case AuthTypeClientSecretJWT:
		return "client_secret_jwt"
	case AuthTypePrivateKeyJWT:
		return "private_key_jwt"
	}
	return "unknown"
}

// ParseAuthType maps a token_endpoint_auth_method name to an AuthType.
func ParseAuthType(method string) (AuthType, bool) {
	switch method {
	case "client_secret_basic", "basic", "":
		return AuthTypeBasic, true
	case "client_secret_post", "body", "request_body":
		return AuthTypeRequestBody, true
	case "client_secret_jwt":
		return AuthTypeClientSecretJWT, true
	case "private_key_jwt":
		return AuthTypePrivateKeyJWT, true
	}
	return AuthTypeBasic, false
}
