package oauth2

import "strings"

// ErrorCode is the "error" member of an RFC 6749 section 5.2 error response.
// Codes not listed below are preserved verbatim.
type ErrorCode string

const (
	// ErrorCodeInvalidRequest: missing or duplicated parameter, unsupported value, malformed request.
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	// ErrorCodeInvalidClient: client authentication failed.
	ErrorCodeInvalidClient ErrorCode = "invalid_client"
	// ErrorCodeInvalidGrant: code, refresh token or credentials are invalid, expired or revoked.
	ErrorCodeInvalidGrant ErrorCode = "invalid_grant"
	// ErrorCodeUnauthorizedClient: the client may not use this grant type.
	ErrorCodeUnauthorizedClient ErrorCode = "unauthorized_client"
	// ErrorCodeUnsupportedGrantType: the server does not support the grant type.
	ErrorCodeUnsupportedGrantType ErrorCode = "unsupported_grant_type"
	// ErrorCodeInvalidScope: the requested scope is invalid, unknown or exceeds the original grant.
	ErrorCodeInvalidScope ErrorCode = "invalid_scope"
)

// IsKnown reports whether c is one of the RFC 6749 section 5.2 codes.
func (c ErrorCode) IsKnown() bool {
	switch c {
	case ErrorCodeInvalidRequest, ErrorCodeInvalidClient, ErrorCodeInvalidGrant,
		ErrorCodeUnauthorizedClient, ErrorCodeUnsupportedGrantType, ErrorCodeInvalidScope:
		return true
	}
	return false
}

// ErrorResponse is the JSON body a token endpoint returns on failure.
type ErrorResponse struct {
	// Error is the error code, always present.
	// Example: "invalid_grant"
	Error ErrorCode `json:"error"`

	// ErrorDescription is human-readable text for the developer, not the end user.
	// Example: "authorization code expired"
	ErrorDescription string `json:"error_description,omitempty"`

	// ErrorURI points to a page with more information about the error.
	ErrorURI string `json:"error_uri,omitempty"`
}

// String formats the response as "code: description / See uri".
func (r ErrorResponse) String() string {
	var b strings.Builder
	b.WriteString(string(r.Error))
	if r.ErrorDescription != "" {
		b.WriteString(": ")
		b.WriteString(r.ErrorDescription)
	}
	if r.ErrorURI != "" {
		b.WriteString(" / See ")
		b.WriteString(r.ErrorURI)
	}
	return b.String()
}
