package oauth2

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	xoauth2 "golang.org/x/oauth2"

	"github.com/pkg/errors"
)

// Token is the capability every token shape decoded from a token endpoint
// response must provide. StandardToken covers the RFC 6749 section 5.1 fields;
// providers that return extra members are served by a struct that embeds
// StandardToken and adds its own json-tagged fields.
//
// Decoding uses encoding/json, so implementations must be pointers to structs
// (or implement json.Unmarshaler).
type Token interface {
	GetAccessToken() AccessToken
	GetTokenType() TokenType
	GetExpiresIn() (time.Duration, bool)
	GetRefreshToken() (RefreshToken, bool)
	GetScopes() []string
}

// receiptRecorder is implemented by tokens that want to know when their
// response arrived, so that expires_in can be turned into an absolute time.
type receiptRecorder interface {
	SetReceivedAt(at time.Time)
}

// RecordReceipt stamps tok with the response receipt time when supported.
func RecordReceipt(tok Token, at time.Time) {
	if r, ok := tok.(receiptRecorder); ok {
		r.SetReceivedAt(at)
	}
}

// StandardToken represents the response from an OAuth2 token request.
// This is the standard token endpoint response format as defined in RFC 6749.
// Members it does not know about are ignored.
type StandardToken struct {
	// AccessToken is the credential used to access protected resources.
	// Example: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."
	// Usage: Include in Authorization header: "Bearer <access_token>"
	// Required: Yes, a response without it is rejected
	AccessToken AccessToken `json:"access_token"`

	// TokenType indicates how to use the access token.
	// Example: "bearer" (matched case-insensitively, stored lowercase)
	// Note: Expected to be "bearer" but other values are kept as sent
	TokenType TokenType `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Example: 3600
	// Usage: Counted from the moment the response was received (see ReceivedAt)
	// Interop: Numeric strings such as "3600" are accepted
	ExpiresIn *Seconds `json:"expires_in,omitempty"`

	// RefreshToken is used to obtain new access tokens with the refresh_token grant.
	// Only present: When the server issued one (often only with offline_access)
	RefreshToken *RefreshToken `json:"refresh_token,omitempty"`

	// Scope indicates the access token's granted permissions.
	// Example: "openid profile email"
	// Note: May be less than requested; absent means identical to the request
	Scope SpaceDelimited `json:"scope,omitempty"`

	// ReceivedAt is when the response was received. Set by the executing
	// request, never read from or written to JSON.
	ReceivedAt time.Time `json:"-"`
}

var (
	_ Token           = StandardToken{}
	_ receiptRecorder = (*StandardToken)(nil)
)

func (t StandardToken) GetAccessToken() AccessToken { return t.AccessToken }

func (t StandardToken) GetTokenType() TokenType { return t.TokenType }

// GetExpiresIn returns the token lifetime, or false if the server did not send one.
func (t StandardToken) GetExpiresIn() (time.Duration, bool) {
	if t.ExpiresIn == nil {
		return 0, false
	}
	return t.ExpiresIn.Duration(), true
}

func (t StandardToken) GetRefreshToken() (RefreshToken, bool) {
	if t.RefreshToken == nil {
		return "", false
	}
	return *t.RefreshToken, true
}

func (t StandardToken) GetScopes() []string { return t.Scope }

func (t *StandardToken) SetReceivedAt(at time.Time) { t.ReceivedAt = at }

// Expiry returns the absolute expiry time, or the zero time when the lifetime
// or the receipt time is unknown.
func (t StandardToken) Expiry() time.Time {
	d, ok := t.GetExpiresIn()
	if !ok || t.ReceivedAt.IsZero() {
		return time.Time{}
	}
	return t.ReceivedAt.Add(d)
}

// OAuth2Token converts the token to a golang.org/x/oauth2 token so it can be
// used with oauth2.NewClient and friends.
func (t StandardToken) OAuth2Token() *xoauth2.Token {
	tok := &xoauth2.Token{
		AccessToken: t.AccessToken.Secret(),
		TokenType:   string(t.TokenType),
		Expiry:      t.Expiry(),
	}
	if d, ok := t.GetExpiresIn(); ok {
		tok.ExpiresIn = int64(d / time.Second)
	}
	if rt, ok := t.GetRefreshToken(); ok {
		tok.RefreshToken = rt.Secret()
	}
	if len(t.Scope) > 0 {
		tok = tok.WithExtra(map[string]any{"scope": strings.Join(t.Scope, " ")})
	}
	return tok
}

// TokenType is the token_type member of a token response.
type TokenType string

const (
	TokenTypeBearer TokenType = "bearer"
	TokenTypeMAC    TokenType = "mac"
)

// UnmarshalJSON lower-cases the value so "Bearer" and "bearer" compare equal.
func (t *TokenType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "token_type must be a string")
	}
	*t = TokenType(strings.ToLower(s))
	return nil
}

// IsBearer reports whether the token is a bearer token.
func (t TokenType) IsBearer() bool { return t == TokenTypeBearer }

// Seconds is a non-negative duration expressed in whole seconds.
// It decodes from a JSON number or from a string holding a number, since a
// number of servers quote expires_in.
type Seconds int64

// maxSeconds is the largest value that still fits a time.Duration.
const maxSeconds = math.MaxInt64 / int64(time.Second)

func (s *Seconds) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(str))
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// Accept integral floats such as 3600.0.
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil || math.Abs(f) > float64(maxSeconds) || f != math.Trunc(f) {
			return errors.Errorf("expected a whole number of seconds, got %s", data)
		}
		n = int64(f)
	}
	if n < 0 {
		return errors.Errorf("expected a non-negative number of seconds, got %d", n)
	}
	if n > maxSeconds {
		return errors.Errorf("%d seconds is out of range", n)
	}
	*s = Seconds(n)
	return nil
}

// Duration converts s to a time.Duration, saturating at the largest
// representable Duration.
func (s Seconds) Duration() time.Duration {
	if int64(s) > maxSeconds {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(s) * time.Second
}
