package oauth2

const redacted = "[redacted]"

// ClientSecret is the credential issued to a confidential client.
// Printing it with fmt or a logger yields a redacted placeholder; call Secret
// to obtain the raw value when it has to go on the wire.
type ClientSecret string

// Secret returns the raw secret value.
func (s ClientSecret) Secret() string { return string(s) }

func (s ClientSecret) String() string   { return "ClientSecret(" + redacted + ")" }
func (s ClientSecret) GoString() string { return s.String() }

// AccessToken is the bearer credential returned by the token endpoint.
type AccessToken string

// Secret returns the raw token value.
func (t AccessToken) Secret() string { return string(t) }

func (t AccessToken) String() string   { return "AccessToken(" + redacted + ")" }
func (t AccessToken) GoString() string { return t.String() }

// RefreshToken is the long-lived credential used with the refresh_token grant.
type RefreshToken string

// Secret returns the raw token value.
func (t RefreshToken) Secret() string { return string(t) }

func (t RefreshToken) String() string   { return "RefreshToken(" + redacted + ")" }
func (t RefreshToken) GoString() string { return t.String() }

// AuthorizationCode is the single-use code delivered to the redirect URI.
type AuthorizationCode string

// Secret returns the raw code.
func (c AuthorizationCode) Secret() string { return string(c) }

func (c AuthorizationCode) String() string   { return "AuthorizationCode(" + redacted + ")" }
func (c AuthorizationCode) GoString() string { return c.String() }

// Password is a resource owner password for the password grant.
type Password string

// Secret returns the raw password.
func (p Password) Secret() string { return string(p) }

func (p Password) String() string   { return "Password(" + redacted + ")" }
func (p Password) GoString() string { return p.String() }
