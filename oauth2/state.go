package oauth2

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"github.com/pkg/errors"
)

// stateLength is the number of random bytes in a generated state (128 bits).
const stateLength = 16

// State is the opaque CSRF nonce sent with an authorization request and
// echoed back by the authorization server on the redirect.
//
// A State is generated once per authorization attempt and compared exactly once
// against the echoed value. A mismatch must abort the flow: the code or token
// on that redirect must not be used.
type State struct {
	value string
}

// NewState generates a random state encoded as unpadded base64url.
func NewState() (State, error) {
	b := make([]byte, stateLength)
	if _, err := rand.Read(b); err != nil {
		return State{}, errors.Wrap(err, "[NewState] failed to generate random bytes")
	}
	return State{value: base64.RawURLEncoding.EncodeToString(b)}, nil
}

// MustNewState is like NewState but panics if the system random source fails.
func MustNewState() State {
	s, err := NewState()
	if err != nil {
		panic(err)
	}
	return s
}

// StateFromString wraps a previously generated state value, e.g. one restored
// from the caller's session store.
func StateFromString(s string) State {
	return State{value: s}
}

// Secret returns the raw state value as sent on the wire.
func (s State) Secret() string { return s.value }

// IsZero reports whether the state is empty.
func (s State) IsZero() bool { return s.value == "" }

func (s State) String() string   { return "State(" + redacted + ")" }
func (s State) GoString() string { return s.String() }

// Equal compares two states in constant time.
func (s State) Equal(other State) bool {
	return subtle.ConstantTimeCompare([]byte(s.value), []byte(other.value)) == 1
}

// Verify compares the state echoed back by the authorization server with s.
// It returns ErrStateMismatch when they differ or when either side is empty.
func (s State) Verify(echoed string) error {
	if s.value == "" || echoed == "" || !s.Equal(StateFromString(echoed)) {
		return ErrStateMismatch
	}
	return nil
}
