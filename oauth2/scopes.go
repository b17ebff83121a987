package oauth2

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/jrsteele09/go-oauth-client/internal/utils"
	"github.com/pkg/errors"
)

// Scopes is an insertion-ordered set of scope tokens.
// The zero value is an empty set.
type Scopes []string

// NewScopes builds a set from the given scopes, see Add.
func NewScopes(scopes ...string) Scopes {
	return Scopes(nil).Add(scopes...)
}

// Add returns the set with each scope appended unless already present.
// An argument containing whitespace is split into its individual tokens and
// empty strings are ignored. The receiver is never modified in place.
func (s Scopes) Add(scopes ...string) Scopes {
	out := slices.Clip(s)
	for _, raw := range scopes {
		for _, scope := range strings.Fields(raw) {
			if !out.Contains(scope) {
				out = append(out, scope)
			}
		}
	}
	return out
}

// Contains reports whether scope is in the set.
func (s Scopes) Contains(scope string) bool {
	return slices.Contains(s, scope)
}

// IsEmpty reports whether the set holds no scopes.
func (s Scopes) IsEmpty() bool { return len(s) == 0 }

// String returns the space-delimited wire form.
func (s Scopes) String() string {
	return strings.Join(s, " ")
}

// SpaceDelimited is the "scope" member of a token response.
// RFC 6749 sends it as a space-delimited string; some providers send a JSON
// array instead, and both are accepted.
type SpaceDelimited []string

func (s *SpaceDelimited) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = strings.Fields(str)
		return nil
	}

	var arr []any
	if err := json.Unmarshal(data, &arr); err != nil {
		return errors.Errorf("scope must be a string or an array of strings, got %s", data)
	}
	values, ok := utils.ToStringSlice(arr)
	if !ok {
		return errors.Errorf("scope array must only contain strings, got %s", data)
	}
	*s = values
	return nil
}

func (s SpaceDelimited) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Join(s, " "))
}
