package oauth2_test

import (
	"encoding/json"
	"testing"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/stretchr/testify/require"
)

func TestScopes_Add(t *testing.T) {
	t.Run("keeps insertion order and drops duplicates", func(t *testing.T) {
		s := oauth2.NewScopes("openid", "profile", "openid")
		require.Equal(t, oauth2.Scopes{"openid", "profile"}, s)
		require.Equal(t, "openid profile", s.String())
	})

	t.Run("splits whitespace and ignores empty", func(t *testing.T) {
		s := oauth2.NewScopes("read  write", "", " ")
		require.Equal(t, oauth2.Scopes{"read", "write"}, s)
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		base := make(oauth2.Scopes, 1, 4)
		base[0] = "a"
		grown := base.Add("b")
		require.Equal(t, oauth2.Scopes{"a"}, base)
		require.Equal(t, oauth2.Scopes{"a", "b"}, grown)
		require.Equal(t, oauth2.Scopes{"a", "c"}, base.Add("c"))
		require.Equal(t, oauth2.Scopes{"a", "b"}, grown)
	})

	t.Run("empty", func(t *testing.T) {
		var s oauth2.Scopes
		require.True(t, s.IsEmpty())
		require.False(t, s.Contains("openid"))
		require.Equal(t, "", s.String())
	})
}

func TestSpaceDelimited_JSON(t *testing.T) {
	var s oauth2.SpaceDelimited
	require.NoError(t, json.Unmarshal([]byte(`"a b"`), &s))
	require.Equal(t, oauth2.SpaceDelimited{"a", "b"}, s)

	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	require.Nil(t, s)

	require.Error(t, json.Unmarshal([]byte(`42`), &s))

	out, err := json.Marshal(oauth2.SpaceDelimited{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, `"a b"`, string(out))
}

func TestEncodeParams(t *testing.T) {
	params := []oauth2.Param{
		{Key: "scope", Value: "read write"},
		{Key: "redirect_uri", Value: "https://app.example.com/cb?x=1"},
		{Key: "a", Value: ""},
	}
	require.Equal(t, "scope=read+write&redirect_uri=https%3A%2F%2Fapp.example.com%2Fcb%3Fx%3D1&a=", oauth2.EncodeParams(params))

	require.Equal(t, "x=1&a=", oauth2.AppendQuery("x=1", params[2:]))
	require.Equal(t, "x=1", oauth2.AppendQuery("x=1", nil))
	require.Equal(t, "a=", oauth2.AppendQuery("", params[2:]))
}

func TestParseAuthType(t *testing.T) {
	for _, authType := range []oauth2.AuthType{
		oauth2.AuthTypeBasic,
		oauth2.AuthTypeRequestBody,
		oauth2.AuthTypeClientSecretJWT,
		oauth2.AuthTypePrivateKeyJWT,
	} {
		parsed, ok := oauth2.ParseAuthType(authType.String())
		require.True(t, ok)
		require.Equal(t, authType, parsed)
	}

	_, ok := oauth2.ParseAuthType("tls_client_auth")
	require.False(t, ok)
}
