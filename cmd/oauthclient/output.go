package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/internal/utils"
	"github.com/jrsteele09/go-oauth-client/oauth2"
)

type tokenOutput struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type,omitempty"`
	ExpiresIn    *int64     `json:"expires_in,omitempty"`
	Expiry       *time.Time `json:"expiry,omitempty"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	Scope        string     `json:"scope,omitempty"`
}

func printToken(w io.Writer, tok *oauth2.StandardToken, reveal bool) error {
	out := tokenOutput{
		AccessToken: tok.GetAccessToken().String(),
		TokenType:   string(tok.GetTokenType()),
		Expiry:      utils.PtrOrNil(tok.Expiry()),
		Scope:       oauth2.Scopes(tok.GetScopes()).String(),
	}
	if reveal {
		out.AccessToken = tok.GetAccessToken().Secret()
	}
	if d, ok := tok.GetExpiresIn(); ok {
		out.ExpiresIn = utils.Ptr(int64(d / time.Second))
	}
	if rt, ok := tok.GetRefreshToken(); ok {
		out.RefreshToken = rt.String()
		if reveal {
			out.RefreshToken = rt.Secret()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// describeError adds the server's error code to the message so it is not
// lost in the generic wrapper text.
func describeError(err error) error {
	var serverErr *oauth2.ServerError
	if errors.As(err, &serverErr) {
		return errors.Wrapf(err, "authorization server rejected the request (HTTP %d, %s)", serverErr.Status, serverErr.Code())
	}
	var formatErr *oauth2.ResponseFormatError
	if errors.As(err, &formatErr) {
		return errors.Wrapf(err, "unreadable token endpoint response (HTTP %d, %d bytes)", formatErr.Status, len(formatErr.Body))
	}
	return err
}
