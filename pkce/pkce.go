// Package pkce generates RFC 7636 Proof Key for Code Exchange values.
//
// The protocol engine has no first-class PKCE support: the values produced
// here are attached as ordinary extra parameters, the challenge to the
// authorization URL and the verifier to the code exchange. Keeping the
// verifier between the two steps is the caller's job.
package pkce

import (
	pkceverifier "github.com/jimlambrt/go-oauth-pkce-code-verifier"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
)

const (
	// MinLength and MaxLength bound the verifier entropy length accepted by NewVerifierWithLength.
	MinLength = pkceverifier.MinLength
	MaxLength = pkceverifier.MaxLength
)

// Verifier is a PKCE code verifier.
type Verifier struct {
	cv *pkceverifier.CodeVerifier
}

// NewVerifier creates a verifier with the default length.
func NewVerifier() (*Verifier, error) {
	return NewVerifierWithLength(pkceverifier.DefaultLength)
}

// NewVerifierWithLength creates a verifier from length random characters,
// between MinLength and MaxLength.
func NewVerifierWithLength(length int) (*Verifier, error) {
	cv, err := pkceverifier.CreateCodeVerifierWithLength(length)
	if err != nil {
		return nil, errors.Wrap(err, "[pkce.NewVerifierWithLength] failed to create code verifier")
	}
	return &Verifier{cv: cv}, nil
}

// FromString restores a verifier previously obtained from Secret.
func FromString(value string) *Verifier {
	return &Verifier{cv: &pkceverifier.CodeVerifier{Value: value}}
}

// Secret returns the raw code_verifier.
func (v *Verifier) Secret() string { return v.cv.Value }

func (v *Verifier) String() string { return "Verifier([redacted])" }

// Challenge derives the code_challenge for method.
func (v *Verifier) Challenge(method oauth2.CodeMethodType) (string, error) {
	switch method {
	case oauth2.CodeMethodTypeS256:
		return v.cv.CodeChallengeS256(), nil
	case oauth2.CodeMethodTypePlain:
		return v.cv.CodeChallengePlain(), nil
	}
	return "", errors.Errorf("[Verifier.Challenge] unsupported code challenge method %q", method)
}

// AuthorizeParams returns the code_challenge_method and code_challenge
// parameters for the authorization URL.
func (v *Verifier) AuthorizeParams(method oauth2.CodeMethodType) ([]oauth2.Param, error) {
	challenge, err := v.Challenge(method)
	if err != nil {
		return nil, err
	}
	return []oauth2.Param{
		{Key: "code_challenge_method", Value: string(method)},
		{Key: "code_challenge", Value: challenge},
	}, nil
}

// TokenParam returns the code_verifier parameter for the code exchange.
func (v *Verifier) TokenParam() oauth2.Param {
	return oauth2.Param{Key: "code_verifier", Value: v.cv.Value}
}
