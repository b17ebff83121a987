package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jrsteele09/go-oauth-client/client"
	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/keys"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/pkce"
	"github.com/spf13/cobra"
)

func newAuthorizeURLCmd(f *clientFlags) *cobra.Command {
	var (
		implicit   bool
		withPKCE   bool
		pkceMethod string
		state      string
	)
	cmd := &cobra.Command{
		Use:   "authorize-url",
		Short: "Print an authorization URL together with the state to verify on return",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.newClient(commandContext(cmd))
			if err != nil {
				return err
			}

			s := oauth2.StateFromString(state)
			if s.IsZero() {
				if s, err = oauth2.NewState(); err != nil {
					return err
				}
			}

			var extra []oauth2.Param
			var verifier *pkce.Verifier
			if withPKCE && !implicit {
				if verifier, err = pkce.NewVerifier(); err != nil {
					return err
				}
				if extra, err = verifier.AuthorizeParams(oauth2.CodeMethodType(pkceMethod)); err != nil {
					return err
				}
			}

			authURL := c.AuthorizeURL(s, extra...)
			if implicit {
				authURL = c.AuthorizeURLImplicit(s, extra...)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, authURL)
			fmt.Fprintf(out, "state=%s\n", s.Secret())
			if verifier != nil {
				fmt.Fprintf(out, "code_verifier=%s\n", verifier.Secret())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&implicit, "implicit", false, "Request response_type=token")
	cmd.Flags().BoolVar(&withPKCE, "pkce", false, "Attach a PKCE code challenge")
	cmd.Flags().StringVar(&pkceMethod, "pkce-method", string(oauth2.CodeMethodTypeS256), "PKCE challenge method: S256|plain")
	cmd.Flags().StringVar(&state, "state", "", "Use this state instead of generating one")
	return cmd
}

func newExchangeCodeCmd(f *clientFlags) *cobra.Command {
	var code, state, expectedState, codeVerifier string
	cmd := &cobra.Command{
		Use:   "exchange-code",
		Short: "Exchange an authorization code for a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if expectedState != "" {
				if err := oauth2.StateFromString(expectedState).Verify(state); err != nil {
					return err
				}
			}
			ctx := commandContext(cmd)
			c, err := f.newClient(ctx)
			if err != nil {
				return err
			}
			req := c.ExchangeCode(oauth2.AuthorizationCode(code))
			if codeVerifier != "" {
				req.Params(pkce.FromString(codeVerifier).TokenParam())
			}
			return executeAndPrint(cmd, req, f.reveal)
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "Authorization code returned to the redirect URI")
	cmd.Flags().StringVar(&state, "state", "", "State returned to the redirect URI")
	cmd.Flags().StringVar(&expectedState, "expected-state", "", "State printed by authorize-url; the exchange is refused on mismatch")
	cmd.Flags().StringVar(&codeVerifier, "code-verifier", "", "PKCE code_verifier printed by authorize-url --pkce")
	return cmd
}

func newPasswordCmd(f *clientFlags) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Request a token with the resource owner password credentials grant",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.newClient(commandContext(cmd))
			if err != nil {
				return err
			}
			return executeAndPrint(cmd, c.ExchangePassword(username, oauth2.Password(password)), f.reveal)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Resource owner username")
	cmd.Flags().StringVar(&password, "password", "", "Resource owner password")
	return cmd
}

func newClientCredentialsCmd(f *clientFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "client-credentials",
		Short: "Request a token with the client credentials grant",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.newClient(commandContext(cmd))
			if err != nil {
				return err
			}
			return executeAndPrint(cmd, c.ExchangeClientCredentials(), f.reveal)
		},
	}
}

func newRefreshCmd(f *clientFlags) *cobra.Command {
	var refreshToken string
	var scopes []string
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange a refresh token for a new access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.newClient(commandContext(cmd))
			if err != nil {
				return err
			}
			return executeAndPrint(cmd, c.ExchangeRefreshToken(oauth2.RefreshToken(refreshToken), scopes...), f.reveal)
		},
	}
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "Refresh token to exchange")
	cmd.Flags().StringSliceVar(&scopes, "narrow-scope", nil, "Request a subset of the originally granted scopes")
	return cmd
}

func newVerifyStateCmd() *cobra.Command {
	var expected, echoed string
	cmd := &cobra.Command{
		Use:   "verify-state",
		Short: "Compare the state returned to the redirect URI with the one sent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oauth2.StateFromString(expected).Verify(echoed); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&expected, "expected", "", "State sent with the authorization request")
	cmd.Flags().StringVar(&echoed, "state", "", "State returned to the redirect URI")
	return cmd
}

func newPKCECmd() *cobra.Command {
	var method string
	var length int
	cmd := &cobra.Command{
		Use:   "pkce",
		Short: "Generate a PKCE code verifier and its challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := pkce.NewVerifierWithLength(length)
			if err != nil {
				return err
			}
			challenge, err := v.Challenge(oauth2.CodeMethodType(method))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "code_verifier=%s\n", v.Secret())
			fmt.Fprintf(out, "code_challenge=%s\n", challenge)
			fmt.Fprintf(out, "code_challenge_method=%s\n", method)
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", string(oauth2.CodeMethodTypeS256), "Challenge method: S256|plain")
	cmd.Flags().IntVar(&length, "length", pkce.MinLength, "Verifier length")
	return cmd
}

func executeAndPrint(cmd *cobra.Command, req *client.Request, reveal bool) error {
	tok, err := req.Execute(commandContext(cmd))
	if err != nil {
		return describeError(err)
	}
	return printToken(cmd.OutOrStdout(), tok, reveal)
}

func newKeygenCmd() *cobra.Command {
	var keyID, keyType, outFile string
	var bits int
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private_key_jwt signing key and print its public JWK set",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kp *keys.KeyPair
			var err error
			switch keyType {
			case "rsa":
				kp, err = keys.GenerateRSA(keyID, bits)
			case "ec":
				kp, err = keys.GenerateEC(keyID)
			default:
				return fmt.Errorf("unknown key type %q, expected rsa or ec", keyType)
			}
			if err != nil {
				return err
			}

			pemData, err := kp.PrivateKeyPEM()
			if err != nil {
				return err
			}
			if err := os.WriteFile(outFile, pemData, 0o600); err != nil {
				return errors.Wrapf(err, "writing %s", outFile)
			}

			jwk, err := kp.JWK()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(keys.JWKS{Keys: []keys.JWK{*jwk}})
		},
	}
	cmd.Flags().StringVar(&keyID, "kid", "", "Key ID to publish in the JWK and assertion headers")
	cmd.Flags().StringVar(&keyType, "type", "rsa", "Key type: rsa|ec")
	cmd.Flags().IntVar(&bits, "bits", 2048, "RSA key size")
	cmd.Flags().StringVar(&outFile, "out", "client-key.pem", "Where to write the private key")
	return cmd
}
