package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-oauth-client/client"
	"github.com/jrsteele09/go-oauth-client/internal/config"
	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/keys"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/transport"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// clientFlags are shared by every command that talks to a provider. Their
// defaults come from the environment.
type clientFlags struct {
	clientID     string
	clientSecret string
	authURL      string
	tokenURL     string
	redirectURL  string
	issuer       string
	authType     string
	privateKey   string
	keyID        string
	scopes       []string
	timeout      time.Duration
	reveal       bool
}

func newRootCmd(c config.Config) *cobra.Command {
	f := &clientFlags{}

	root := &cobra.Command{
		Use:           "oauthclient",
		Short:         "Drive OAuth2 authorization servers from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringSlice("env-file", nil, "Load KEY=VALUE pairs from this file before reading the environment")
	pf.BoolP("quiet", "q", false, "Do not print the banner")
	pf.StringVar(&f.clientID, "client-id", c.GetClientID(), "Client identifier (env OAUTH_CLIENT_ID)")
	pf.StringVar(&f.clientSecret, "client-secret", c.GetClientSecret(), "Client secret (env OAUTH_CLIENT_SECRET)")
	pf.StringVar(&f.authURL, "auth-url", c.GetAuthURL(), "Authorization endpoint (env OAUTH_AUTH_URL)")
	pf.StringVar(&f.tokenURL, "token-url", c.GetTokenURL(), "Token endpoint (env OAUTH_TOKEN_URL)")
	pf.StringVar(&f.redirectURL, "redirect-url", c.GetRedirectURL(), "Redirect URI (env OAUTH_REDIRECT_URL)")
	pf.StringVar(&f.issuer, "issuer", c.GetIssuerURL(), "OpenID Connect issuer; endpoints are discovered when set (env OAUTH_ISSUER_URL)")
	pf.StringVar(&f.authType, "auth-type", c.GetAuthType(), "Client authentication: client_secret_basic|client_secret_post|client_secret_jwt|private_key_jwt (env OAUTH_AUTH_TYPE)")
	pf.StringVar(&f.privateKey, "private-key", c.GetPrivateKeyFile(), "PEM private key for private_key_jwt authentication (env OAUTH_PRIVATE_KEY_FILE)")
	pf.StringVar(&f.keyID, "key-id", c.GetKeyID(), "kid header of client assertions (env OAUTH_KEY_ID)")
	pf.StringSliceVar(&f.scopes, "scope", c.GetScopes(), "Requested scopes (env OAUTH_SCOPES)")
	pf.DurationVar(&f.timeout, "timeout", c.GetHTTPTimeout(), "HTTP timeout for token requests (env OAUTH_HTTP_TIMEOUT)")
	pf.BoolVar(&f.reveal, "reveal", false, "Print tokens in clear text")

	root.AddCommand(
		newAuthorizeURLCmd(f),
		newExchangeCodeCmd(f),
		newPasswordCmd(f),
		newClientCredentialsCmd(f),
		newRefreshCmd(f),
		newVerifyStateCmd(),
		newPKCECmd(),
		newKeygenCmd(),
	)
	return root
}

// newClient builds a Client from the flags, discovering the endpoints when an
// issuer is configured.
func (f *clientFlags) newClient(ctx context.Context) (*client.Client, error) {
	httpClient := &http.Client{Timeout: f.timeout}

	opts := []client.Option{
		client.WithTransport(transport.WithLogging(transport.NewHTTPDoer(httpClient), log.Logger)),
		client.WithScopes(f.scopes...),
	}
	if f.authType != "" {
		authType, ok := oauth2.ParseAuthType(f.authType)
		if !ok {
			return nil, oauth2.NewConfigurationError("auth_type", "unknown client authentication method "+f.authType)
		}
		opts = append(opts, client.WithAuthType(authType))
	}
	if f.clientSecret != "" {
		opts = append(opts, client.WithClientSecret(oauth2.ClientSecret(f.clientSecret)))
	}
	if f.redirectURL != "" {
		opts = append(opts, client.WithRedirectURL(f.redirectURL))
	}
	if f.privateKey != "" {
		pemData, err := os.ReadFile(f.privateKey)
		if err != nil {
			return nil, errors.Wrapf(err, "reading private key %s", f.privateKey)
		}
		kp, err := keys.LoadPEM(f.keyID, pemData)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithClientAssertion(kp.AssertionConfig()))
	}

	if f.issuer != "" {
		c, err := client.Discover(oidc.ClientContext(ctx, httpClient), f.issuer, f.clientID, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "discovery of %s failed", f.issuer)
		}
		return c, nil
	}
	return client.New(f.clientID, f.authURL, f.tokenURL, opts...)
}

// commandContext attaches the global logger so library code logging through
// zerolog.Ctx writes to it.
func commandContext(cmd *cobra.Command) context.Context {
	return log.Logger.WithContext(cmd.Context())
}
