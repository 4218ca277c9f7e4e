package oidc

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const envconfigPrefix = "OIDC"

// CallbackPath is the path, relative to the redirect URL base, that the
// identity provider redirects users to after they authenticate.
const CallbackPath = "auth/callback"

type config struct {
	// IssuerURL example for Keycloak:
	//   https://keycloak.example.com/realms/{realm}
	IssuerURL       string `envconfig:"ISSUER" required:"true"`
	ClientID        string `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret    string `envconfig:"CLIENT_SECRET" required:"true"`
	RedirectURLBase string `envconfig:"REDIRECT_URL_BASE" required:"true"`
	ProviderName    string `envconfig:"PROVIDER_NAME" default:"keycloak"`
}

// Provider bundles everything the API server needs to know about the
// configured identity provider.
type Provider struct {
	// Name identifies the provider on the sessions it establishes.
	Name string
	// IssuerURL is the provider's issuer, without a trailing slash.
	IssuerURL string
	// OAuth2Config is used for the authorization code flow and for refreshing
	// access tokens.
	OAuth2Config *oauth2.Config
	// Verifier verifies identity tokens issued by the provider.
	Verifier *oidc.IDTokenVerifier
}

// GetProviderFromEnvironment returns OAuth2 client configuration and an OIDC
// identity token verifier, all derived from environment variables and the
// provider's discovery document.
func GetProviderFromEnvironment(ctx context.Context) (Provider, error) {
	c := config{}
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return Provider{}, errors.Wrap(
			err,
			"error getting OpenID Connect configuration from environment",
		)
	}

	provider, err := oidc.NewProvider(ctx, c.IssuerURL)
	if err != nil {
		return Provider{}, errors.Wrapf(
			err,
			"error discovering OpenID Connect provider %q",
			c.IssuerURL,
		)
	}

	return Provider{
		Name:      c.ProviderName,
		IssuerURL: strings.TrimSuffix(c.IssuerURL, "/"),
		OAuth2Config: &oauth2.Config{
			Endpoint:     provider.Endpoint(),
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL: fmt.Sprintf(
				"%s/%s",
				strings.TrimSuffix(c.RedirectURLBase, "/"),
				CallbackPath,
			),
			Scopes: []string{oidc.ScopeOpenID, "profile", "email"},
		},
		Verifier: provider.Verifier(
			&oidc.Config{
				ClientID: c.ClientID,
			},
		),
	}, nil
}
