package authx

import (
	"context"

	"github.com/coreos/go-oidc"
	"github.com/pkg/errors"
)

// Identity holds the profile claims of a verified OpenID Connect identity
// token.
type Identity struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// IdentityVerifier verifies raw OpenID Connect identity tokens.
type IdentityVerifier interface {
	// Verify checks the token's signature and claims and returns the identity
	// it asserts.
	Verify(ctx context.Context, rawIDToken string) (Identity, error)
}

type oidcIdentityVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCIdentityVerifier returns an IdentityVerifier backed by the identity
// provider's published signing keys.
func NewOIDCIdentityVerifier(verifier *oidc.IDTokenVerifier) IdentityVerifier {
	return &oidcIdentityVerifier{
		verifier: verifier,
	}
}

func (o *oidcIdentityVerifier) Verify(
	ctx context.Context,
	rawIDToken string,
) (Identity, error) {
	identity := Identity{}
	idToken, err := o.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return identity,
			errors.Wrap(err, "error verifying OpenID Connect identity token")
	}
	if err = idToken.Claims(&identity); err != nil {
		return identity, errors.Wrap(
			err,
			"error decoding OpenID Connect identity token claims",
		)
	}
	return identity, nil
}
