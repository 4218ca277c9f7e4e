package authx

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// LogoutNotifier informs the identity provider that a user signed out.
type LogoutNotifier interface {
	// NotifyLogout ends the provider side of the session. It is best effort.
	// Failures are logged, never returned.
	NotifyLogout(ctx context.Context, session Session)
}

type keycloakLogoutNotifier struct {
	issuerURL    string
	providerName string
	httpClient   *http.Client
}

// NewKeycloakLogoutNotifier returns a LogoutNotifier that calls Keycloak's
// OpenID Connect logout endpoint for sessions established through the named
// provider.
func NewKeycloakLogoutNotifier(
	issuerURL string,
	providerName string,
) LogoutNotifier {
	return &keycloakLogoutNotifier{
		issuerURL:    strings.TrimSuffix(issuerURL, "/"),
		providerName: providerName,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (k *keycloakLogoutNotifier) NotifyLogout(
	ctx context.Context,
	session Session,
) {
	if session.Provider != k.providerName || session.IDToken == "" {
		return
	}
	logger := logr.FromContextOrDiscard(ctx)
	if err := k.logout(ctx, session.IDToken); err != nil {
		logger.Error(
			err,
			"error ending identity provider session",
			"session",
			session.ID,
		)
	}
}

func (k *keycloakLogoutNotifier) logout(ctx context.Context, idToken string) error {
	logoutURL := fmt.Sprintf(
		"%s/protocol/openid-connect/logout?id_token_hint=%s",
		k.issuerURL,
		url.QueryEscape(idToken),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoutURL, nil)
	if err != nil {
		return errors.Wrap(err, "error creating logout request")
	}
	resp, err := k.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "error invoking logout endpoint")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("received %d from logout endpoint", resp.StatusCode)
	}
	return nil
}
