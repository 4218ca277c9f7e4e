package authx

import (
	"context"
	"time"

	"github.com/krancour/courtside/apiserver/internal/lib/crypto"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// SessionsService is the specialized interface for managing Sessions. It's
// decoupled from underlying technology choices (e.g. data store) to keep
// business logic reusable and consistent while the underlying tech stack
// remains free to change.
type SessionsService interface {
	// CreateUserSession creates a new, unauthenticated session and returns
	// the URL the user must visit to authenticate along with the token that
	// identifies the session.
	CreateUserSession(context.Context) (sdk.UserSessionAuthDetails, error)
	// Authenticate completes the OpenID Connect authorization code flow for
	// the session identified by oauth2State.
	Authenticate(ctx context.Context, oauth2State string, oidcCode string) error
	// GetByToken returns the authenticated, unexpired session identified by
	// the specified token, refreshing its provider credentials first if they
	// have expired.
	GetByToken(ctx context.Context, token string) (Session, error)
	// Delete signs the session out of the identity provider, best effort, and
	// removes it.
	Delete(ctx context.Context, session Session) error
}

type sessionsService struct {
	config           SessionsServiceConfig
	sessionsStore    SessionsStore
	oauth2Config     *oauth2.Config
	identityVerifier IdentityVerifier
	logoutNotifier   LogoutNotifier
	now              func() time.Time
}

// NewSessionsService returns a specialized interface for managing Sessions.
func NewSessionsService(
	config SessionsServiceConfig,
	sessionsStore SessionsStore,
	oauth2Config *oauth2.Config,
	identityVerifier IdentityVerifier,
	logoutNotifier LogoutNotifier,
) SessionsService {
	return &sessionsService{
		config:           config,
		sessionsStore:    sessionsStore,
		oauth2Config:     oauth2Config,
		identityVerifier: identityVerifier,
		logoutNotifier:   logoutNotifier,
		now:              time.Now,
	}
}

func (s *sessionsService) CreateUserSession(
	ctx context.Context,
) (sdk.UserSessionAuthDetails, error) {
	userSessionAuthDetails := sdk.UserSessionAuthDetails{}
	if s.oauth2Config == nil {
		return userSessionAuthDetails, &sdk.ErrNotSupported{
			Details: "Authentication using OpenID Connect is not supported by " +
				"this server.",
		}
	}
	oauth2State := crypto.NewToken(30)
	session := NewUserSession(oauth2State)
	now := s.now()
	expires := now.Add(s.config.SessionTTL)
	session.Created = &now
	session.Expires = &expires
	token, err := signSessionToken(
		[]byte(s.config.SessionSecret),
		session.ID,
		now,
		expires,
	)
	if err != nil {
		return userSessionAuthDetails, err
	}
	if err = s.sessionsStore.Create(ctx, session); err != nil {
		return userSessionAuthDetails, errors.Wrapf(
			err,
			"error storing new user session %q",
			session.ID,
		)
	}
	userSessionAuthDetails.AuthURL = s.oauth2Config.AuthCodeURL(oauth2State)
	userSessionAuthDetails.Token = token
	return userSessionAuthDetails, nil
}

func (s *sessionsService) Authenticate(
	ctx context.Context,
	oauth2State string,
	oidcCode string,
) error {
	if s.oauth2Config == nil || s.identityVerifier == nil {
		return &sdk.ErrNotSupported{
			Details: "Authentication using OpenID Connect is not supported by " +
				"this server.",
		}
	}
	session, err := s.sessionsStore.GetByHashedOAuth2State(
		ctx,
		crypto.ShortSHA("", oauth2State),
	)
	if err != nil {
		return errors.Wrap(
			err,
			"error retrieving session from store by hashed OAuth2 state",
		)
	}
	oauth2Token, err := s.oauth2Config.Exchange(ctx, oidcCode)
	if err != nil {
		return errors.Wrap(
			err,
			"error exchanging OpenID Connect code for OAuth2 token",
		)
	}
	grant := GrantFromOAuth2Token(s.config.ProviderName, oauth2Token)
	if grant.IDToken == "" {
		return errors.New(
			"OAuth2 token did not include an OpenID Connect identity token",
		)
	}
	identity, err := s.identityVerifier.Verify(ctx, grant.IDToken)
	if err != nil {
		return err
	}
	session = EnrichToken(session, grant)
	session.Name = identity.Name
	session.Email = identity.Email
	session.Image = identity.Picture
	// The state is single use
	session.HashedOAuth2State = ""
	now := s.now()
	session.Authenticated = &now
	if err := s.sessionsStore.Update(ctx, session); err != nil {
		return errors.Wrapf(
			err,
			"error storing authentication details for session %q",
			session.ID,
		)
	}
	return nil
}

func (s *sessionsService) GetByToken(
	ctx context.Context,
	token string,
) (Session, error) {
	sessionID, err := parseSessionToken([]byte(s.config.SessionSecret), token)
	if err != nil {
		return Session{}, &sdk.ErrAuthentication{
			Reason: "Supplied token is invalid. Please log in again.",
		}
	}
	session, err := s.sessionsStore.Get(ctx, sessionID)
	if err != nil {
		return session, errors.Wrapf(
			err,
			"error retrieving session %q from store",
			sessionID,
		)
	}
	if session.Authenticated == nil {
		return session, &sdk.ErrAuthentication{
			Reason: "Supplied token has not been authenticated. Please log in " +
				"again.",
		}
	}
	now := s.now()
	if session.Expires != nil && now.After(*session.Expires) {
		return session, &sdk.ErrAuthentication{
			Reason: "Supplied token has expired. Please log in again.",
		}
	}
	if session.AccessTokenExpiry != nil &&
		now.After(*session.AccessTokenExpiry) &&
		session.RefreshToken != "" {
		if session, err = s.refresh(ctx, session); err != nil {
			return session, err
		}
	}
	return session, nil
}

// refresh obtains new credentials from the identity provider using the
// session's refresh token and applies them to the session.
func (s *sessionsService) refresh(
	ctx context.Context,
	session Session,
) (Session, error) {
	if s.oauth2Config == nil {
		return session, &sdk.ErrAuthentication{
			Reason: "Session credentials have expired. Please log in again.",
		}
	}
	oauth2Token, err := s.oauth2Config.TokenSource(
		ctx,
		&oauth2.Token{
			RefreshToken: session.RefreshToken,
		},
	).Token()
	if err != nil {
		return session, &sdk.ErrAuthentication{
			Reason: "Session credentials could not be refreshed. Please log in " +
				"again.",
		}
	}
	session = EnrichToken(
		session,
		GrantFromOAuth2Token(s.config.ProviderName, oauth2Token),
	)
	if err = s.sessionsStore.Update(ctx, session); err != nil {
		return session, errors.Wrapf(
			err,
			"error storing refreshed credentials for session %q",
			session.ID,
		)
	}
	return session, nil
}

func (s *sessionsService) Delete(ctx context.Context, session Session) error {
	if s.logoutNotifier != nil {
		s.logoutNotifier.NotifyLogout(ctx, session)
	}
	if err := s.sessionsStore.Delete(ctx, session.ID); err != nil {
		return errors.Wrapf(err, "error removing session %q from store", session.ID)
	}
	return nil
}
