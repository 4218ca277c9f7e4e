package authx

import "context"

// SessionsStore is an interface for components that implement Session
// persistence concerns. Implementations return *sdk.ErrNotFound when a
// session does not exist.
type SessionsStore interface {
	// Create stores a new session.
	Create(context.Context, Session) error
	// GetByHashedOAuth2State returns the session awaiting completion of the
	// OpenID Connect flow identified by the hashed OAuth2 state.
	GetByHashedOAuth2State(context.Context, string) (Session, error)
	// Get returns a session by ID.
	Get(ctx context.Context, id string) (Session, error)
	// Update replaces a stored session.
	Update(context.Context, Session) error
	// Delete removes a session by ID.
	Delete(ctx context.Context, id string) error
}
