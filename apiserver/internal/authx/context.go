package authx

import "context"

type sessionContextKey struct{}

// ContextWithSession returns a copy of ctx carrying the specified session.
func ContextWithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext extracts a session from the context. It returns nil if
// the context carries none.
func SessionFromContext(ctx context.Context) *Session {
	if session, ok := ctx.Value(sessionContextKey{}).(Session); ok {
		return &session
	}
	return nil
}
