package authn

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-logr/logr"
	"github.com/krancour/courtside/apiserver/internal/authx"
	"github.com/krancour/courtside/apiserver/internal/lib/restmachinery"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
)

// SessionCookieName is the name of the cookie that carries the session token
// for browser based clients.
const SessionCookieName = "courtside_session"

// FindSessionFn is the signature for any function that can resolve a session
// from a session token.
type FindSessionFn func(ctx context.Context, token string) (authx.Session, error)

type sessionFilter struct {
	findSession FindSessionFn
}

// NewSessionFilter returns a Filter that resolves the session identified by
// the request's bearer token or session cookie and adds it to the request
// context. Requests without a valid session proceed without one. Decisions
// about whether a session is required are left to the endpoints.
func NewSessionFilter(findSession FindSessionFn) restmachinery.Filter {
	return &sessionFilter{
		findSession: findSession,
	}
}

func (s *sessionFilter) Decorate(handle http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			handle(w, r)
			return
		}
		session, err := s.findSession(r.Context(), token)
		if err != nil {
			switch errors.Cause(err).(type) {
			case *sdk.ErrAuthentication, *sdk.ErrNotFound:
				logr.FromContextOrDiscard(r.Context()).V(1).Info(
					"request carried no usable session",
					"reason",
					err.Error(),
				)
				handle(w, r)
			default:
				logr.FromContextOrDiscard(r.Context()).Error(
					err,
					"error resolving session",
				)
				(&restmachinery.BaseEndpoints{}).WriteAPIResponse(
					w,
					http.StatusInternalServerError,
					&sdk.ErrInternalServer{},
				)
			}
			return
		}
		handle(w, r.WithContext(authx.ContextWithSession(r.Context(), session)))
	}
}

// TokenFromRequest returns the session token from the request's
// Authorization header, falling back to the session cookie. It returns an
// empty string if the request carries neither.
func TokenFromRequest(r *http.Request) string {
	if headerValue := r.Header.Get("Authorization"); headerValue != "" {
		headerValueParts := strings.SplitN(headerValue, " ", 2)
		if len(headerValueParts) == 2 && headerValueParts[0] == "Bearer" {
			return strings.TrimSpace(headerValueParts[1])
		}
		return ""
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
