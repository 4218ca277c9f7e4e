package rest

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/krancour/courtside/apiserver/internal/authx"
	"github.com/krancour/courtside/apiserver/internal/lib/restmachinery"
	"github.com/krancour/courtside/apiserver/internal/lib/restmachinery/authn"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
)

type sessionsEndpoints struct {
	*restmachinery.BaseEndpoints
	service      authx.SessionsService
	cookieSecure bool
}

// NewSessionsEndpoints returns the endpoints for signing in, inspecting the
// current session and signing out.
func NewSessionsEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	service authx.SessionsService,
	cookieSecure bool,
) restmachinery.Endpoints {
	return &sessionsEndpoints{
		BaseEndpoints: baseEndpoints,
		service:       service,
		cookieSecure:  cookieSecure,
	}
}

func (s *sessionsEndpoints) Register(router *mux.Router) {
	// Create session
	router.HandleFunc(
		"/v1/sessions",
		s.create, // No filters applied to this request
	).Methods(http.MethodPost)

	// Browser sign-in
	router.HandleFunc(
		"/auth/signin",
		s.signIn, // No filters applied to this request
	).Methods(http.MethodGet)

	// OIDC callback
	router.HandleFunc(
		"/auth/callback",
		s.authenticate, // No filters applied to this request
	).Methods(http.MethodGet)

	// Get session
	router.HandleFunc(
		"/v1/session",
		s.SessionFilter.Decorate(s.get),
	).Methods(http.MethodGet)

	// Delete session
	router.HandleFunc(
		"/v1/session",
		s.SessionFilter.Decorate(s.delete),
	).Methods(http.MethodDelete)

	// Browser sign-out
	router.HandleFunc(
		"/auth/signout",
		s.SessionFilter.Decorate(s.delete),
	).Methods(http.MethodPost)
}

func (s *sessionsEndpoints) create(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return s.service.CreateUserSession(r.Context())
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (s *sessionsEndpoints) signIn(w http.ResponseWriter, r *http.Request) {
	details, err := s.service.CreateUserSession(r.Context())
	if err != nil {
		s.ServeHumanRequest(
			restmachinery.HumanRequest{
				W: w,
				R: r,
				EndpointLogic: func() (interface{}, error) {
					return nil, err
				},
			},
		)
		return
	}
	http.SetCookie(w, s.sessionCookie(details.Token, time.Time{}))
	http.Redirect(w, r, details.AuthURL, http.StatusFound)
}

func (s *sessionsEndpoints) authenticate(
	w http.ResponseWriter,
	r *http.Request,
) {
	oauth2State := r.URL.Query().Get("state")
	oidcCode := r.URL.Query().Get("code")

	s.ServeHumanRequest(
		restmachinery.HumanRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				if oauth2State == "" || oidcCode == "" {
					return nil, &sdk.ErrBadRequest{
						Reason: `The OpenID Connect authentication completion request ` +
							`lacked one or both of the "state" and "code" query ` +
							`parameters.`,
					}
				}
				if err := s.service.Authenticate(
					r.Context(),
					oauth2State,
					oidcCode,
				); err != nil {
					return nil,
						errors.Wrap(err, "error completing OpenID Connect authentication")
				}
				return "You're now authenticated. You may resume using courtside.", nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (s *sessionsEndpoints) get(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				session := authx.SessionFromContext(r.Context())
				if session == nil {
					return nil, &sdk.ErrAuthentication{
						Reason: "No valid session was found. Please log in.",
					}
				}
				return authx.ProjectSession(*session), nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (s *sessionsEndpoints) delete(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				session := authx.SessionFromContext(r.Context())
				if session == nil {
					return nil, &sdk.ErrAuthentication{
						Reason: "No valid session was found. Please log in.",
					}
				}
				if err := s.service.Delete(r.Context(), *session); err != nil {
					return nil, err
				}
				// Expire the browser's cookie, if it has one
				http.SetCookie(w, s.sessionCookie("", time.Unix(0, 0)))
				return struct{}{}, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (s *sessionsEndpoints) sessionCookie(
	value string,
	expires time.Time,
) *http.Cookie {
	cookie := &http.Cookie{
		Name:     authn.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if !expires.IsZero() && expires.Before(time.Now()) {
		cookie.MaxAge = -1
	}
	return cookie
}
