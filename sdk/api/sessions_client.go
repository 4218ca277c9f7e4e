package api

import (
	"context"
	"net/http"

	"github.com/krancour/courtside/sdk"
	"github.com/krancour/courtside/sdk/internal/restmachinery"
)

// SessionsClient is the specialized client for managing user sessions.
type SessionsClient interface {
	// CreateUserSession begins a new, not yet authenticated session. The
	// returned details carry the URL the user must visit to complete
	// authentication and the token that identifies the session.
	CreateUserSession(context.Context) (sdk.UserSessionAuthDetails, error)
	// Get returns the session identified by the client's token.
	Get(context.Context) (sdk.Session, error)
	// Delete ends the session identified by the client's token.
	Delete(context.Context) error
}

type sessionsClient struct {
	*restmachinery.BaseClient
}

// NewSessionsClient returns a specialized client for managing user sessions.
func NewSessionsClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) SessionsClient {
	return &sessionsClient{
		BaseClient: restmachinery.NewBaseClient(
			apiAddress,
			apiToken,
			allowInsecure,
		),
	}
}

func (s *sessionsClient) CreateUserSession(
	ctx context.Context,
) (sdk.UserSessionAuthDetails, error) {
	userSessionAuthDetails := sdk.UserSessionAuthDetails{}
	return userSessionAuthDetails, s.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodPost,
			Path:        "v1/sessions",
			SuccessCode: http.StatusCreated,
			RespObj:     &userSessionAuthDetails,
		},
	)
}

func (s *sessionsClient) Get(ctx context.Context) (sdk.Session, error) {
	session := sdk.Session{}
	return session, s.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "v1/session",
			AuthHeaders: s.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &session,
		},
	)
}

func (s *sessionsClient) Delete(ctx context.Context) error {
	return s.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodDelete,
			Path:        "v1/session",
			AuthHeaders: s.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
		},
	)
}
