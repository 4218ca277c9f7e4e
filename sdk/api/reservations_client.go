package api

import (
	"context"
	"net/http"

	"github.com/krancour/courtside/sdk"
	"github.com/krancour/courtside/sdk/internal/restmachinery"
)

// ReservationsClient is the specialized client for reading Reservations.
type ReservationsClient interface {
	// List returns every Reservation known to the upstream reservation
	// service. The caller's session must carry the administrator role.
	List(context.Context) (sdk.ReservationList, error)
}

type reservationsClient struct {
	*restmachinery.BaseClient
}

// NewReservationsClient returns a specialized client for reading
// Reservations.
func NewReservationsClient(
	apiAddress string,
	apiToken string,
	allowInsecure bool,
) ReservationsClient {
	return &reservationsClient{
		BaseClient: restmachinery.NewBaseClient(
			apiAddress,
			apiToken,
			allowInsecure,
		),
	}
}

func (r *reservationsClient) List(
	ctx context.Context,
) (sdk.ReservationList, error) {
	reservations := sdk.ReservationList{}
	return reservations, r.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/reservations",
			AuthHeaders: r.BearerTokenAuthHeaders(),
			SuccessCode: http.StatusOK,
			RespObj:     &reservations,
		},
	)
}
