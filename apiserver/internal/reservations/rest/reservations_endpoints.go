package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/krancour/courtside/apiserver/internal/lib/restmachinery"
	"github.com/krancour/courtside/apiserver/internal/reservations"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
)

type reservationsEndpoints struct {
	*restmachinery.BaseEndpoints
	service reservations.Service
}

// NewReservationsEndpoints returns the endpoints for reading reservations.
func NewReservationsEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	service reservations.Service,
) restmachinery.Endpoints {
	return &reservationsEndpoints{
		BaseEndpoints: baseEndpoints,
		service:       service,
	}
}

func (r *reservationsEndpoints) Register(router *mux.Router) {
	// List reservations
	router.HandleFunc(
		"/api/reservations",
		r.SessionFilter.Decorate(r.list),
	).Methods(http.MethodGet)
}

func (r *reservationsEndpoints) list(w http.ResponseWriter, req *http.Request) {
	r.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: req,
			EndpointLogic: func() (interface{}, error) {
				list, err := r.service.List(req.Context())
				if err == nil {
					return list, nil
				}
				switch errors.Cause(err).(type) {
				case *sdk.ErrAuthentication, *sdk.ErrAuthorization:
					return nil, err
				}
				return nil, &sdk.ErrInternalServer{
					Message: "Error fetching reservations",
					Details: errors.Cause(err).Error(),
				}
			},
			SuccessCode: http.StatusOK,
		},
	)
}
