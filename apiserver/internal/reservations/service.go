package reservations

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/krancour/courtside/apiserver/internal/authx"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
)

// Service is the specialized interface for reading reservations.
type Service interface {
	// List returns every reservation known to the upstream service. The
	// session in ctx must carry the configured admin role. Authorization is
	// decided before any call leaves the process.
	List(ctx context.Context) (sdk.ReservationList, error)
}

type service struct {
	authorize authx.AuthorizeFn
	config    ServiceConfig
	upstream  UpstreamClient
	decryptor Decryptor
}

// NewService returns a specialized interface for reading reservations.
func NewService(
	authorize authx.AuthorizeFn,
	config ServiceConfig,
	upstream UpstreamClient,
	decryptor Decryptor,
) Service {
	return &service{
		authorize: authorize,
		config:    config,
		upstream:  upstream,
		decryptor: decryptor,
	}
}

func (s *service) List(ctx context.Context) (sdk.ReservationList, error) {
	var session *sdk.Session
	if serverSession := authx.SessionFromContext(ctx); serverSession != nil {
		projected := authx.ProjectSession(*serverSession)
		session = &projected
	}
	if err := s.authorize(session, s.config.AdminRole); err != nil {
		return sdk.ReservationList{}, err
	}

	envelope, err := s.upstream.GetEnvelope(ctx)
	if err != nil {
		return sdk.ReservationList{},
			errors.Wrap(err, "error fetching reservations envelope")
	}

	reservations, err := s.decryptor.Decrypt(ctx, envelope)
	if err != nil {
		return sdk.ReservationList{},
			errors.Wrap(err, "error decrypting reservations envelope")
	}

	logr.FromContextOrDiscard(ctx).V(1).Info(
		"listed reservations",
		"count",
		len(reservations),
	)
	return sdk.ReservationList{Reservations: reservations}, nil
}
