package reservations

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const (
	upstreamReservationsPath = "api/reservas"
	maxEnvelopeSize          = 16 << 20
)

// UpstreamClient is the interface for components that retrieve encrypted
// reservations from the upstream reservations service.
type UpstreamClient interface {
	// GetEnvelope fetches the current reservations envelope. Transport
	// failures and non-2xx responses are reported as *ErrUpstreamUnavailable.
	GetEnvelope(ctx context.Context) (Envelope, error)
}

type upstreamClient struct {
	url        string
	httpClient *http.Client
}

// NewUpstreamClient returns an UpstreamClient for the service at the
// configured URL. No retries are attempted.
func NewUpstreamClient(config UpstreamConfig) UpstreamClient {
	return &upstreamClient{
		url: strings.TrimSuffix(config.URL, "/") + "/" + upstreamReservationsPath,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

func (u *upstreamClient) GetEnvelope(ctx context.Context) (Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.url, nil)
	if err != nil {
		return Envelope{}, errors.Wrap(err, "error creating upstream request")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := u.httpClient.Do(req)
	if err != nil {
		return Envelope{}, &ErrUpstreamUnavailable{Reason: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Envelope{}, &ErrUpstreamUnavailable{StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxEnvelopeSize))
	if err != nil {
		return Envelope{}, &ErrUpstreamUnavailable{
			Reason: errors.Wrap(err, "error reading upstream response").Error(),
		}
	}
	return ParseEnvelope(body)
}
