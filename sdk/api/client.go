package api

// Client is the general interface for the courtside API. It does little more
// than expose functions for obtaining more specialized clients for different
// areas of concern.
type Client interface {
	// Reservations returns a specialized client for reading Reservations.
	Reservations() ReservationsClient
	// Sessions returns a specialized client for Session management.
	Sessions() SessionsClient
}

type client struct {
	reservationsClient ReservationsClient
	sessionsClient     SessionsClient
}

// NewClient returns a courtside client.
func NewClient(apiAddress, apiToken string, allowInsecure bool) Client {
	return &client{
		reservationsClient: NewReservationsClient(
			apiAddress,
			apiToken,
			allowInsecure,
		),
		sessionsClient: NewSessionsClient(apiAddress, apiToken, allowInsecure),
	}
}

func (c *client) Reservations() ReservationsClient {
	return c.reservationsClient
}

func (c *client) Sessions() SessionsClient {
	return c.sessionsClient
}
