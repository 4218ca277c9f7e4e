package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/krancour/courtside/apiserver/internal/authx"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type mockUpstreamClient struct {
	calls         int
	GetEnvelopeFn func(context.Context) (Envelope, error)
}

func (m *mockUpstreamClient) GetEnvelope(ctx context.Context) (Envelope, error) {
	m.calls++
	return m.GetEnvelopeFn(ctx)
}

type mockDecryptor struct {
	DecryptFn func(context.Context, Envelope) ([]sdk.Reservation, error)
}

func (m *mockDecryptor) Decrypt(
	ctx context.Context,
	envelope Envelope,
) ([]sdk.Reservation, error) {
	return m.DecryptFn(ctx, envelope)
}

func contextWithRoles(roles ...string) context.Context {
	authenticated := time.Now().UTC()
	return authx.ContextWithSession(
		context.Background(),
		authx.Session{
			ID:            "s1",
			AccessToken:   "access",
			Roles:         roles,
			Authenticated: &authenticated,
		},
	)
}

func TestServiceList(t *testing.T) {
	testEnvelope := Envelope{EncryptedData: "ZGF0YQ=="}
	testCases := []struct {
		name       string
		ctx        context.Context
		upstream   *mockUpstreamClient
		decryptor  *mockDecryptor
		assertions func(
			t *testing.T,
			list sdk.ReservationList,
			upstream *mockUpstreamClient,
			err error,
		)
	}{
		{
			name:     "no session",
			ctx:      context.Background(),
			upstream: &mockUpstreamClient{},
			assertions: func(
				t *testing.T,
				_ sdk.ReservationList,
				upstream *mockUpstreamClient,
				err error,
			) {
				require.IsType(t, &sdk.ErrAuthentication{}, err)
				require.Zero(t, upstream.calls)
			},
		},
		{
			name:     "missing admin role",
			ctx:      contextWithRoles("user", "Admin"),
			upstream: &mockUpstreamClient{},
			assertions: func(
				t *testing.T,
				_ sdk.ReservationList,
				upstream *mockUpstreamClient,
				err error,
			) {
				require.IsType(t, &sdk.ErrAuthorization{}, err)
				require.Contains(t, err.Error(), "Forbidden")
				require.Zero(t, upstream.calls)
			},
		},
		{
			name: "upstream unavailable",
			ctx:  contextWithRoles("admin"),
			upstream: &mockUpstreamClient{
				GetEnvelopeFn: func(context.Context) (Envelope, error) {
					return Envelope{}, &ErrUpstreamUnavailable{StatusCode: 503}
				},
			},
			assertions: func(
				t *testing.T,
				_ sdk.ReservationList,
				_ *mockUpstreamClient,
				err error,
			) {
				require.IsType(t, &ErrUpstreamUnavailable{}, errors.Cause(err))
			},
		},
		{
			name: "decryption fails",
			ctx:  contextWithRoles("admin"),
			upstream: &mockUpstreamClient{
				GetEnvelopeFn: func(context.Context) (Envelope, error) {
					return testEnvelope, nil
				},
			},
			decryptor: &mockDecryptor{
				DecryptFn: func(context.Context, Envelope) ([]sdk.Reservation, error) {
					return nil, &ErrAuthenticationFailure{Reason: "message authentication failed"}
				},
			},
			assertions: func(
				t *testing.T,
				list sdk.ReservationList,
				_ *mockUpstreamClient,
				err error,
			) {
				require.IsType(t, &ErrAuthenticationFailure{}, errors.Cause(err))
				require.Empty(t, list.Reservations)
			},
		},
		{
			name: "success",
			ctx:  contextWithRoles("user", "admin"),
			upstream: &mockUpstreamClient{
				GetEnvelopeFn: func(context.Context) (Envelope, error) {
					return testEnvelope, nil
				},
			},
			decryptor: &mockDecryptor{
				DecryptFn: func(
					_ context.Context,
					envelope Envelope,
				) ([]sdk.Reservation, error) {
					require.Equal(t, testEnvelope, envelope)
					return []sdk.Reservation{
						{
							ID:    "r1",
							State: sdk.ReservationStateAccepted,
						},
					}, nil
				},
			},
			assertions: func(
				t *testing.T,
				list sdk.ReservationList,
				upstream *mockUpstreamClient,
				err error,
			) {
				require.NoError(t, err)
				require.Equal(t, 1, upstream.calls)
				require.Len(t, list.Reservations, 1)
				require.Equal(t, "r1", list.Reservations[0].ID)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			svc := NewService(
				authx.Authorize,
				ServiceConfig{AdminRole: "admin"},
				testCase.upstream,
				testCase.decryptor,
			)
			list, err := svc.List(testCase.ctx)
			testCase.assertions(t, list, testCase.upstream, err)
		})
	}
}
