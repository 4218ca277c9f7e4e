package authx

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testAccessToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("not verified by courtside"))
	require.NoError(t, err)
	return token
}

type mockSessionsStore struct {
	CreateFn                 func(context.Context, Session) error
	GetByHashedOAuth2StateFn func(context.Context, string) (Session, error)
	GetFn                    func(context.Context, string) (Session, error)
	UpdateFn                 func(context.Context, Session) error
	DeleteFn                 func(context.Context, string) error
}

func (m *mockSessionsStore) Create(ctx context.Context, session Session) error {
	return m.CreateFn(ctx, session)
}

func (m *mockSessionsStore) GetByHashedOAuth2State(
	ctx context.Context,
	hashedOAuth2State string,
) (Session, error) {
	return m.GetByHashedOAuth2StateFn(ctx, hashedOAuth2State)
}

func (m *mockSessionsStore) Get(ctx context.Context, id string) (Session, error) {
	return m.GetFn(ctx, id)
}

func (m *mockSessionsStore) Update(ctx context.Context, session Session) error {
	return m.UpdateFn(ctx, session)
}

func (m *mockSessionsStore) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

type mockIdentityVerifier struct {
	VerifyFn func(context.Context, string) (Identity, error)
}

func (m *mockIdentityVerifier) Verify(
	ctx context.Context,
	rawIDToken string,
) (Identity, error) {
	return m.VerifyFn(ctx, rawIDToken)
}

type mockLogoutNotifier struct {
	notified []Session
}

func (m *mockLogoutNotifier) NotifyLogout(_ context.Context, session Session) {
	m.notified = append(m.notified, session)
}
