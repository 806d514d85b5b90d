package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/societyhub/societyhub/internal/adapter"
	"github.com/societyhub/societyhub/internal/logger"
	"github.com/societyhub/societyhub/internal/mock"
	"github.com/societyhub/societyhub/internal/store"
	"github.com/societyhub/societyhub/models"
)

func newTestStore(t *testing.T) (*Store, *mock.MockGateway, *mock.MockTokenStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	tokens := mock.NewMockTokenStore(ctrl)
	return NewStore(gw, tokens, logger.Nop()), gw, tokens
}

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return token
}

func TestRestore_NoStoredCredential(t *testing.T) {
	s, _, tokens := newTestStore(t)
	ctx := context.Background()

	// No gateway expectations at all: restore with an empty keystore must
	// not touch the network.
	tokens.EXPECT().Load(ctx).Return("", store.ErrNoCredential)

	require.True(t, s.Loading())
	require.NoError(t, s.Restore(ctx))

	assert.False(t, s.Loading())
	_, ok := s.Principal()
	assert.False(t, ok)
}

func TestRestore_ValidCredential(t *testing.T) {
	s, gw, tokens := newTestStore(t)
	ctx := context.Background()

	tokens.EXPECT().Load(ctx).Return("tok-valid", nil)
	gw.EXPECT().SetToken("tok-valid")
	gw.EXPECT().Do(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, call adapter.Call) (json.RawMessage, error) {
			assert.Equal(t, http.MethodGet, call.Method)
			assert.Equal(t, "/auth/me", call.Path)
			return json.RawMessage(`{"id":"u1","name":"Asha","role":"resident","status":"active"}`), nil
		},
	)

	require.NoError(t, s.Restore(ctx))

	p, ok := s.Principal()
	require.True(t, ok)
	assert.Equal(t, models.RoleResident, p.Role, "role is normalized to uppercase at construction")
	assert.Equal(t, models.StatusActive, p.Status)
	assert.False(t, s.Loading())
}

func TestRestore_ExpiredCredentialSkipsNetwork(t *testing.T) {
	s, _, tokens := newTestStore(t)
	ctx := context.Background()

	expired := signedJWT(t, time.Now().Add(-time.Hour))

	tokens.EXPECT().Load(ctx).Return(expired, nil)
	tokens.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, s.Restore(ctx))

	_, ok := s.Principal()
	assert.False(t, ok)
	assert.False(t, s.Loading())
}

func TestRestore_BackendRejectsCredential(t *testing.T) {
	s, gw, tokens := newTestStore(t)
	ctx := context.Background()

	tokens.EXPECT().Load(ctx).Return("tok-stale", nil)
	gw.EXPECT().SetToken("tok-stale")
	gw.EXPECT().Do(ctx, gomock.Any()).Return(nil, adapter.ErrUnauthorized)
	gw.EXPECT().SetToken("")
	tokens.EXPECT().Clear(ctx).Return(nil)

	err := s.Restore(ctx)
	require.Error(t, err)

	_, ok := s.Principal()
	assert.False(t, ok)
	assert.False(t, s.Loading(), "loading flips to false on failure too")
}

func TestLogin_SuccessAndCredentialRoundTrip(t *testing.T) {
	s, gw, tokens := newTestStore(t)
	ctx := context.Background()

	userJSON := `{"id":"u7","name":"Ravi","email":"ravi@example.com","role":"Resident","status":"PENDING"}`

	gw.EXPECT().Do(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, call adapter.Call) (json.RawMessage, error) {
			assert.Equal(t, http.MethodPost, call.Method)
			assert.Equal(t, "/auth/login", call.Path)
			body, ok := call.Body.(models.LoginRequest)
			require.True(t, ok)
			assert.Equal(t, "ravi@example.com", body.Email)
			return json.RawMessage(`{"token":"tok-rt","user":` + userJSON + `}`), nil
		},
	)
	tokens.EXPECT().Save(ctx, "tok-rt").Return(nil)
	gw.EXPECT().SetToken("tok-rt")

	loggedIn, err := s.Login(ctx, "ravi@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, loggedIn.Status)

	// Simulated reload: a fresh store restoring the persisted credential
	// must reproduce the same principal.
	fresh, freshGw, freshTokens := newTestStore(t)
	freshTokens.EXPECT().Load(ctx).Return("tok-rt", nil)
	freshGw.EXPECT().SetToken("tok-rt")
	freshGw.EXPECT().Do(ctx, gomock.Any()).Return(json.RawMessage(userJSON), nil)

	require.NoError(t, fresh.Restore(ctx))
	restored, ok := fresh.Principal()
	require.True(t, ok)
	assert.Equal(t, loggedIn, restored)
}

func TestLogin_FailureDoesNotMutateSession(t *testing.T) {
	s, gw, _ := newTestStore(t)
	ctx := context.Background()

	gw.EXPECT().Do(ctx, gomock.Any()).
		Return(nil, errors.New("validation failed: wrong password"))

	_, err := s.Login(ctx, "a@b.c", "wrong")
	require.Error(t, err)

	// No Save, no SetToken expectations were registered: the mock
	// controller fails the test if either is called.
	_, ok := s.Principal()
	assert.False(t, ok)
}

func TestLogin_MissingTokenInResponse(t *testing.T) {
	s, gw, _ := newTestStore(t)
	ctx := context.Background()

	gw.EXPECT().Do(ctx, gomock.Any()).
		Return(json.RawMessage(`{"user":{"id":"u1"}}`), nil)

	_, err := s.Login(ctx, "a@b.c", "pw")
	require.ErrorIs(t, err, ErrMalformedAuthResponse)
}

func TestSignup_DoesNotEstablishSession(t *testing.T) {
	s, gw, _ := newTestStore(t)
	ctx := context.Background()

	gw.EXPECT().Do(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, call adapter.Call) (json.RawMessage, error) {
			assert.Equal(t, "/auth/signup", call.Path)
			return json.RawMessage(`{"id":"u9"}`), nil
		},
	)

	require.NoError(t, s.Signup(ctx, models.SignupRequest{Name: "New", Email: "n@e.w", Password: "pw123456"}))

	_, ok := s.Principal()
	assert.False(t, ok, "registration-without-auto-login")
}

func TestLogout_ClearsEverythingAndCannotFail(t *testing.T) {
	s, gw, tokens := newTestStore(t)
	ctx := context.Background()

	gw.EXPECT().Do(ctx, gomock.Any()).
		Return(json.RawMessage(`{"token":"tok-x","user":{"id":"u1","role":"ADMIN"}}`), nil)
	tokens.EXPECT().Save(ctx, "tok-x").Return(nil)
	gw.EXPECT().SetToken("tok-x")

	_, err := s.Login(ctx, "admin@s.h", "pw")
	require.NoError(t, err)

	gw.EXPECT().SetToken("")
	tokens.EXPECT().Clear(gomock.Any()).Return(errors.New("disk detached"))

	s.Logout() // keystore failure is swallowed

	_, ok := s.Principal()
	assert.False(t, ok)
}

func TestTokenExpired(t *testing.T) {
	assert.True(t, tokenExpired(signedJWT(t, time.Now().Add(-time.Minute))))
	assert.False(t, tokenExpired(signedJWT(t, time.Now().Add(time.Hour))))
	assert.False(t, tokenExpired("opaque-non-jwt-token"), "opaque tokens are left for the server to judge")
}
