// Package session owns the authenticated principal and the bearer
// credential. It is the only writer of both: the gateway reads the token it
// is handed and may trigger Invalidate through the unauthorized hook, but
// never writes the keystore itself.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/societyhub/societyhub/internal/adapter"
	"github.com/societyhub/societyhub/internal/logger"
	"github.com/societyhub/societyhub/internal/store"
	"github.com/societyhub/societyhub/models"
)

// ErrMalformedAuthResponse is returned by Login when the backend reports
// success but the payload is missing the credential.
var ErrMalformedAuthResponse = errors.New("auth response missing token")

// Store holds the session state. At any moment either a principal is present
// or it is absent; there is no partially-authenticated state observable
// through Principal.
type Store struct {
	gw     adapter.Gateway
	tokens store.TokenStore
	logger *logger.Logger

	mu        sync.RWMutex
	principal *models.Principal

	loadingMu sync.RWMutex
	loading   bool
	loadOnce  sync.Once
}

// NewStore constructs the session store. Loading starts true and flips to
// false exactly once, when the first Restore completes (however it ends),
// so the view layer can hold rendering of guarded screens until the session
// state is known.
func NewStore(gw adapter.Gateway, tokens store.TokenStore, log *logger.Logger) *Store {
	return &Store{gw: gw, tokens: tokens, logger: log, loading: true}
}

// Loading reports whether the initial Restore is still in progress.
func (s *Store) Loading() bool {
	s.loadingMu.RLock()
	defer s.loadingMu.RUnlock()
	return s.loading
}

func (s *Store) finishLoading() {
	s.loadOnce.Do(func() {
		s.loadingMu.Lock()
		s.loading = false
		s.loadingMu.Unlock()
	})
}

// Restore redeems the stored credential against /auth/me on application
// start. With no stored credential it returns immediately without touching
// the network. Any failure along the way clears the stored credential and
// leaves the principal empty; the user simply logs in again.
func (s *Store) Restore(ctx context.Context) error {
	defer s.finishLoading()

	token, err := s.tokens.Load(ctx)
	if errors.Is(err, store.ErrNoCredential) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load stored credential: %w", err)
	}

	if tokenExpired(token) {
		s.logger.Debug().Msg("stored credential already expired, skipping restore call")
		_ = s.tokens.Clear(ctx)
		return nil
	}

	s.gw.SetToken(token)

	principal, err := adapter.DoJSON[models.Principal](ctx, s.gw, adapter.Call{
		Method: http.MethodGet,
		Path:   "/auth/me",
	})
	if err != nil {
		s.gw.SetToken("")
		_ = s.tokens.Clear(ctx)
		return fmt.Errorf("restore session: %w", err)
	}

	s.setPrincipal(principal.Normalized())
	return nil
}

// Login authenticates against the backend. On success the returned
// credential is persisted and the principal installed; on failure the error
// carries the server's message and no session state is mutated.
func (s *Store) Login(ctx context.Context, email, password string) (models.Principal, error) {
	payload, err := adapter.DoJSON[models.AuthPayload](ctx, s.gw, adapter.Call{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   models.LoginRequest{Email: email, Password: password},
	})
	if err != nil {
		return models.Principal{}, err
	}
	if payload.Token == "" {
		return models.Principal{}, ErrMalformedAuthResponse
	}

	if err = s.tokens.Save(ctx, payload.Token); err != nil {
		return models.Principal{}, fmt.Errorf("persist credential: %w", err)
	}

	principal := payload.User.Normalized()
	s.gw.SetToken(payload.Token)
	s.setPrincipal(principal)

	s.logger.Info().Str("user_id", principal.ID).Str("role", string(principal.Role)).Msg("logged in")
	return principal, nil
}

// Signup registers a new account. Registration does not establish a session;
// the account waits for admin approval and the user logs in afterwards.
func (s *Store) Signup(ctx context.Context, req models.SignupRequest) error {
	_, err := s.gw.Do(ctx, adapter.Call{
		Method: http.MethodPost,
		Path:   "/auth/signup",
		Body:   req,
	})
	return err
}

// Logout drops the principal, the gateway token, and the stored credential.
// It is synchronous and cannot fail: a keystore error is logged and
// swallowed, because from the caller's perspective the session is gone
// either way.
func (s *Store) Logout() {
	s.clearPrincipal()
	s.gw.SetToken("")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Err(err).Msg("failed to clear stored credential on logout")
	}
}

// Invalidate is the 401 hook target: identical to Logout. The gateway has
// already dropped its own token by the time this runs.
func (s *Store) Invalidate() {
	s.Logout()
}

// Principal returns a copy of the current principal and whether one is
// present.
func (s *Store) Principal() (models.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.principal == nil {
		return models.Principal{}, false
	}
	return *s.principal, true
}

func (s *Store) setPrincipal(p models.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = &p
}

func (s *Store) clearPrincipal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = nil
}

// tokenExpired peeks at the credential's exp claim without verifying the
// signature; verification is the server's job. Opaque (non-JWT) tokens and
// tokens without an exp claim are passed through to the server.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
