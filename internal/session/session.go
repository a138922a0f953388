// Package session tracks the signed-in user across CLI invocations: the
// bearer token persisted on disk, whether it is still valid, and whether the
// user operates a kitchen (which decides their role in the order workflow).
package session

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/adresur/adresur-go/internal/api"
	"github.com/adresur/adresur-go/internal/domain/catalog"
	"github.com/adresur/adresur-go/internal/domain/order"
)

// ErrNotSignedIn indicates an operation that needs an authenticated session.
var ErrNotSignedIn = errors.New("not signed in: run login first")

// Store persists the bearer token between sessions.
type Store interface {
	LoadToken() (string, error)
	SaveToken(token string) error
	ClearToken() error
}

// Session is the explicit replacement for ambient token state: constructed
// once at startup, torn down on logout.
type Session struct {
	client *api.Client
	store  Store

	signedIn bool
	cook     *catalog.CookProfile
}

// New creates a Session over the given client and token store.
func New(client *api.Client, store Store) *Session {
	return &Session{client: client, store: store}
}

// Resume restores a previous session: load the persisted token, install it on
// the client, and validate it against the backend. An invalid token is
// cleared silently; the user is simply signed out. Backend unavailability is
// an error so a flaky network does not destroy a valid session.
func (s *Session) Resume(ctx context.Context) error {
	token, err := s.store.LoadToken()
	if err != nil {
		return errors.Wrap(err, "load token")
	}
	if token == "" {
		return nil
	}

	s.client.SetToken(token)
	return s.probe(ctx)
}

// Login authenticates, persists the token, and resolves the user's cook
// profile.
func (s *Session) Login(ctx context.Context, email, password string) error {
	tok, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	if err := s.store.SaveToken(tok.AccessToken); err != nil {
		return errors.Wrap(err, "persist token")
	}
	return s.probe(ctx)
}

// Logout clears the token everywhere and forgets the in-memory identity.
func (s *Session) Logout() error {
	s.client.ClearToken()
	s.signedIn = false
	s.cook = nil
	return errors.Wrap(s.store.ClearToken(), "clear token")
}

// probe validates the installed token via the cook-profile lookup; the
// backend has no dedicated whoami endpoint. 404 means a valid session for a
// user who is not a cook.
func (s *Session) probe(ctx context.Context) error {
	profile, err := s.client.GetMyCookProfile(ctx)
	switch {
	case err == nil:
		s.signedIn = true
		s.cook = &profile
		return nil
	case api.IsNotFound(err):
		s.signedIn = true
		s.cook = nil
		return nil
	case api.IsUnauthorized(err):
		zctx.From(ctx).Info("Stored token rejected, signing out")
		s.client.ClearToken()
		s.signedIn = false
		s.cook = nil
		if err := s.store.ClearToken(); err != nil {
			zctx.From(ctx).Warn("Failed to clear stored token", zap.Error(err))
		}
		return nil
	default:
		return errors.Wrap(err, "validate session")
	}
}

// SignedIn reports whether a valid session is active.
func (s *Session) SignedIn() bool {
	return s.signedIn
}

// CookProfile returns the user's cook profile, or nil when they have none.
func (s *Session) CookProfile() *catalog.CookProfile {
	return s.cook
}

// Role returns the order-workflow role this session acts as.
func (s *Session) Role() order.Role {
	if s.cook != nil {
		return order.RoleCook
	}
	return order.RoleBuyer
}

// RefreshCookProfile re-resolves the cook profile, e.g. after creating one.
func (s *Session) RefreshCookProfile(ctx context.Context) error {
	if !s.signedIn {
		return ErrNotSignedIn
	}
	return s.probe(ctx)
}
