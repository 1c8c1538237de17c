package identity

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/domain/identity"
	"github.com/boardsandcats/storefront/internal/domain/shared"
)

// AuthObserver is notified with the current authentication level. The cart
// manager implements it; observers must tolerate repeated notifications with
// the same value.
type AuthObserver interface {
	SetAuthenticated(ctx context.Context, authenticated bool)
}

// TokenSink receives the session token for outgoing requests.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

// Service manages the user session: login, logout, registration, session
// restore across restarts, and profile maintenance. It owns the
// authenticated flag the rest of the app observes.
type Service struct {
	provider identity.Provider
	store    identity.SessionStore
	tokens   TokenSink
	validate *validator.Validate
	log      *zap.Logger

	mu            sync.RWMutex
	authenticated bool
	user          *identity.User

	observers []AuthObserver
}

// NewService creates an identity service.
func NewService(provider identity.Provider, store identity.SessionStore, tokens TokenSink, log *zap.Logger) *Service {
	return &Service{
		provider: provider,
		store:    store,
		tokens:   tokens,
		validate: validator.New(),
		log:      log,
	}
}

// Subscribe registers an observer for auth level changes. Observers are
// notified synchronously, in registration order.
func (s *Service) Subscribe(obs AuthObserver) {
	s.observers = append(s.observers, obs)
}

// Authenticated reports the current auth level.
func (s *Service) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// CurrentUser returns the signed-in user, or nil.
func (s *Service) CurrentUser() *identity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Restore re-enters a stored session at startup. A missing, unreadable or
// expired session leaves the app signed out; it is never an error surfaced
// to the caller.
func (s *Service) Restore(ctx context.Context) {
	sess, err := s.store.LoadSession()
	if err != nil {
		s.log.Warn("Could not read stored session", zap.Error(err))
		return
	}
	if sess == nil {
		return
	}
	if expired(sess.Token) {
		s.log.Info("Stored session expired, signing out")
		if err := s.store.ClearSession(); err != nil {
			s.log.Warn("Could not clear expired session", zap.Error(err))
		}
		return
	}

	s.tokens.SetToken(sess.Token)
	s.mu.Lock()
	s.authenticated = true
	user := sess.User
	s.user = &user
	s.mu.Unlock()

	s.notify(ctx, true)
	s.log.Info("Session restored", zap.String("username", sess.User.Username))
}

// Login authenticates against the backend and persists the session.
func (s *Service) Login(ctx context.Context, creds identity.Credentials) (*identity.User, error) {
	if err := s.validate.Struct(creds); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	sess, err := s.provider.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveSession(*sess); err != nil {
		// the session still works for this run; it just won't survive a restart
		s.log.Warn("Could not persist session", zap.Error(err))
	}
	s.tokens.SetToken(sess.Token)

	s.mu.Lock()
	s.authenticated = true
	user := sess.User
	s.user = &user
	s.mu.Unlock()

	s.notify(ctx, true)
	return &sess.User, nil
}

// Logout discards the session locally. There is no server-side call; the
// token simply stops being sent.
func (s *Service) Logout(ctx context.Context) {
	if err := s.store.ClearSession(); err != nil {
		s.log.Warn("Could not clear stored session", zap.Error(err))
	}
	s.tokens.ClearToken()

	s.mu.Lock()
	s.authenticated = false
	s.user = nil
	s.mu.Unlock()

	s.notify(ctx, false)
}

// Register creates a new account. The user still has to log in afterwards.
func (s *Service) Register(ctx context.Context, reg identity.Registration) error {
	if err := s.validate.Struct(reg); err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	return s.provider.Register(ctx, reg)
}

// UpdateProfile updates the editable profile fields and refreshes the
// stored session user.
func (s *Service) UpdateProfile(ctx context.Context, upd identity.ProfileUpdate) (*identity.User, error) {
	if !s.Authenticated() {
		return nil, shared.ErrNotAuthenticated
	}
	if err := s.validate.Struct(upd); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	user, err := s.provider.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	u := *user
	s.user = &u
	s.mu.Unlock()

	if sess, err := s.store.LoadSession(); err == nil && sess != nil {
		sess.User = *user
		if err := s.store.SaveSession(*sess); err != nil {
			s.log.Warn("Could not persist updated profile", zap.Error(err))
		}
	}
	return user, nil
}

// ChangePassword updates the account password.
func (s *Service) ChangePassword(ctx context.Context, upd identity.PasswordUpdate) error {
	if !s.Authenticated() {
		return shared.ErrNotAuthenticated
	}
	if err := s.validate.Struct(upd); err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	return s.provider.ChangePassword(ctx, upd)
}

func (s *Service) notify(ctx context.Context, authenticated bool) {
	for _, obs := range s.observers {
		obs.SetAuthenticated(ctx, authenticated)
	}
}

// expired inspects the token's exp claim locally, without verifying the
// signature; validity is the backend's call, this only avoids restoring a
// session that is guaranteed dead. Opaque tokens pass through.
func expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
