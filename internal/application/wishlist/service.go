package wishlist

import (
	"context"

	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/domain/catalog"
	"github.com/boardsandcats/storefront/internal/domain/shared"
	"github.com/boardsandcats/storefront/internal/domain/wishlist"
)

// AuthState reports the current authentication level.
type AuthState interface {
	Authenticated() bool
}

// Service guards the backend wishlist behind the auth level. The wishlist
// has no local mirror and no offline behavior.
type Service struct {
	remote wishlist.Service
	auth   AuthState
	log    *zap.Logger
}

// NewService creates a wishlist service.
func NewService(remote wishlist.Service, auth AuthState, log *zap.Logger) *Service {
	return &Service{remote: remote, auth: auth, log: log}
}

// Toggle flips wishlist membership and returns the new state.
func (s *Service) Toggle(ctx context.Context, productID int64) (bool, error) {
	if !s.auth.Authenticated() {
		return false, shared.ErrNotAuthenticated
	}
	return s.remote.Toggle(ctx, productID)
}

// Check reports membership. Failures degrade to "not in wishlist"; the
// check is decoration on product pages, never worth an error dialog.
func (s *Service) Check(ctx context.Context, productID int64) bool {
	if !s.auth.Authenticated() {
		return false
	}
	in, err := s.remote.Check(ctx, productID)
	if err != nil {
		s.log.Debug("Wishlist check failed", zap.Int64("product_id", productID), zap.Error(err))
		return false
	}
	return in
}

// List returns the wishlist content.
func (s *Service) List(ctx context.Context) ([]catalog.Product, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrNotAuthenticated
	}
	return s.remote.List(ctx)
}
