package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/domain/order"
	"github.com/boardsandcats/storefront/internal/domain/shared"
)

// Cart is the slice of the cart manager the checkout flow needs.
type Cart interface {
	IsEmpty() bool
	Clear()
}

// AuthState reports the current authentication level.
type AuthState interface {
	Authenticated() bool
}

// Service handles order history and checkout.
type Service struct {
	repo    order.Repository
	support order.CheckoutSupport
	cart    Cart
	auth    AuthState
	log     *zap.Logger
}

// NewService creates an order service.
func NewService(repo order.Repository, support order.CheckoutSupport, cart Cart, auth AuthState, log *zap.Logger) *Service {
	return &Service{repo: repo, support: support, cart: cart, auth: auth, log: log}
}

// History lists the user's orders.
func (s *Service) History(ctx context.Context) ([]order.Order, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrNotAuthenticated
	}
	return s.repo.ListOrders(ctx)
}

// Get returns one order.
func (s *Service) Get(ctx context.Context, id int64) (*order.Order, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrNotAuthenticated
	}
	if id <= 0 {
		return nil, shared.ErrInvalidInput
	}
	return s.repo.GetOrder(ctx, id)
}

// PlaceOrder checks out the current cart. On success the local cart is
// cleared; the subsequent debounced sync then empties the server copy too.
func (s *Service) PlaceOrder(ctx context.Context, req order.CheckoutRequest) (*order.Order, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrNotAuthenticated
	}
	if s.cart.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot check out an empty cart")
	}
	if req.AddressID <= 0 {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "A delivery address is required")
	}
	if req.PaymentMethodID <= 0 {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "A payment method is required")
	}

	placed, err := s.repo.Checkout(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	s.log.Info("Order placed",
		zap.Int64("order_id", placed.ID),
		zap.String("status", string(placed.Status)))
	return placed, nil
}

// ValidateCoupon checks a discount code with the backend.
func (s *Service) ValidateCoupon(ctx context.Context, code string) (*order.Coupon, error) {
	if code == "" {
		return nil, shared.ErrInvalidInput
	}
	return s.support.ValidateCoupon(ctx, code)
}

// PaymentMethods lists the available payment options.
func (s *Service) PaymentMethods(ctx context.Context) ([]order.PaymentMethod, error) {
	return s.support.ListPaymentMethods(ctx)
}
