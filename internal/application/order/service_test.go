package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/domain/order"
)

// MockRepository is a mock implementation of order.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListOrders(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockRepository) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockRepository) Checkout(ctx context.Context, req order.CheckoutRequest) (*order.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// MockCheckoutSupport is a mock implementation of order.CheckoutSupport
type MockCheckoutSupport struct {
	mock.Mock
}

func (m *MockCheckoutSupport) ValidateCoupon(ctx context.Context, code string) (*order.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Coupon), args.Error(1)
}

func (m *MockCheckoutSupport) ListPaymentMethods(ctx context.Context) ([]order.PaymentMethod, error) {
	args := m.Called(ctx)
	return args.Get(0).([]order.PaymentMethod), args.Error(1)
}

type fakeCart struct {
	empty   bool
	cleared bool
}

func (c *fakeCart) IsEmpty() bool { return c.empty }
func (c *fakeCart) Clear()        { c.cleared = true }

type fakeAuth struct {
	authenticated bool
}

func (a *fakeAuth) Authenticated() bool { return a.authenticated }

func validCheckout() order.CheckoutRequest {
	return order.CheckoutRequest{AddressID: 1, PaymentMethodID: 2}
}

func TestPlaceOrderClearsCartOnSuccess(t *testing.T) {
	repo := new(MockRepository)
	cart := &fakeCart{}
	placed := &order.Order{ID: 99, Status: order.StatusPending}
	repo.On("Checkout", mock.Anything, validCheckout()).Return(placed, nil)

	svc := NewService(repo, new(MockCheckoutSupport), cart, &fakeAuth{authenticated: true}, zap.NewNop())

	got, err := svc.PlaceOrder(context.Background(), validCheckout())
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.ID)
	assert.True(t, cart.cleared)
}

func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	repo := new(MockRepository)
	cart := &fakeCart{}
	repo.On("Checkout", mock.Anything, mock.Anything).Return(nil, errors.New("payment refused"))

	svc := NewService(repo, new(MockCheckoutSupport), cart, &fakeAuth{authenticated: true}, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), validCheckout())
	assert.Error(t, err)
	assert.False(t, cart.cleared)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockCheckoutSupport), &fakeCart{empty: true}, &fakeAuth{authenticated: true}, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), validCheckout())
	assert.Error(t, err)
}

func TestPlaceOrderValidatesRequest(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockCheckoutSupport), &fakeCart{}, &fakeAuth{authenticated: true}, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), order.CheckoutRequest{PaymentMethodID: 2})
	assert.Error(t, err)

	_, err = svc.PlaceOrder(context.Background(), order.CheckoutRequest{AddressID: 1})
	assert.Error(t, err)
}

func TestOrdersRequireAuth(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockCheckoutSupport), &fakeCart{}, &fakeAuth{}, zap.NewNop())

	_, err := svc.History(context.Background())
	assert.Error(t, err)

	_, err = svc.Get(context.Background(), 1)
	assert.Error(t, err)

	_, err = svc.PlaceOrder(context.Background(), validCheckout())
	assert.Error(t, err)
}

func TestValidateCouponRequiresCode(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockCheckoutSupport), &fakeCart{}, &fakeAuth{authenticated: true}, zap.NewNop())

	_, err := svc.ValidateCoupon(context.Background(), "")
	assert.Error(t, err)
}
