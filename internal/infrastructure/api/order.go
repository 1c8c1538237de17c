package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/boardsandcats/storefront/internal/domain/order"
)

// ListOrders implements order.Repository.
func (c *Client) ListOrders(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder implements order.Repository.
func (c *Client) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	var o order.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Checkout implements order.Repository. The backend places the order from
// its stored cart; shipping and payment are computed server-side.
func (c *Client) Checkout(ctx context.Context, req order.CheckoutRequest) (*order.Order, error) {
	var o order.Order
	if err := c.do(ctx, http.MethodPost, "/checkout", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ValidateCoupon implements order.CheckoutSupport.
func (c *Client) ValidateCoupon(ctx context.Context, code string) (*order.Coupon, error) {
	var coupon order.Coupon
	path := "/coupons/validate/" + url.PathEscape(code)
	if err := c.do(ctx, http.MethodGet, path, nil, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// ListPaymentMethods implements order.CheckoutSupport.
func (c *Client) ListPaymentMethods(ctx context.Context) ([]order.PaymentMethod, error) {
	var methods []order.PaymentMethod
	if err := c.do(ctx, http.MethodGet, "/payment-methods", nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}
