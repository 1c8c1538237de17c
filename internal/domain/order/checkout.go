package order

import "context"

// Coupon is a validated discount code.
type Coupon struct {
	Code       string `json:"code"`
	Percentage int    `json:"percentage"`
}

// PaymentMethod is a payment option offered by the backend. Payment
// processing itself is entirely server-side.
type PaymentMethod struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// CheckoutSupport covers the lookups the checkout flow needs.
type CheckoutSupport interface {
	ValidateCoupon(ctx context.Context, code string) (*Coupon, error)
	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
}
