package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boardsandcats/storefront/internal/domain/catalog"
)

// Status is the backend-owned order lifecycle state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCanceled  Status = "CANCELED"
)

// Item is one purchased line, frozen at checkout time. Unlike cart lines,
// UnitPrice and Subtotal are stored values: they record what was charged,
// not the current catalog price.
type Item struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Address is the delivery address snapshot stored with the order.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Payment describes how the order was paid.
type Payment struct {
	Description string `json:"description"`
}

// ClientDetails identifies the buyer as recorded on the order.
type ClientDetails struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Order is a placed order as returned by the backend.
type Order struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"date"`
	Status        Status          `json:"status"`
	Shipping      decimal.Decimal `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
	Discount      decimal.Decimal `json:"discount"`
	TrackingCode  string          `json:"trackingCode,omitempty"`
	Address       Address         `json:"address"`
	Payment       Payment         `json:"payment"`
	ClientDetails ClientDetails   `json:"clientDetails"`
	Items         []Item          `json:"items"`
}

// CheckoutRequest places an order for the current server-side cart content.
// Payment and shipping computation happen on the backend.
type CheckoutRequest struct {
	AddressID       int64  `json:"addressId"`
	PaymentMethodID int64  `json:"paymentMethodId"`
	CouponCode      string `json:"couponCode,omitempty"`
}

// Repository is the order surface of the store API.
type Repository interface {
	ListOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	Checkout(ctx context.Context, req CheckoutRequest) (*Order, error)
}
