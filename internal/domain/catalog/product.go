package catalog

import (
	"github.com/shopspring/decimal"
)

// Category is a product category as served by the backend catalog.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is the backend-owned catalog entry. The client treats it as an
// opaque value object: it is never mutated locally, only displayed and
// referenced by ID from cart lines and wishlists.
//
// Field tags follow the backend wire names, including the Portuguese ones
// the catalog service exposes for board-game metadata.
type Product struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       Category        `json:"category"`
	Promo          bool            `json:"promo"`
	Stock          int             `json:"stock"`
	Mechanics      string          `json:"mechanics,omitempty"`
	Players        string          `json:"players,omitempty"`
	Editor         string          `json:"editor,omitempty"`
	ImageURL       string          `json:"imageUrl"`
	OtherImages    []string        `json:"otherImages,omitempty"`
	Duration       string          `json:"duracao,omitempty"`
	RecommendedAge string          `json:"idadeRecomendada,omitempty"`
}

// InStock reports whether at least one unit is available. Stock levels are
// advisory on the client; the backend revalidates at checkout.
func (p Product) InStock() bool {
	return p.Stock > 0
}
