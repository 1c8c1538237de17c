package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/boardsandcats/storefront/internal/domain/catalog"
)

// SnapshotLine is one entry of the server-held cart. It may diverge from the
// local cart: PriceAtSave is the price when the server last persisted the
// cart, and ValidationMessage flags stock-insufficient lines. Both are
// advisory display data; reconciliation discards them.
type SnapshotLine struct {
	Product           catalog.Product `json:"product"`
	Quantity          int             `json:"quantity"`
	PriceAtSave       decimal.Decimal `json:"priceAtSave"`
	ValidationMessage string          `json:"validationMessage,omitempty"`
}

// Snapshot is the server-held cart for the authenticated user.
type Snapshot struct {
	ID    int64           `json:"id"`
	Items []SnapshotLine  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// EnvelopeItem references a product by ID only; the server re-resolves
// product state authoritatively on every push.
type EnvelopeItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Envelope is the wire representation pushed to the server. The server
// treats each push as a replace-all of the stored cart, not a merge.
type Envelope struct {
	Items []EnvelopeItem `json:"items"`
}

// NewEnvelope builds the sync payload for a set of cart lines.
func NewEnvelope(lines []Line) Envelope {
	items := make([]EnvelopeItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, EnvelopeItem{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	return Envelope{Items: items}
}

// RemoteService is the server-side cart endpoint.
type RemoteService interface {
	// FetchCart returns the stored cart, or an empty snapshot when the user
	// has none saved.
	FetchCart(ctx context.Context) (*Snapshot, error)
	// SaveCart overwrites the stored cart with the envelope content.
	SaveCart(ctx context.Context, env Envelope) error
}

// Storage is the durable local mirror of the cart. Implementations must
// treat malformed stored content as an empty cart rather than an error.
type Storage interface {
	LoadCart() ([]Line, error)
	SaveCart(lines []Line) error
}
