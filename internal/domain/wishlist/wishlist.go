package wishlist

import (
	"context"

	"github.com/boardsandcats/storefront/internal/domain/catalog"
)

// Service is the wishlist surface of the store API. The wishlist lives
// entirely on the backend; there is no local mirror.
type Service interface {
	// Toggle flips membership for a product and returns the new state.
	Toggle(ctx context.Context, productID int64) (bool, error)
	Check(ctx context.Context, productID int64) (bool, error)
	List(ctx context.Context) ([]catalog.Product, error)
}
