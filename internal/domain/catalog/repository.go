package catalog

import "context"

// ReadRepository is the catalog read surface of the store API. The backend
// returns full result sets; searching, sorting and pagination happen on the
// client (see application/catalog).
type ReadRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
}
