package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/domain/catalog"
)

// MockReadRepository is a mock implementation of catalog.ReadRepository
type MockReadRepository struct {
	mock.Mock
}

func (m *MockReadRepository) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockReadRepository) ListProductsByCategory(ctx context.Context, categoryID int64) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockReadRepository) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockReadRepository) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Catan", Description: "Trade and build", Price: decimal.RequireFromString("249.90"), Promo: false},
		{ID: 2, Name: "Azul", Description: "Tile drafting", Price: decimal.RequireFromString("199.00"), Promo: true},
		{ID: 3, Name: "Carcassonne", Description: "Tile placement", Price: decimal.RequireFromString("179.90"), Promo: false},
	}
}

func TestBrowseFiltersBySearch(t *testing.T) {
	repo := new(MockReadRepository)
	repo.On("ListProducts", mock.Anything).Return(sampleProducts(), nil)
	svc := NewService(repo, zap.NewNop())

	page, err := svc.Browse(context.Background(), BrowseQuery{Search: "tile"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Items[0].ID)
	assert.Equal(t, int64(3), page.Items[1].ID)
}

func TestBrowsePromoOnly(t *testing.T) {
	repo := new(MockReadRepository)
	repo.On("ListProducts", mock.Anything).Return(sampleProducts(), nil)
	svc := NewService(repo, zap.NewNop())

	page, err := svc.Browse(context.Background(), BrowseQuery{PromoOnly: true})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Azul", page.Items[0].Name)
}

func TestBrowseSortsByPrice(t *testing.T) {
	repo := new(MockReadRepository)
	repo.On("ListProducts", mock.Anything).Return(sampleProducts(), nil)
	svc := NewService(repo, zap.NewNop())

	page, err := svc.Browse(context.Background(), BrowseQuery{SortBy: SortByPriceAsc})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Carcassonne", page.Items[0].Name)
	assert.Equal(t, "Catan", page.Items[2].Name)
}

func TestBrowsePaginates(t *testing.T) {
	repo := new(MockReadRepository)
	repo.On("ListProducts", mock.Anything).Return(sampleProducts(), nil)
	svc := NewService(repo, zap.NewNop())

	page, err := svc.Browse(context.Background(), BrowseQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestBrowsePageBeyondEnd(t *testing.T) {
	repo := new(MockReadRepository)
	repo.On("ListProducts", mock.Anything).Return(sampleProducts(), nil)
	svc := NewService(repo, zap.NewNop())

	page, err := svc.Browse(context.Background(), BrowseQuery{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)
}

func TestBrowseByCategoryUsesCategoryEndpoint(t *testing.T) {
	repo := new(MockReadRepository)
	repo.On("ListProductsByCategory", mock.Anything, int64(5)).Return(sampleProducts()[:1], nil)
	svc := NewService(repo, zap.NewNop())

	page, err := svc.Browse(context.Background(), BrowseQuery{CategoryID: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	repo.AssertExpectations(t)
}

func TestProductRejectsInvalidID(t *testing.T) {
	svc := NewService(new(MockReadRepository), zap.NewNop())

	_, err := svc.Product(context.Background(), 0)
	assert.Error(t, err)
}
