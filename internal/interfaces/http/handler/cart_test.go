package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartapp "github.com/boardsandcats/storefront/internal/application/cart"
	catalogapp "github.com/boardsandcats/storefront/internal/application/catalog"
	"github.com/boardsandcats/storefront/internal/domain/cart"
	"github.com/boardsandcats/storefront/internal/domain/catalog"
	"github.com/boardsandcats/storefront/internal/domain/shared"
	"github.com/boardsandcats/storefront/tests/testutil"
)

type memStorage struct {
	lines []cart.Line
}

func (s *memStorage) LoadCart() ([]cart.Line, error) { return s.lines, nil }
func (s *memStorage) SaveCart(lines []cart.Line) error {
	s.lines = lines
	return nil
}

type nullRemote struct{}

func (nullRemote) FetchCart(context.Context) (*cart.Snapshot, error) { return &cart.Snapshot{}, nil }
func (nullRemote) SaveCart(context.Context, cart.Envelope) error     { return nil }

type stubCatalogRepo struct {
	products map[int64]catalog.Product
}

func (r *stubCatalogRepo) ListProducts(context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubCatalogRepo) ListProductsByCategory(context.Context, int64) ([]catalog.Product, error) {
	return nil, nil
}

func (r *stubCatalogRepo) GetProduct(_ context.Context, id int64) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &p, nil
}

func (r *stubCatalogRepo) ListCategories(context.Context) ([]catalog.Category, error) {
	return nil, nil
}

func newCartHandler(t *testing.T) *CartHandler {
	t.Helper()

	manager := cartapp.NewManager(&memStorage{}, nullRemote{}, zap.NewNop())
	t.Cleanup(manager.Close)

	repo := &stubCatalogRepo{products: map[int64]catalog.Product{
		7: {ID: 7, Name: "Catan", Price: decimal.NewFromInt(250)},
	}}
	svc := catalogapp.NewService(repo, zap.NewNop())

	return NewCartHandler(manager, svc)
}

func TestCartGetEmpty(t *testing.T) {
	h := newCartHandler(t)

	ctx := testutil.NewTestContext(t)
	h.Get(ctx.Context)

	require.Equal(t, http.StatusOK, ctx.ResponseCode())
	testutil.AssertSuccessResponse(t, ctx)
}

func TestCartAddItem(t *testing.T) {
	h := newCartHandler(t)

	testutil.RunHTTPTestCase(t, h.AddItem, testutil.HTTPTestCase{
		Method:         http.MethodPost,
		Path:           "/cart/items/7",
		Params:         gin.Params{{Key: "id", Value: "7"}},
		ExpectedStatus: http.StatusOK,
		Validate: func(t *testing.T, tc *testutil.TestContext) {
			testutil.AssertSuccessResponse(t, tc)
			assert.Equal(t, 1, h.cart.Count())
		},
	})
}

func TestCartAddUnknownProduct(t *testing.T) {
	h := newCartHandler(t)

	testutil.RunHTTPTestCase(t, h.AddItem, testutil.HTTPTestCase{
		Method:         http.MethodPost,
		Path:           "/cart/items/999",
		Params:         gin.Params{{Key: "id", Value: "999"}},
		ExpectedStatus: http.StatusNotFound,
		Validate: func(t *testing.T, tc *testutil.TestContext) {
			testutil.AssertErrorResponse(t, tc, "NOT_FOUND")
		},
	})

	assert.True(t, h.cart.IsEmpty())
}

func TestCartAddBadID(t *testing.T) {
	h := newCartHandler(t)

	testutil.RunHTTPTestCase(t, h.AddItem, testutil.HTTPTestCase{
		Method:         http.MethodPost,
		Path:           "/cart/items/abc",
		Params:         gin.Params{{Key: "id", Value: "abc"}},
		ExpectedStatus: http.StatusBadRequest,
	})
}

func TestCartSetQuantity(t *testing.T) {
	h := newCartHandler(t)
	h.cart.Add(catalog.Product{ID: 7, Name: "Catan", Price: decimal.NewFromInt(250)})

	testutil.RunHTTPTestCase(t, h.SetItemQuantity, testutil.HTTPTestCase{
		Method:         http.MethodPut,
		Path:           "/cart/items/7",
		Params:         gin.Params{{Key: "id", Value: "7"}},
		Body:           SetQuantityRequest{Quantity: 4},
		ExpectedStatus: http.StatusOK,
		Validate: func(t *testing.T, tc *testutil.TestContext) {
			assert.Equal(t, 4, h.cart.Count())
		},
	})
}

func TestCartSetQuantityRejectsZero(t *testing.T) {
	h := newCartHandler(t)
	h.cart.Add(catalog.Product{ID: 7, Name: "Catan", Price: decimal.NewFromInt(250)})

	testutil.RunHTTPTestCase(t, h.SetItemQuantity, testutil.HTTPTestCase{
		Method:         http.MethodPut,
		Path:           "/cart/items/7",
		Params:         gin.Params{{Key: "id", Value: "7"}},
		Body:           map[string]int{"quantity": 0},
		ExpectedStatus: http.StatusBadRequest,
	})

	// removal is explicit, a rejected request changes nothing
	assert.Equal(t, 1, h.cart.Count())
}

func TestCartRemoveItem(t *testing.T) {
	h := newCartHandler(t)
	h.cart.Add(catalog.Product{ID: 7, Name: "Catan", Price: decimal.NewFromInt(250)})

	testutil.RunHTTPTestCase(t, h.RemoveItem, testutil.HTTPTestCase{
		Method:         http.MethodDelete,
		Path:           "/cart/items/7",
		Params:         gin.Params{{Key: "id", Value: "7"}},
		ExpectedStatus: http.StatusOK,
	})

	assert.True(t, h.cart.IsEmpty())
}

func TestCartClear(t *testing.T) {
	h := newCartHandler(t)
	h.cart.Add(catalog.Product{ID: 7, Name: "Catan", Price: decimal.NewFromInt(250)})

	ctx := testutil.NewTestContext(t)
	h.Clear(ctx.Context)

	assert.Equal(t, http.StatusNoContent, ctx.ResponseCode())
	assert.True(t, h.cart.IsEmpty())
}
