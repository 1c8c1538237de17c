package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	catalogapp "github.com/boardsandcats/storefront/internal/application/catalog"
	"github.com/boardsandcats/storefront/internal/domain/catalog"
	"github.com/boardsandcats/storefront/internal/interfaces/http/dto"
	"github.com/boardsandcats/storefront/tests/testutil"
)

func newCatalogHandler() *CatalogHandler {
	repo := &stubCatalogRepo{products: map[int64]catalog.Product{
		1: {ID: 1, Name: "Catan", Price: decimal.NewFromInt(250)},
		2: {ID: 2, Name: "Wingspan", Price: decimal.NewFromInt(320), Promo: true},
	}}
	return NewCatalogHandler(catalogapp.NewService(repo, zap.NewNop()))
}

func TestCatalogList(t *testing.T) {
	h := newCatalogHandler()

	testutil.RunHTTPTestCase(t, h.List, testutil.HTTPTestCase{
		Path:           "/catalog/products?promo=true",
		ExpectedStatus: http.StatusOK,
		Validate: func(t *testing.T, tc *testutil.TestContext) {
			resp := testutil.JSONResponseAs[dto.Response](t, tc)
			assert.True(t, resp.Success)
			assert.Equal(t, 1, resp.Meta.Total)
		},
	})
}

func TestCatalogListRejectsBadSort(t *testing.T) {
	h := newCatalogHandler()

	testutil.RunHTTPTestCase(t, h.List, testutil.HTTPTestCase{
		Path:           "/catalog/products?sort_by=rating",
		ExpectedStatus: http.StatusBadRequest,
	})
}

func TestCatalogGetByID(t *testing.T) {
	h := newCatalogHandler()

	testutil.RunHTTPTestCase(t, h.GetByID, testutil.HTTPTestCase{
		Path:           "/catalog/products/1",
		Params:         gin.Params{{Key: "id", Value: "1"}},
		ExpectedStatus: http.StatusOK,
		Validate: func(t *testing.T, tc *testutil.TestContext) {
			testutil.AssertSuccessResponse(t, tc)
		},
	})
}

func TestCatalogGetByIDNotFound(t *testing.T) {
	h := newCatalogHandler()

	testutil.RunHTTPTestCase(t, h.GetByID, testutil.HTTPTestCase{
		Path:           "/catalog/products/42",
		Params:         gin.Params{{Key: "id", Value: "42"}},
		ExpectedStatus: http.StatusNotFound,
		Validate: func(t *testing.T, tc *testutil.TestContext) {
			testutil.AssertErrorResponse(t, tc, "NOT_FOUND")
		},
	})
}
