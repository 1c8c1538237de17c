package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/boardsandcats/storefront/internal/application/catalog"
)

// CatalogHandler handles catalog browsing endpoints
type CatalogHandler struct {
	BaseHandler
	catalog *catalogapp.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// BrowseRequest represents catalog browse query parameters
type BrowseRequest struct {
	Search     string `form:"search"`
	CategoryID int64  `form:"category_id"`
	PromoOnly  bool   `form:"promo"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=name price_asc price_desc"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// List returns a page of products
func (h *CatalogHandler) List(c *gin.Context) {
	var req BrowseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.catalog.Browse(c.Request.Context(), catalogapp.BrowseQuery{
		Search:     req.Search,
		CategoryID: req.CategoryID,
		PromoOnly:  req.PromoOnly,
		SortBy:     req.SortBy,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns a single product
func (h *CatalogHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Categories returns all categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}
