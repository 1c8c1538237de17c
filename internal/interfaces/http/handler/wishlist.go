package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	wishlistapp "github.com/boardsandcats/storefront/internal/application/wishlist"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	BaseHandler
	wishlist *wishlistapp.Service
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlist *wishlistapp.Service) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// ToggleResponse reports wishlist membership after a toggle
type ToggleResponse struct {
	InWishlist bool `json:"in_wishlist"`
}

// List returns the wishlist content
func (h *WishlistHandler) List(c *gin.Context) {
	products, err := h.wishlist.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// Toggle flips wishlist membership for a product
func (h *WishlistHandler) Toggle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	in, err := h.wishlist.Toggle(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToggleResponse{InWishlist: in})
}

// Check reports wishlist membership for a product
func (h *WishlistHandler) Check(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	h.Success(c, ToggleResponse{InWishlist: h.wishlist.Check(c.Request.Context(), id)})
}
