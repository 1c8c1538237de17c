package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	cartapp "github.com/boardsandcats/storefront/internal/application/cart"
	catalogapp "github.com/boardsandcats/storefront/internal/application/catalog"
	"github.com/boardsandcats/storefront/internal/domain/catalog"
)

// CartHandler handles local cart endpoints
type CartHandler struct {
	BaseHandler
	cart    *cartapp.Manager
	catalog *catalogapp.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cart *cartapp.Manager, catalog *catalogapp.Service) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

// CartLineResponse represents one cart line
type CartLineResponse struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartResponse represents the cart content
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Count int                `json:"count"`
	Total decimal.Decimal    `json:"total"`
}

// SetQuantityRequest represents a quantity change for a cart line
type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// Get returns the current cart
func (h *CartHandler) Get(c *gin.Context) {
	h.Success(c, h.cartResponse())
}

// AddItem fetches the product and adds one unit to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
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

	h.cart.Add(*product)
	h.Success(c, h.cartResponse())
}

// SetItemQuantity sets the quantity for a cart line
func (h *CartHandler) SetItemQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.cart.SetQuantity(id, req.Quantity)
	h.Success(c, h.cartResponse())
}

// RemoveItem drops a product from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	h.cart.Remove(id)
	h.Success(c, h.cartResponse())
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear()
	h.NoContent(c)
}

func (h *CartHandler) cartResponse() CartResponse {
	lines := h.cart.Lines()
	items := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartLineResponse{
			Product:  l.Product,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
	}
	return CartResponse{
		Items: items,
		Count: h.cart.Count(),
		Total: h.cart.Total(),
	}
}
