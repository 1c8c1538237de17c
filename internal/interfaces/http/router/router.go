package router

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/infrastructure/logger"
	"github.com/boardsandcats/storefront/internal/interfaces/http/handler"
)

// Handlers bundles the facade handlers for route registration
type Handlers struct {
	Cart     *handler.CartHandler
	Catalog  *handler.CatalogHandler
	Wishlist *handler.WishlistHandler
	Session  *handler.SessionHandler
}

// RequestID returns a middleware that assigns each request an ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// New builds the facade engine with middleware and routes registered
func New(log *zap.Logger, h Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	cart := api.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items/:id", h.Cart.AddItem)
		cart.PUT("/items/:id", h.Cart.SetItemQuantity)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
	}

	catalog := api.Group("/catalog")
	{
		catalog.GET("/products", h.Catalog.List)
		catalog.GET("/products/:id", h.Catalog.GetByID)
		catalog.GET("/categories", h.Catalog.Categories)
	}

	wishlist := api.Group("/wishlist")
	{
		wishlist.GET("", h.Wishlist.List)
		wishlist.POST("/:id", h.Wishlist.Toggle)
		wishlist.GET("/check/:id", h.Wishlist.Check)
	}

	session := api.Group("/session")
	{
		session.GET("", h.Session.Status)
		session.POST("", h.Session.Login)
		session.DELETE("", h.Session.Logout)
	}

	return engine
}
