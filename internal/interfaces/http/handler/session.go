package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/boardsandcats/storefront/internal/application/identity"
	"github.com/boardsandcats/storefront/internal/domain/identity"
)

// SessionHandler handles the local session endpoints
type SessionHandler struct {
	BaseHandler
	identity *identityapp.Service
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(identity *identityapp.Service) *SessionHandler {
	return &SessionHandler{identity: identity}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse reports the current session state
type SessionResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          *identity.User `json:"user,omitempty"`
}

// Status returns the current session state
func (h *SessionHandler) Status(c *gin.Context) {
	h.Success(c, SessionResponse{
		Authenticated: h.identity.Authenticated(),
		User:          h.identity.CurrentUser(),
	})
}

// Login signs in against the backend and triggers cart reconciliation
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.identity.Login(c.Request.Context(), identity.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, SessionResponse{Authenticated: true, User: user})
}

// Logout discards the session and clears the cart
func (h *SessionHandler) Logout(c *gin.Context) {
	h.identity.Logout(c.Request.Context())
	h.NoContent(c)
}
