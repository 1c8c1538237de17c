package api

import (
	"context"
	"net/http"

	"github.com/boardsandcats/storefront/internal/domain/identity"
)

// Login implements identity.Provider.
func (c *Client) Login(ctx context.Context, creds identity.Credentials) (*identity.Session, error) {
	var session identity.Session
	if err := c.do(ctx, http.MethodPost, "/login", creds, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Register implements identity.Provider.
func (c *Client) Register(ctx context.Context, reg identity.Registration) error {
	return c.do(ctx, http.MethodPost, "/users/register", reg, nil)
}

// UpdateProfile implements identity.Provider.
func (c *Client) UpdateProfile(ctx context.Context, upd identity.ProfileUpdate) (*identity.User, error) {
	var user identity.User
	if err := c.do(ctx, http.MethodPut, "/users/me", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword implements identity.Provider.
func (c *Client) ChangePassword(ctx context.Context, upd identity.PasswordUpdate) error {
	return c.do(ctx, http.MethodPut, "/users/password", upd, nil)
}
