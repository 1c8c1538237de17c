package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boardsandcats/storefront/internal/domain/identity"
)

// ListAddresses implements identity.AddressBook.
func (c *Client) ListAddresses(ctx context.Context) ([]identity.Address, error) {
	var addresses []identity.Address
	if err := c.do(ctx, http.MethodGet, "/addresses", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateAddress implements identity.AddressBook.
func (c *Client) CreateAddress(ctx context.Context, a identity.Address) (*identity.Address, error) {
	var created identity.Address
	if err := c.do(ctx, http.MethodPost, "/addresses", a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAddress implements identity.AddressBook.
func (c *Client) UpdateAddress(ctx context.Context, a identity.Address) (*identity.Address, error) {
	var updated identity.Address
	path := fmt.Sprintf("/addresses/%d", a.ID)
	if err := c.do(ctx, http.MethodPut, path, a, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAddress implements identity.AddressBook.
func (c *Client) DeleteAddress(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/addresses/%d", id), nil, nil)
}
