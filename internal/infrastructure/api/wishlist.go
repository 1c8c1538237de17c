package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boardsandcats/storefront/internal/domain/catalog"
)

// Toggle implements wishlist.Service.
func (c *Client) Toggle(ctx context.Context, productID int64) (bool, error) {
	var inWishlist bool
	path := fmt.Sprintf("/wishlist/%d", productID)
	if err := c.do(ctx, http.MethodPost, path, nil, &inWishlist); err != nil {
		return false, err
	}
	return inWishlist, nil
}

// Check implements wishlist.Service.
func (c *Client) Check(ctx context.Context, productID int64) (bool, error) {
	var inWishlist bool
	path := fmt.Sprintf("/wishlist/check/%d", productID)
	if err := c.do(ctx, http.MethodGet, path, nil, &inWishlist); err != nil {
		return false, err
	}
	return inWishlist, nil
}

// List implements wishlist.Service.
func (c *Client) List(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
