package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boardsandcats/storefront/internal/domain/catalog"
)

// ListProducts implements catalog.ReadRepository.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductsByCategory implements catalog.ReadRepository.
func (c *Client) ListProductsByCategory(ctx context.Context, categoryID int64) ([]catalog.Product, error) {
	var products []catalog.Product
	path := fmt.Sprintf("/products/category/%d", categoryID)
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct implements catalog.ReadRepository.
func (c *Client) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	var product catalog.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories implements catalog.ReadRepository.
func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
