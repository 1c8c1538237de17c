package api

import (
	"context"
	"net/http"

	"github.com/boardsandcats/storefront/internal/domain/cart"
)

// FetchCart implements cart.RemoteService. The backend answers 204 when the
// user has no saved cart; that is a success with an empty snapshot, not an
// error.
func (c *Client) FetchCart(ctx context.Context) (*cart.Snapshot, error) {
	snap := &cart.Snapshot{}
	if err := c.do(ctx, http.MethodGet, "/cart", nil, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// SaveCart implements cart.RemoteService. The backend treats the envelope as
// an authoritative replace-all of the stored cart.
func (c *Client) SaveCart(ctx context.Context, env cart.Envelope) error {
	return c.do(ctx, http.MethodPost, "/cart", env, nil)
}
