package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/domain/cart"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 0, zap.NewNop())
}

func TestFetchCartNoContentMeansEmptyCart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	snap, err := c.FetchCart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
}

func TestFetchCartDecodesSnapshot(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 3,
			"items": [{
				"product": {"id": 42, "name": "Catan", "price": 249.9, "stock": 4, "imageUrl": "", "category": {"id": 1, "name": "Strategy"}, "description": "", "promo": false},
				"quantity": 2,
				"priceAtSave": 230.0,
				"validationMessage": "price changed"
			}],
			"total": 460.0
		}`))
	})

	snap, err := c.FetchCart(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(42), snap.Items[0].Product.ID)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, "price changed", snap.Items[0].ValidationMessage)
}

func TestSaveCartSendsEnvelopeWithAuth(t *testing.T) {
	var got cart.Envelope
	var auth, requestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})
	c.SetToken("session-token")

	env := cart.Envelope{Items: []cart.EnvelopeItem{{ProductID: 7, Quantity: 3}}}
	require.NoError(t, c.SaveCart(context.Background(), env))

	assert.Equal(t, env, got)
	assert.Equal(t, "Bearer session-token", auth)
	assert.NotEmpty(t, requestID)
}

func TestClearTokenStopsSendingAuth(t *testing.T) {
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	c.SetToken("tok")
	c.ClearToken()

	_, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestNon2xxBecomesStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := c.FetchCart(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
}

func TestGetProductPath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42", r.URL.Path)
		w.Write([]byte(`{"id": 42, "name": "Catan", "price": 249.9, "stock": 4, "category": {"id":1,"name":"Strategy"}, "description": "", "promo": false, "imageUrl": ""}`))
	})

	p, err := c.GetProduct(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Catan", p.Name)
}

func TestWishlistToggleDecodesBool(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wishlist/7", r.URL.Path)
		w.Write([]byte(`true`))
	})

	in, err := c.Toggle(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, in)
}
