package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boardsandcats/storefront/internal/domain/shared"
	"github.com/boardsandcats/storefront/tests/testutil"
)

func TestHandleErrorMapsDomainErrors(t *testing.T) {
	h := &BaseHandler{}

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"not authenticated", shared.ErrNotAuthenticated, http.StatusUnauthorized, "NOT_AUTHENTICATED"},
		{"remote failure", shared.ErrRemoteFailure, http.StatusBadGateway, "REMOTE_FAILURE"},
		{"invalid input", shared.ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown domain code", shared.NewDomainError("EMPTY_CART", "Cannot check out an empty cart"), http.StatusInternalServerError, "EMPTY_CART"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testutil.NewTestContext(t)
			h.HandleError(ctx.Context, tc.err)

			assert.Equal(t, tc.wantStatus, ctx.ResponseCode())
			testutil.AssertErrorResponse(t, ctx, tc.wantCode)
		})
	}
}

func TestHandleErrorIgnoresNil(t *testing.T) {
	h := &BaseHandler{}
	ctx := testutil.NewTestContext(t)

	h.HandleError(ctx.Context, nil)

	assert.Empty(t, ctx.ResponseBody())
}
