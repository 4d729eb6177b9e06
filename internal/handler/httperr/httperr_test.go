//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stokship/internal/handler/httperr"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"insufficient stock", errs.Wrapf(errs.ErrInsufficientInventory, "item %d", 1), http.StatusConflict, "insufficient stock"},
		{"missing item", errs.Mark(errs.New("x"), errs.ErrOfferItemNotFound), http.StatusNotFound, "Offer item not found"},
		{"disabled item", errs.ErrOfferItemUnavailable, http.StatusNotFound, "Offer item is not available"},
		{"missing deal", errs.ErrDealNotFound, http.StatusNotFound, "Deal not found"},
		{"bad transition", errs.ErrInvalidTransition, http.StatusConflict, "Invalid deal status transition"},
		{"key reuse", errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key reused with a different request"},
		{"in progress", commands.ErrIdempotencyIncomplete, http.StatusConflict, "Request with this idempotency key is still being processed"},
		{"forbidden", errs.ErrForbiddenActor, http.StatusForbidden, "Forbidden"},
		{"validation", errs.Mark(commands.ErrMixedTraders, errs.ErrDomainValidation), http.StatusBadRequest, "Validation failed"},
		{"transient", errs.Wrap(errs.ErrTransientStoreFailure, "tx"), http.StatusServiceUnavailable, "Temporarily unavailable, retry later"},
		{"ledger", errs.ErrLedgerInconsistent, http.StatusInternalServerError, "Internal server error"},
		{"unknown", assert.AnError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.Status(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestAbortWithUseCaseError_SetsRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.AbortWithUseCaseError(c, errs.ErrTransientStoreFailure)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, httperr.RetryAfterSeconds, w.Header().Get("Retry-After"))
	assert.True(t, c.IsAborted())
}
