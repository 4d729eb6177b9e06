package httperr

import (
	"net/http"

	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// RetryAfterSeconds is sent with 503 responses for transient store failures.
const RetryAfterSeconds = "1"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	sentinel error
	status   int
	message  string
}

// Order matters: the first matching sentinel wins.
var mappings = []mapping{
	{errs.ErrInsufficientInventory, http.StatusConflict, "insufficient stock"},
	{errs.ErrOfferItemNotFound, http.StatusNotFound, "Offer item not found"},
	{errs.ErrOfferItemUnavailable, http.StatusNotFound, "Offer item is not available"},
	{errs.ErrDealNotFound, http.StatusNotFound, "Deal not found"},
	{errs.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Invalid deal status transition"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key reused with a different request"},
	{commands.ErrIdempotencyIncomplete, http.StatusConflict, "Request with this idempotency key is still being processed"},
	{errs.ErrForbiddenActor, http.StatusForbidden, "Forbidden"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Validation failed"},
	{errs.ErrTransientStoreFailure, http.StatusServiceUnavailable, "Temporarily unavailable, retry later"},
}

// Status reports the HTTP status and public message for a usecase error.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.sentinel) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUseCaseError maps err onto the API error contract.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := Status(err)
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", RetryAfterSeconds)
	}
	var detail any
	if status == http.StatusBadRequest {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}
