package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers.
// Usecases attach them with Mark; callers test with Is.
var (
	// Inventory errors
	ErrOfferItemNotFound     = errors.New("offer item not found")
	ErrOfferItemUnavailable  = errors.New("offer item is not available")
	ErrInsufficientInventory = errors.New("insufficient stock")
	ErrLedgerInconsistent    = errors.New("inventory ledger inconsistent")

	// Deal errors
	ErrDealNotFound      = errors.New("deal not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidTransition = errors.New("invalid deal status transition")
	ErrForbiddenActor    = errors.New("actor is not allowed to perform this action")

	// Idempotency errors
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrTransientStoreFailure   = errors.New("transient store failure")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
