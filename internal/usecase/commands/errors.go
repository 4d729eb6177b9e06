package commands

import (
	"errors"

	"stokship/internal/domain/deal"
	"stokship/internal/domain/inventory"
	"stokship/internal/infra"
	"stokship/internal/pkg/errs"
)

// storeErr marks a repository error with the usecase sentinel callers test for.
// notFound is used for KindNotFound and may be nil.
func storeErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindTransient):
		return errs.Mark(err, errs.ErrTransientStoreFailure)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

// domainErr maps aggregate rule violations onto usecase sentinels.
func domainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, deal.ErrForbidden):
		return errs.Mark(err, errs.ErrForbiddenActor)
	case errors.Is(err, deal.ErrInvalidTransition),
		errors.Is(err, deal.ErrQuoteNotSent),
		errors.Is(err, deal.ErrPaymentCompleted),
		errors.Is(err, deal.ErrNotExpirable):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, deal.ErrEmptyDealNumber),
		errors.Is(err, deal.ErrSameParty),
		errors.Is(err, inventory.ErrEmptyBasket),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrQuantityTooLarge),
		errors.Is(err, inventory.ErrNegativeQuantity),
		errors.Is(err, inventory.ErrEmptyTitle),
		errors.Is(err, inventory.ErrTitleTooLong),
		errors.Is(err, inventory.ErrNegativePrice),
		errors.Is(err, inventory.ErrInvalidCurrency):
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return err
	}
}
