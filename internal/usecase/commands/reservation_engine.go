package commands

import (
	"context"
	"log/slog"

	"stokship/internal/domain/inventory"
	"stokship/internal/infra"
	"stokship/internal/pkg/clock"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReservationEngine guards the offer item ledger. The plain methods run in
// their own unit of work; the Tx variants join the caller's transaction.
type ReservationEngine interface {
	Reserve(ctx context.Context, offerItemID, dealID uuid.UUID, quantity int) (*inventory.Reservation, error)
	Release(ctx context.Context, dealID uuid.UUID) (inventory.ReleaseSummary, error)
	Confirm(ctx context.Context, dealID uuid.UUID) (int, error)
	AvailableQuantity(ctx context.Context, offerItemID uuid.UUID) (inventory.Availability, error)

	ReserveTx(ctx context.Context, tx shared.Tx, offerItemID, dealID uuid.UUID, quantity int) (*inventory.Reservation, error)
	ReleaseTx(ctx context.Context, tx shared.Tx, dealID uuid.UUID) (inventory.ReleaseSummary, error)
	ConfirmTx(ctx context.Context, tx shared.Tx, dealID uuid.UUID) (int, error)
}

type reservationEngineImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationEngine(uow shared.UnitOfWork, clk clock.Clock) ReservationEngine {
	return &reservationEngineImpl{uow: uow, clock: clk}
}

// Reserve locks the deal row before the item row, the order Cancel and
// ExpireDeal lock in.
func (e *reservationEngineImpl) Reserve(ctx context.Context, offerItemID, dealID uuid.UUID, quantity int) (*inventory.Reservation, error) {
	if err := inventory.ValidateQuantity(quantity); err != nil {
		return nil, domainErr(err)
	}

	var out *inventory.Reservation
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Deals().FindByIDForUpdate(ctx, tx.DB(), dealID); err != nil {
			return storeErr(err, errs.ErrDealNotFound)
		}
		res, err := e.ReserveTx(ctx, tx, offerItemID, dealID, quantity)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *reservationEngineImpl) ReserveTx(ctx context.Context, tx shared.Tx, offerItemID, dealID uuid.UUID, quantity int) (*inventory.Reservation, error) {
	if err := inventory.ValidateQuantity(quantity); err != nil {
		return nil, domainErr(err)
	}

	ok, err := tx.OfferItems().TryReserve(ctx, tx.DB(), offerItemID, quantity)
	if err != nil {
		return nil, storeErr(err, nil)
	}
	if !ok {
		return nil, e.rejection(ctx, tx, offerItemID, quantity)
	}

	res, err := tx.Reservations().Create(ctx, tx.DB(), offerItemID, dealID, quantity, e.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrDealNotFound)
		}
		return nil, storeErr(err, nil)
	}
	return res, nil
}

// rejection explains why the conditional update matched no row.
func (e *reservationEngineImpl) rejection(ctx context.Context, tx shared.Tx, offerItemID uuid.UUID, quantity int) error {
	item, err := tx.OfferItems().FindByID(ctx, tx.DB(), offerItemID)
	if err != nil {
		return storeErr(err, errs.ErrOfferItemNotFound)
	}
	if !item.IsActive() {
		return errs.Wrapf(errs.ErrOfferItemUnavailable, "offer item %s", offerItemID)
	}

	avail := item.Availability()
	slog.Info("reservation rejected",
		"offer_item_id", offerItemID,
		"requested", quantity,
		"available", avail.Available)
	return errs.Wrapf(errs.ErrInsufficientInventory, "offer item %s: requested %d, available %d",
		offerItemID, quantity, avail.Available)
}

func (e *reservationEngineImpl) Release(ctx context.Context, dealID uuid.UUID) (inventory.ReleaseSummary, error) {
	var out inventory.ReleaseSummary
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		summary, err := e.ReleaseTx(ctx, tx, dealID)
		if err != nil {
			return err
		}
		out = summary
		return nil
	})
	if err != nil {
		return inventory.ReleaseSummary{DealID: dealID}, err
	}
	return out, nil
}

func (e *reservationEngineImpl) ReleaseTx(ctx context.Context, tx shared.Tx, dealID uuid.UUID) (inventory.ReleaseSummary, error) {
	released, err := tx.Reservations().ReleaseByDeal(ctx, tx.DB(), dealID, e.clock.Now())
	if err != nil {
		return inventory.ReleaseSummary{DealID: dealID}, storeErr(err, nil)
	}

	summary := inventory.SummarizeRelease(dealID, released)
	for _, item := range summary.Items {
		ok, err := tx.OfferItems().DecrementReserved(ctx, tx.DB(), item.OfferItemID, item.Quantity)
		if err != nil {
			return inventory.ReleaseSummary{DealID: dealID}, storeErr(err, nil)
		}
		if !ok {
			slog.Error("reserved counter below released quantity",
				"deal_id", dealID,
				"offer_item_id", item.OfferItemID,
				"quantity", item.Quantity)
			return inventory.ReleaseSummary{DealID: dealID}, errs.Wrapf(errs.ErrLedgerInconsistent,
				"offer item %s cannot release %d", item.OfferItemID, item.Quantity)
		}
	}
	return summary, nil
}

func (e *reservationEngineImpl) Confirm(ctx context.Context, dealID uuid.UUID) (int, error) {
	var confirmed int
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := e.ConfirmTx(ctx, tx, dealID)
		if err != nil {
			return err
		}
		confirmed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return confirmed, nil
}

// ConfirmTx leaves counters untouched: a confirmed reservation still holds stock.
func (e *reservationEngineImpl) ConfirmTx(ctx context.Context, tx shared.Tx, dealID uuid.UUID) (int, error) {
	n, err := tx.Reservations().ConfirmByDeal(ctx, tx.DB(), dealID, e.clock.Now())
	if err != nil {
		return 0, storeErr(err, nil)
	}
	return n, nil
}

func (e *reservationEngineImpl) AvailableQuantity(ctx context.Context, offerItemID uuid.UUID) (inventory.Availability, error) {
	var out inventory.Availability
	err := e.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.OfferItems().FindByID(ctx, tx.DB(), offerItemID)
		if err != nil {
			return storeErr(err, errs.ErrOfferItemNotFound)
		}
		out = item.Availability()
		return nil
	})
	return out, err
}
