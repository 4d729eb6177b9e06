package commands

import (
	"context"

	"stokship/internal/domain/deal"
	"stokship/internal/domain/inventory"
	"stokship/internal/pkg/clock"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PublishOfferItemInput struct {
	Actor deal.Actor
	// TraderID is required for admins and must match a trader actor.
	TraderID      uuid.UUID
	OfferID       uuid.UUID
	Title         string
	TotalQuantity int
	UnitPrice     decimal.Decimal
	Currency      string
}

type OfferItemCommands interface {
	Publish(ctx context.Context, in PublishOfferItemInput) (*inventory.OfferItem, error)
	Disable(ctx context.Context, offerItemID uuid.UUID, actor deal.Actor) error
}

type offerItemCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferItemCommands(uow shared.UnitOfWork, clk clock.Clock) OfferItemCommands {
	return &offerItemCommandsImpl{uow: uow, clock: clk}
}

func (uc *offerItemCommandsImpl) Publish(ctx context.Context, in PublishOfferItemInput) (*inventory.OfferItem, error) {
	traderID, err := publishingTrader(in.Actor, in.TraderID)
	if err != nil {
		return nil, err
	}

	item, err := inventory.NewOfferItem(in.OfferID, traderID, in.Title, in.TotalQuantity, in.UnitPrice, in.Currency, uc.clock.Now())
	if err != nil {
		return nil, domainErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return storeErr(tx.OfferItems().Create(ctx, tx.DB(), item), nil)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func publishingTrader(actor deal.Actor, traderID uuid.UUID) (uuid.UUID, error) {
	switch actor.Kind {
	case deal.ActorTrader:
		if traderID != uuid.Nil && traderID != actor.ID {
			return uuid.Nil, errs.ErrForbiddenActor
		}
		return actor.ID, nil
	case deal.ActorAdmin:
		if traderID == uuid.Nil {
			return uuid.Nil, errs.Wrap(errs.ErrDomainValidation, "trader id is required")
		}
		return traderID, nil
	default:
		return uuid.Nil, errs.ErrForbiddenActor
	}
}

// Disable soft-deletes the item. Existing reservations keep their hold until
// the owning deal is released or confirmed.
func (uc *offerItemCommandsImpl) Disable(ctx context.Context, offerItemID uuid.UUID, actor deal.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.OfferItems().FindByID(ctx, tx.DB(), offerItemID)
		if err != nil {
			return storeErr(err, errs.ErrOfferItemNotFound)
		}
		if !actor.IsAdmin() && !(actor.Kind == deal.ActorTrader && item.IsOwnedBy(actor.ID)) {
			return errs.ErrForbiddenActor
		}
		return storeErr(tx.OfferItems().Disable(ctx, tx.DB(), offerItemID), errs.ErrOfferItemNotFound)
	})
}
