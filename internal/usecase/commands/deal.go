package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"stokship/internal/domain/deal"
	"stokship/internal/domain/inventory"
	"stokship/internal/pkg/clock"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	startNegotiationEndpoint = "POST /api/deals"
	idempotencyTTL           = 24 * time.Hour
)

var (
	ErrMixedTraders          = errs.New("basket items belong to different traders")
	ErrIdempotencyIncomplete = errs.New("idempotency record has no result")
)

type StartNegotiationInput struct {
	Actor deal.Actor
	// BuyerID defaults to the actor when the actor is a buyer.
	BuyerID        uuid.UUID
	Items          []inventory.ItemRequest
	IdempotencyKey *uuid.UUID
}

type StartNegotiationResult struct {
	DealID       uuid.UUID
	DealNumber   string
	Reservations []inventory.Reservation
	IsReplayed   bool
}

type CompletePaymentResult struct {
	Status           deal.Status
	Confirmed        int
	AlreadyCompleted bool
}

type ExpireResult struct {
	Expired     bool
	DealNumber  string
	BuyerID     uuid.UUID
	Reason      string
	CancelledAt time.Time
	Released    inventory.ReleaseSummary
}

type DealCommands interface {
	StartNegotiation(ctx context.Context, in StartNegotiationInput) (*StartNegotiationResult, error)
	SendQuote(ctx context.Context, dealID uuid.UUID, actor deal.Actor) error
	Approve(ctx context.Context, dealID uuid.UUID, actor deal.Actor) error
	Cancel(ctx context.Context, dealID uuid.UUID, actor deal.Actor, reason string) error
	CompletePayment(ctx context.Context, dealID, paymentID uuid.UUID, actor deal.Actor) (*CompletePaymentResult, error)
	// ExpireDeal cancels a stale deal on behalf of the system. Eligibility is
	// re-checked under the deal row lock; an ineligible deal yields Expired=false.
	ExpireDeal(ctx context.Context, dealID uuid.UUID, cutoff time.Time, reason string) (*ExpireResult, error)
}

type dealCommandsImpl struct {
	uow    shared.UnitOfWork
	engine ReservationEngine
	clock  clock.Clock
}

func NewDealCommands(uow shared.UnitOfWork, engine ReservationEngine, clk clock.Clock) DealCommands {
	return &dealCommandsImpl{uow: uow, engine: engine, clock: clk}
}

func (uc *dealCommandsImpl) StartNegotiation(ctx context.Context, in StartNegotiationInput) (*StartNegotiationResult, error) {
	basket, err := inventory.NormalizeBasket(in.Items)
	if err != nil {
		return nil, domainErr(err)
	}

	buyerID := in.BuyerID
	if in.Actor.Kind == deal.ActorBuyer && buyerID == uuid.Nil {
		buyerID = in.Actor.ID
	}
	requestHash := calculateRequestHash(buyerID, basket)

	var result *StartNegotiationResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.IdempotencyKey != nil {
			replay, err := uc.claimIdempotencyKey(ctx, tx, *in.IdempotencyKey, in.Actor.ID, requestHash)
			if err != nil {
				return err
			}
			if replay != nil {
				result = replay
				return nil
			}
		}

		created, err := uc.createDeal(ctx, tx, in.Actor, buyerID, basket)
		if err != nil {
			return err
		}

		if in.IdempotencyKey != nil {
			if err := tx.Idempotency().SetResult(ctx, tx.DB(), *in.IdempotencyKey, in.Actor.ID, created.DealID); err != nil {
				return storeErr(err, nil)
			}
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// claimIdempotencyKey returns the earlier result when the key was already used
// for the same request. A concurrent first use blocks on the key row until the
// other transaction ends.
func (uc *dealCommandsImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string) (*StartNegotiationResult, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, startNegotiationEndpoint, requestHash, uc.clock.Now().Add(idempotencyTTL))
	if err != nil {
		return nil, storeErr(err, nil)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().Get(ctx, tx.DB(), key, userID)
	if err != nil {
		return nil, storeErr(err, nil)
	}
	if existing.RequestHash != requestHash || existing.Endpoint != startNegotiationEndpoint {
		return nil, errs.ErrIdempotencyKeyReused
	}
	if existing.ResultDealID == nil {
		return nil, ErrIdempotencyIncomplete
	}

	d, err := tx.Deals().FindByID(ctx, tx.DB(), *existing.ResultDealID)
	if err != nil {
		return nil, storeErr(err, errs.ErrDealNotFound)
	}
	reservations, err := tx.Reservations().ListByDeal(ctx, tx.DB(), d.ID())
	if err != nil {
		return nil, storeErr(err, nil)
	}

	return &StartNegotiationResult{
		DealID:       d.ID(),
		DealNumber:   d.Number(),
		Reservations: reservations,
		IsReplayed:   true,
	}, nil
}

func (uc *dealCommandsImpl) createDeal(ctx context.Context, tx shared.Tx, actor deal.Actor, buyerID uuid.UUID, basket []inventory.ItemRequest) (*StartNegotiationResult, error) {
	traderID, err := basketTrader(ctx, tx, basket)
	if err != nil {
		return nil, err
	}

	number, err := tx.Deals().NextNumber(ctx, tx.DB())
	if err != nil {
		return nil, storeErr(err, nil)
	}

	d, err := deal.NewDeal(number, buyerID, traderID, actor, uc.clock.Now())
	if err != nil {
		return nil, domainErr(err)
	}
	if err := tx.Deals().Create(ctx, tx.DB(), d); err != nil {
		return nil, storeErr(err, nil)
	}

	// basket is in ascending item order, so concurrent baskets lock rows in the same sequence
	reservations := make([]inventory.Reservation, 0, len(basket))
	for _, line := range basket {
		res, err := uc.engine.ReserveTx(ctx, tx, line.OfferItemID, d.ID(), line.Quantity)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}

	slog.Info("deal negotiation started",
		"deal_id", d.ID(),
		"deal_number", d.Number(),
		"items", len(reservations))

	return &StartNegotiationResult{
		DealID:       d.ID(),
		DealNumber:   d.Number(),
		Reservations: reservations,
	}, nil
}

func basketTrader(ctx context.Context, tx shared.Tx, basket []inventory.ItemRequest) (uuid.UUID, error) {
	var traderID uuid.UUID
	for _, line := range basket {
		item, err := tx.OfferItems().FindByID(ctx, tx.DB(), line.OfferItemID)
		if err != nil {
			return uuid.Nil, storeErr(err, errs.ErrOfferItemNotFound)
		}
		if traderID == uuid.Nil {
			traderID = item.TraderID()
			continue
		}
		if item.TraderID() != traderID {
			return uuid.Nil, errs.Mark(ErrMixedTraders, errs.ErrDomainValidation)
		}
	}
	return traderID, nil
}

func (uc *dealCommandsImpl) SendQuote(ctx context.Context, dealID uuid.UUID, actor deal.Actor) error {
	return uc.mutate(ctx, dealID, func(_ context.Context, _ shared.Tx, d *deal.Deal, now time.Time) error {
		return domainErr(d.SendQuote(actor, now))
	})
}

func (uc *dealCommandsImpl) Approve(ctx context.Context, dealID uuid.UUID, actor deal.Actor) error {
	return uc.mutate(ctx, dealID, func(_ context.Context, _ shared.Tx, d *deal.Deal, now time.Time) error {
		return domainErr(d.Approve(actor, now))
	})
}

func (uc *dealCommandsImpl) Cancel(ctx context.Context, dealID uuid.UUID, actor deal.Actor, reason string) error {
	return uc.mutate(ctx, dealID, func(ctx context.Context, tx shared.Tx, d *deal.Deal, now time.Time) error {
		paid, err := tx.Payments().HasCompleted(ctx, tx.DB(), dealID)
		if err != nil {
			return storeErr(err, nil)
		}
		if err := d.Cancel(actor, reason, paid, now); err != nil {
			return domainErr(err)
		}

		summary, err := uc.engine.ReleaseTx(ctx, tx, dealID)
		if err != nil {
			return err
		}
		slog.Info("deal cancelled",
			"deal_id", dealID,
			"actor", actor.String(),
			"released", summary.TotalQuantityReleased)
		return nil
	})
}

func (uc *dealCommandsImpl) CompletePayment(ctx context.Context, dealID, paymentID uuid.UUID, actor deal.Actor) (*CompletePaymentResult, error) {
	result := &CompletePaymentResult{}
	err := uc.mutate(ctx, dealID, func(ctx context.Context, tx shared.Tx, d *deal.Deal, now time.Time) error {
		payment, err := tx.Payments().FindByIDForUpdate(ctx, tx.DB(), paymentID)
		if err != nil {
			return storeErr(err, errs.ErrPaymentNotFound)
		}
		if payment.DealID != dealID {
			return errs.Wrapf(errs.ErrPaymentNotFound, "payment %s does not belong to deal %s", paymentID, dealID)
		}

		changed, err := d.CompletePayment(actor, now)
		if err != nil {
			return domainErr(err)
		}
		result.Status = d.Status()
		if !changed {
			result.AlreadyCompleted = true
			return nil
		}

		if !payment.IsCompleted() {
			if _, err := tx.Payments().MarkCompleted(ctx, tx.DB(), paymentID, now); err != nil {
				return storeErr(err, errs.ErrPaymentNotFound)
			}
		}

		confirmed, err := uc.engine.ConfirmTx(ctx, tx, dealID)
		if err != nil {
			return err
		}
		result.Confirmed = confirmed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *dealCommandsImpl) ExpireDeal(ctx context.Context, dealID uuid.UUID, cutoff time.Time, reason string) (*ExpireResult, error) {
	result := &ExpireResult{}
	err := uc.mutate(ctx, dealID, func(ctx context.Context, tx shared.Tx, d *deal.Deal, now time.Time) error {
		paid, err := tx.Payments().HasCompleted(ctx, tx.DB(), dealID)
		if err != nil {
			return storeErr(err, nil)
		}
		if !d.CanExpire(cutoff, paid) {
			return nil
		}
		if err := d.Expire(cutoff, reason, paid, now); err != nil {
			return domainErr(err)
		}

		summary, err := uc.engine.ReleaseTx(ctx, tx, dealID)
		if err != nil {
			return err
		}

		result.Expired = true
		result.DealNumber = d.Number()
		result.BuyerID = d.BuyerID()
		result.Reason = *d.CancellationReason()
		result.CancelledAt = *d.CancelledAt()
		result.Released = summary
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// mutate locks the deal row, applies fn and persists the recorded transitions
// in one transaction.
func (uc *dealCommandsImpl) mutate(ctx context.Context, dealID uuid.UUID, fn func(ctx context.Context, tx shared.Tx, d *deal.Deal, now time.Time) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Deals().FindByIDForUpdate(ctx, tx.DB(), dealID)
		if err != nil {
			return storeErr(err, errs.ErrDealNotFound)
		}

		if err := fn(ctx, tx, d, uc.clock.Now()); err != nil {
			return err
		}
		if len(d.PendingTransitions()) == 0 {
			return nil
		}

		if err := tx.Deals().Save(ctx, tx.DB(), d); err != nil {
			return storeErr(err, errs.ErrDealNotFound)
		}
		return nil
	})
}

func calculateRequestHash(buyerID uuid.UUID, basket []inventory.ItemRequest) string {
	data, _ := json.Marshal(struct {
		BuyerID uuid.UUID               `json:"buyerId"`
		Items   []inventory.ItemRequest `json:"items"`
	}{BuyerID: buyerID, Items: basket})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
