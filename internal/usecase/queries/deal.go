package queries

import (
	"context"
	"time"

	"stokship/internal/domain/deal"
	"stokship/internal/infra"
	"stokship/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type DealView struct {
	ID                 uuid.UUID         `json:"id"`
	Number             string            `json:"deal_number"`
	BuyerID            uuid.UUID         `json:"buyer_id"`
	TraderID           uuid.UUID         `json:"trader_id"`
	Status             string            `json:"status"`
	QuoteSentAt        *time.Time        `json:"quote_sent_at,omitempty"`
	ApprovedAt         *time.Time        `json:"approved_at,omitempty"`
	CompletedAt        *time.Time        `json:"completed_at,omitempty"`
	CancelledAt        *time.Time        `json:"cancelled_at,omitempty"`
	CancellationReason *string           `json:"cancellation_reason,omitempty"`
	CancelledBy        *string           `json:"cancelled_by,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	Reservations       []ReservationView `json:"reservations"`
	History            []TransitionView  `json:"history"`
}

type ReservationView struct {
	ID          uuid.UUID  `json:"id"`
	OfferItemID uuid.UUID  `json:"offer_item_id"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	ReservedAt  time.Time  `json:"reserved_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	ReleasedAt  *time.Time `json:"released_at,omitempty"`
}

type TransitionView struct {
	FromStatus *string    `json:"from_status,omitempty"`
	ToStatus   string     `json:"to_status"`
	Event      string     `json:"event"`
	ActorKind  string     `json:"actor_kind"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	Note       *string    `json:"note,omitempty"`
	At         time.Time  `json:"at"`
}

type DealListItem struct {
	ID          uuid.UUID  `json:"id"`
	Number      string     `json:"deal_number"`
	BuyerID     uuid.UUID  `json:"buyer_id"`
	TraderID    uuid.UUID  `json:"trader_id"`
	Status      string     `json:"status"`
	QuoteSentAt *time.Time `json:"quote_sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type DealQueries interface {
	GetByID(ctx context.Context, actor deal.Actor, id uuid.UUID) (*DealView, error)
	ListForActor(ctx context.Context, actor deal.Actor, after *Cursor, limit int) ([]*DealListItem, *Cursor, error)
}

type DealViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DealView, error)
	FindReservations(ctx context.Context, dealID uuid.UUID) ([]ReservationView, error)
	FindHistory(ctx context.Context, dealID uuid.UUID) ([]TransitionView, error)
	FindByPartyFirstPage(ctx context.Context, partyID uuid.UUID, limit int32) ([]*DealListItem, error)
	FindByPartyKeyset(ctx context.Context, partyID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*DealListItem, error)
}

type dealQueriesImpl struct {
	repo DealViewRepo
}

func NewDealQueries(repo DealViewRepo) DealQueries {
	return &dealQueriesImpl{repo: repo}
}

// GetByID rejects actors that are not a party to the deal.
func (q *dealQueriesImpl) GetByID(ctx context.Context, actor deal.Actor, id uuid.UUID) (*DealView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDealNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !canView(actor, view) {
		return nil, errs.Wrapf(errs.ErrForbiddenActor, "%s may not view deal %s", actor, id)
	}

	if view.Reservations, err = q.repo.FindReservations(ctx, id); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.History, err = q.repo.FindHistory(ctx, id); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func canView(actor deal.Actor, view *DealView) bool {
	switch actor.Kind {
	case deal.ActorAdmin, deal.ActorSystem:
		return true
	case deal.ActorBuyer:
		return actor.ID == view.BuyerID
	case deal.ActorTrader:
		return actor.ID == view.TraderID
	default:
		return false
	}
}

// ListForActor pages the deals where the actor is buyer or trader, newest first.
func (q *dealQueriesImpl) ListForActor(ctx context.Context, actor deal.Actor, after *Cursor, limit int) ([]*DealListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	fetch := int32(limit + 1)

	var (
		items []*DealListItem
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.repo.FindByPartyFirstPage(ctx, actor.ID, fetch)
	} else {
		createdAt, id, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, errs.ErrDomainValidation)
		}
		items, err = q.repo.FindByPartyKeyset(ctx, actor.ID, createdAt, id, fetch)
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if len(items) <= limit {
		return items, nil, nil
	}
	items = items[:limit]
	last := items[len(items)-1]
	return items, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
