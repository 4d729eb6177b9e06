package queries

import (
	"context"
	"time"

	"stokship/internal/infra"
	"stokship/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferItemView struct {
	ID               uuid.UUID       `json:"id"`
	OfferID          uuid.UUID       `json:"offer_id"`
	TraderID         uuid.UUID       `json:"trader_id"`
	Title            string          `json:"title"`
	TotalQuantity    int             `json:"total_quantity"`
	ReservedQuantity int             `json:"reserved_quantity"`
	Available        int             `json:"available"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Currency         string          `json:"currency"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type OfferItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OfferItemView, error)
}

type OfferItemViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferItemView, error)
}

type offerItemQueriesImpl struct {
	repo OfferItemViewRepo
}

func NewOfferItemQueries(repo OfferItemViewRepo) OfferItemQueries {
	return &offerItemQueriesImpl{repo: repo}
}

func (q *offerItemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferItemView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOfferItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
