package repository

import (
	"context"
	"fmt"
	"time"

	"stokship/internal/domain/deal"
	"stokship/internal/infra"
	"stokship/internal/infra/repository/converter"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"
	"stokship/internal/usecase/shared"

	"github.com/google/uuid"
)

const dealNumberFormat = "DL-%06d"

type DealQueries interface {
	NextDealNumber(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealParams) error
	GetDeal(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	GetDealForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	UpdateDealStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDealStatusParams) (int64, error)
	CreateDealStatusHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealStatusHistoryParams) error
	ListDealStatusHistory(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) ([]sqlc.DealStatusHistory, error)
	ListExpirableDeals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpirableDealsParams) ([]sqlc.ListExpirableDealsRow, error)
}

type DealRepository struct {
	queries DealQueries
	db      sqlc.DBTX
}

func NewDealRepository(queries DealQueries, db sqlc.DBTX) *DealRepository {
	return &DealRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DealRepository) NextNumber(ctx context.Context, tx sqlc.DBTX) (string, error) {
	seq, err := r.queries.NextDealNumber(ctx, tx)
	if err != nil {
		return "", infra.WrapRepoErr("failed to allocate deal number", err)
	}
	return fmt.Sprintf(dealNumberFormat, seq), nil
}

func (r *DealRepository) Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error {
	if err := r.queries.CreateDeal(ctx, tx, converter.DealToCreateParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create deal", err)
	}
	return r.appendHistory(ctx, tx, d)
}

func (r *DealRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*deal.Deal, error) {
	row, err := r.queries.GetDeal(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal", err)
	}
	return converter.DealFromInfra(row), nil
}

func (r *DealRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*deal.Deal, error) {
	row, err := r.queries.GetDealForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock deal", err)
	}
	return converter.DealFromInfra(row), nil
}

func (r *DealRepository) Save(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error {
	affected, err := r.queries.UpdateDealStatus(ctx, tx, converter.DealToUpdateParams(d))
	if err != nil {
		return infra.WrapRepoErr("failed to update deal", err)
	}
	if affected == 0 {
		return infra.NotFound("deal not found")
	}
	return r.appendHistory(ctx, tx, d)
}

func (r *DealRepository) appendHistory(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error {
	for _, t := range d.PendingTransitions() {
		if err := r.queries.CreateDealStatusHistory(ctx, tx, converter.TransitionToHistoryParams(d.ID(), t)); err != nil {
			return infra.WrapRepoErr("failed to record deal history", err)
		}
	}
	return nil
}

func (r *DealRepository) ListHistory(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID) ([]deal.Transition, error) {
	rows, err := r.queries.ListDealStatusHistory(ctx, tx, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deal history", err)
	}

	out := make([]deal.Transition, len(rows))
	for i, row := range rows {
		out[i] = converter.TransitionFromInfra(row)
	}
	return out, nil
}

func (r *DealRepository) ListExpirable(ctx context.Context, tx sqlc.DBTX, cutoff time.Time, limit int32) ([]shared.ExpirableDeal, error) {
	rows, err := r.queries.ListExpirableDeals(ctx, tx, sqlc.ListExpirableDealsParams{
		Cutoff:     pgconv.TimeToPgtype(cutoff),
		BatchLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expirable deals", err)
	}

	out := make([]shared.ExpirableDeal, len(rows))
	for i, row := range rows {
		out[i] = shared.ExpirableDeal{
			ID:          row.ID,
			Number:      row.DealNumber,
			QuoteSentAt: pgconv.TimeFromPgtype(row.QuoteSentAt),
		}
	}
	return out, nil
}
