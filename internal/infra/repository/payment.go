package repository

import (
	"context"
	"slices"
	"time"

	"stokship/internal/infra"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"
	"stokship/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	LockDealPaymentStatuses(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) ([]string, error)
	GetPaymentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	MarkPaymentCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPaymentCompletedParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// HasCompleted share-locks the deal's payment rows, so the answer holds
// until tx ends.
func (r *PaymentRepository) HasCompleted(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID) (bool, error) {
	statuses, err := r.queries.LockDealPaymentStatuses(ctx, tx, dealID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check completed payments", err)
	}
	return slices.Contains(statuses, shared.PaymentStatusCompleted), nil
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	row, err := r.queries.GetPaymentForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}

	return &shared.PaymentSnapshot{
		ID:     row.ID,
		DealID: row.DealID,
		Status: row.Status,
	}, nil
}

func (r *PaymentRepository) MarkCompleted(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.queries.MarkPaymentCompleted(ctx, tx, sqlc.MarkPaymentCompletedParams{
		CompletedAt: pgconv.TimeToPgtype(at),
		ID:          id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment completed", err)
	}
	return affected == 1, nil
}
