package repository

import (
	"context"
	"time"

	"stokship/internal/infra"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"
	"stokship/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	SetIdempotencyKeyResult(ctx context.Context, db sqlc.DBTX, arg sqlc.SetIdempotencyKeyResultParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return inserted == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:          row.Key,
		UserID:       row.UserID,
		Endpoint:     row.Endpoint,
		RequestHash:  row.RequestHash,
		ResultDealID: pgconv.UUIDPtrFromPgtype(row.ResultDealID),
		ExpiresAt:    pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) SetResult(ctx context.Context, tx sqlc.DBTX, key, userID, dealID uuid.UUID) error {
	params := sqlc.SetIdempotencyKeyResultParams{
		ResultDealID: pgconv.UUIDToPgtype(dealID),
		Key:          key,
		UserID:       userID,
	}

	if err := r.queries.SetIdempotencyKeyResult(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to store idempotency result", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
