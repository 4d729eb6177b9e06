package readrepo

import (
	"context"

	"stokship/internal/infra"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"
	"stokship/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferItemViewQueries interface {
	GetOfferItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.OfferItems, error)
}

type OfferItemViewRepository struct {
	queries OfferItemViewQueries
	db      sqlc.DBTX
}

func NewOfferItemViewRepository(queries OfferItemViewQueries, db sqlc.DBTX) *OfferItemViewRepository {
	return &OfferItemViewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfferItemViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferItemView, error) {
	row, err := r.queries.GetOfferItem(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer item by ID", err)
	}

	price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid unit price", err)
	}

	return &queries.OfferItemView{
		ID:               row.ID,
		OfferID:          row.OfferID,
		TraderID:         row.TraderID,
		Title:            row.Title,
		TotalQuantity:    int(row.TotalQuantity),
		ReservedQuantity: int(row.ReservedQuantity),
		Available:        int(row.TotalQuantity - row.ReservedQuantity),
		UnitPrice:        price,
		Currency:         row.Currency,
		IsActive:         row.IsActive,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
