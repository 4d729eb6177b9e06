package repository

import (
	"context"

	"stokship/internal/domain/inventory"
	"stokship/internal/infra"
	"stokship/internal/infra/repository/converter"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferItemQueries interface {
	CreateOfferItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOfferItemParams) error
	GetOfferItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.OfferItems, error)
	ReserveOfferItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveOfferItemQuantityParams) (sqlc.ReserveOfferItemQuantityRow, error)
	ReleaseOfferItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseOfferItemQuantityParams) (int64, error)
	DisableOfferItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	SumHeldQuantityByOfferItem(ctx context.Context, db sqlc.DBTX, offerItemID uuid.UUID) (int32, error)
}

type OfferItemRepository struct {
	queries OfferItemQueries
	db      sqlc.DBTX
}

func NewOfferItemRepository(queries OfferItemQueries, db sqlc.DBTX) *OfferItemRepository {
	return &OfferItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfferItemRepository) Create(ctx context.Context, tx sqlc.DBTX, item *inventory.OfferItem) error {
	params, err := converter.OfferItemToInfra(item)
	if err != nil {
		return infra.WrapRepoErr("invalid offer item", err, infra.KindCheckViolated)
	}

	if err := r.queries.CreateOfferItem(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create offer item", err)
	}
	return nil
}

func (r *OfferItemRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*inventory.OfferItem, error) {
	row, err := r.queries.GetOfferItem(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer item", err)
	}

	item, err := converter.OfferItemFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert offer item", err)
	}
	return item, nil
}

func (r *OfferItemRepository) TryReserve(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, quantity int) (bool, error) {
	q, err := converter.ToInt32(quantity)
	if err != nil {
		return false, infra.WrapRepoErr("invalid reserve quantity", err, infra.KindCheckViolated)
	}

	_, err = r.queries.ReserveOfferItemQuantity(ctx, tx, sqlc.ReserveOfferItemQuantityParams{
		Quantity: q,
		ID:       id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to reserve offer item quantity", err)
	}
	return true, nil
}

func (r *OfferItemRepository) DecrementReserved(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, quantity int) (bool, error) {
	q, err := converter.ToInt32(quantity)
	if err != nil {
		return false, infra.WrapRepoErr("invalid release quantity", err, infra.KindCheckViolated)
	}

	affected, err := r.queries.ReleaseOfferItemQuantity(ctx, tx, sqlc.ReleaseOfferItemQuantityParams{
		Quantity: q,
		ID:       id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to release offer item quantity", err)
	}
	return affected == 1, nil
}

func (r *OfferItemRepository) Disable(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DisableOfferItem(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to disable offer item", err)
	}
	if affected == 0 {
		return infra.NotFound("offer item not found")
	}
	return nil
}

func (r *OfferItemRepository) HeldQuantity(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int, error) {
	held, err := r.queries.SumHeldQuantityByOfferItem(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum held quantity", err)
	}
	return int(held), nil
}
