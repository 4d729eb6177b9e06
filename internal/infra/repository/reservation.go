package repository

import (
	"context"
	"time"

	"stokship/internal/domain/inventory"
	"stokship/internal/infra"
	"stokship/internal/infra/repository/converter"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	CreateDealReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealReservationParams) (sqlc.DealReservations, error)
	ReleaseDealReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseDealReservationsParams) ([]sqlc.ReleaseDealReservationsRow, error)
	ConfirmDealReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmDealReservationsParams) (int64, error)
	ListDealReservations(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) ([]sqlc.DealReservations, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, offerItemID, dealID uuid.UUID, quantity int, at time.Time) (*inventory.Reservation, error) {
	q, err := converter.ToInt32(quantity)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation quantity", err, infra.KindCheckViolated)
	}

	row, err := r.queries.CreateDealReservation(ctx, tx, sqlc.CreateDealReservationParams{
		OfferItemID: offerItemID,
		DealID:      dealID,
		Quantity:    q,
		ReservedAt:  pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	res := converter.ReservationFromInfra(row)
	return &res, nil
}

func (r *ReservationRepository) ReleaseByDeal(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID, at time.Time) ([]inventory.Reservation, error) {
	rows, err := r.queries.ReleaseDealReservations(ctx, tx, sqlc.ReleaseDealReservationsParams{
		ReleasedAt: pgconv.TimeToPgtype(at),
		DealID:     dealID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to release reservations", err)
	}
	return converter.ReleasedFromInfra(dealID, rows), nil
}

func (r *ReservationRepository) ConfirmByDeal(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID, at time.Time) (int, error) {
	affected, err := r.queries.ConfirmDealReservations(ctx, tx, sqlc.ConfirmDealReservationsParams{
		ConfirmedAt: pgconv.TimeToPgtype(at),
		DealID:      dealID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm reservations", err)
	}
	return int(affected), nil
}

func (r *ReservationRepository) ListByDeal(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID) ([]inventory.Reservation, error) {
	rows, err := r.queries.ListDealReservations(ctx, tx, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	out := make([]inventory.Reservation, len(rows))
	for i, row := range rows {
		out[i] = converter.ReservationFromInfra(row)
	}
	return out, nil
}
