package readrepo

import (
	"context"
	"time"

	"stokship/internal/infra"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"
	"stokship/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealViewQueries interface {
	GetDeal(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	ListDealReservations(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) ([]sqlc.DealReservations, error)
	ListDealStatusHistory(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) ([]sqlc.DealStatusHistory, error)
	ListDealsByPartyFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDealsByPartyFirstPageParams) ([]sqlc.Deals, error)
	ListDealsByPartyKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDealsByPartyKeysetParams) ([]sqlc.Deals, error)
}

type DealViewRepository struct {
	queries DealViewQueries
	db      sqlc.DBTX
}

func NewDealViewRepository(queries DealViewQueries, db sqlc.DBTX) *DealViewRepository {
	return &DealViewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DealViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.DealView, error) {
	row, err := r.queries.GetDeal(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal by ID", err)
	}

	return toDealView(row), nil
}

func (r *DealViewRepository) FindReservations(ctx context.Context, dealID uuid.UUID) ([]queries.ReservationView, error) {
	rows, err := r.queries.ListDealReservations(ctx, r.db, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deal reservations", err)
	}

	result := make([]queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = queries.ReservationView{
			ID:          row.ID,
			OfferItemID: row.OfferItemID,
			Quantity:    int(row.Quantity),
			Status:      row.Status,
			ReservedAt:  pgconv.TimeFromPgtype(row.ReservedAt),
			ConfirmedAt: pgconv.TimePtrFromPgtype(row.ConfirmedAt),
			ReleasedAt:  pgconv.TimePtrFromPgtype(row.ReleasedAt),
		}
	}
	return result, nil
}

func (r *DealViewRepository) FindHistory(ctx context.Context, dealID uuid.UUID) ([]queries.TransitionView, error) {
	rows, err := r.queries.ListDealStatusHistory(ctx, r.db, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deal status history", err)
	}

	result := make([]queries.TransitionView, len(rows))
	for i, row := range rows {
		result[i] = queries.TransitionView{
			FromStatus: pgconv.StringPtrFromPgtype(row.FromStatus),
			ToStatus:   row.ToStatus,
			Event:      row.Event,
			ActorKind:  row.ActorKind,
			ActorID:    pgconv.UUIDPtrFromPgtype(row.ActorID),
			Note:       pgconv.StringPtrFromPgtype(row.Note),
			At:         pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *DealViewRepository) FindByPartyFirstPage(ctx context.Context, partyID uuid.UUID, limit int32) ([]*queries.DealListItem, error) {
	params := sqlc.ListDealsByPartyFirstPageParams{
		PartyID:   partyID,
		PageLimit: limit,
	}

	rows, err := r.queries.ListDealsByPartyFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals by party", err)
	}
	return toDealListItems(rows), nil
}

func (r *DealViewRepository) FindByPartyKeyset(ctx context.Context, partyID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.DealListItem, error) {
	params := sqlc.ListDealsByPartyKeysetParams{
		PartyID:        partyID,
		AfterCreatedAt: pgconv.TimeToPgtype(afterCreatedAt),
		AfterID:        afterID,
		PageLimit:      limit,
	}

	rows, err := r.queries.ListDealsByPartyKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals by party with keyset", err)
	}
	return toDealListItems(rows), nil
}

func toDealView(row sqlc.Deals) *queries.DealView {
	return &queries.DealView{
		ID:                 row.ID,
		Number:             row.DealNumber,
		BuyerID:            row.BuyerID,
		TraderID:           row.TraderID,
		Status:             row.Status,
		QuoteSentAt:        pgconv.TimePtrFromPgtype(row.QuoteSentAt),
		ApprovedAt:         pgconv.TimePtrFromPgtype(row.ApprovedAt),
		CompletedAt:        pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancelledBy:        pgconv.StringPtrFromPgtype(row.CancelledBy),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toDealListItems(rows []sqlc.Deals) []*queries.DealListItem {
	result := make([]*queries.DealListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.DealListItem{
			ID:          row.ID,
			Number:      row.DealNumber,
			BuyerID:     row.BuyerID,
			TraderID:    row.TraderID,
			Status:      row.Status,
			QuoteSentAt: pgconv.TimePtrFromPgtype(row.QuoteSentAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
