package converter

import (
	"stokship/internal/domain/deal"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func DealToCreateParams(d *deal.Deal) sqlc.CreateDealParams {
	return sqlc.CreateDealParams{
		ID:         d.ID(),
		DealNumber: d.Number(),
		BuyerID:    d.BuyerID(),
		TraderID:   d.TraderID(),
		Status:     d.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func DealToUpdateParams(d *deal.Deal) sqlc.UpdateDealStatusParams {
	var cancelledBy pgtype.Text
	if k := d.CancelledBy(); k != nil {
		cancelledBy = pgconv.StringToPgtype(k.String())
	}

	return sqlc.UpdateDealStatusParams{
		ID:                 d.ID(),
		Status:             d.Status().String(),
		QuoteSentAt:        pgconv.TimePtrToPgtype(d.QuoteSentAt()),
		ApprovedAt:         pgconv.TimePtrToPgtype(d.ApprovedAt()),
		CompletedAt:        pgconv.TimePtrToPgtype(d.CompletedAt()),
		CancelledAt:        pgconv.TimePtrToPgtype(d.CancelledAt()),
		CancellationReason: pgconv.StringPtrToPgtype(d.CancellationReason()),
		CancelledBy:        cancelledBy,
		UpdatedAt:          pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func DealFromInfra(row sqlc.Deals) *deal.Deal {
	var cancelledBy *deal.ActorKind
	if row.CancelledBy.Valid {
		k := deal.ActorKind(row.CancelledBy.String)
		cancelledBy = &k
	}

	return deal.Reconstruct(deal.Snapshot{
		ID:                 row.ID,
		Number:             row.DealNumber,
		BuyerID:            row.BuyerID,
		TraderID:           row.TraderID,
		Status:             deal.Status(row.Status),
		QuoteSentAt:        pgconv.TimePtrFromPgtype(row.QuoteSentAt),
		ApprovedAt:         pgconv.TimePtrFromPgtype(row.ApprovedAt),
		CompletedAt:        pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancelledBy:        cancelledBy,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func TransitionToHistoryParams(dealID uuid.UUID, t deal.Transition) sqlc.CreateDealStatusHistoryParams {
	var from pgtype.Text
	if t.From != nil {
		from = pgconv.StringToPgtype(t.From.String())
	}
	var note pgtype.Text
	if t.Note != "" {
		note = pgconv.StringToPgtype(t.Note)
	}

	return sqlc.CreateDealStatusHistoryParams{
		DealID:     dealID,
		FromStatus: from,
		ToStatus:   t.To.String(),
		Event:      t.Event.String(),
		ActorKind:  t.Actor.Kind.String(),
		ActorID:    pgconv.UUIDPtrToPgtype(t.Actor.IDPtr()),
		Note:       note,
		CreatedAt:  pgconv.TimeToPgtype(t.At),
	}
}

func TransitionFromInfra(row sqlc.DealStatusHistory) deal.Transition {
	var from *deal.Status
	if row.FromStatus.Valid {
		s := deal.Status(row.FromStatus.String)
		from = &s
	}
	var actorID uuid.UUID
	if id := pgconv.UUIDPtrFromPgtype(row.ActorID); id != nil {
		actorID = *id
	}
	var note string
	if row.Note.Valid {
		note = row.Note.String
	}

	return deal.Transition{
		From:  from,
		To:    deal.Status(row.ToStatus),
		Event: deal.Event(row.Event),
		Actor: deal.Actor{Kind: deal.ActorKind(row.ActorKind), ID: actorID},
		Note:  note,
		At:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
