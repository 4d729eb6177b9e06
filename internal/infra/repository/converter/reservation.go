package converter

import (
	"stokship/internal/domain/inventory"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func ReservationFromInfra(row sqlc.DealReservations) inventory.Reservation {
	return inventory.Reservation{
		ID:          row.ID,
		OfferItemID: row.OfferItemID,
		DealID:      row.DealID,
		Quantity:    int(row.Quantity),
		Status:      inventory.ReservationStatus(row.Status),
		ReservedAt:  pgconv.TimeFromPgtype(row.ReservedAt),
		ConfirmedAt: pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		ReleasedAt:  pgconv.TimePtrFromPgtype(row.ReleasedAt),
	}
}

func ReleasedFromInfra(dealID uuid.UUID, rows []sqlc.ReleaseDealReservationsRow) []inventory.Reservation {
	out := make([]inventory.Reservation, len(rows))
	for i, row := range rows {
		out[i] = inventory.Reservation{
			ID:          row.ID,
			OfferItemID: row.OfferItemID,
			DealID:      dealID,
			Quantity:    int(row.Quantity),
			Status:      inventory.ReservationReleased,
		}
	}
	return out
}
