//go:build unit || e2e

package builder

import (
	"time"

	"stokship/internal/domain/inventory"
	reqdto "stokship/internal/handler/dto/request"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"
	"stokship/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OfferItemBuilder struct {
	ID               uuid.UUID
	OfferID          uuid.UUID
	TraderID         uuid.UUID
	Title            string
	TotalQuantity    int
	ReservedQuantity int
	UnitPrice        decimal.Decimal
	Currency         string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewOfferItemBuilder() *OfferItemBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &OfferItemBuilder{
		ID:            uuid.New(),
		OfferID:       uuid.New(),
		TraderID:      uuid.New(),
		Title:         "Steel coil 2mm",
		TotalQuantity: 10,
		UnitPrice:     decimal.RequireFromString("125.50"),
		Currency:      "USD",
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *OfferItemBuilder) With(mutate func(*OfferItemBuilder)) *OfferItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OfferItemBuilder) BuildDomain() *inventory.OfferItem {
	return inventory.ReconstructOfferItem(
		b.ID, b.OfferID, b.TraderID,
		b.Title,
		b.TotalQuantity, b.ReservedQuantity,
		b.UnitPrice,
		b.Currency,
		b.Active,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *OfferItemBuilder) BuildInfra() sqlc.OfferItems {
	return sqlc.OfferItems{
		ID:               b.ID,
		OfferID:          b.OfferID,
		TraderID:         b.TraderID,
		Title:            b.Title,
		TotalQuantity:    int32(b.TotalQuantity),
		ReservedQuantity: int32(b.ReservedQuantity),
		UnitPrice:        pgconv.DecimalToNumeric(b.UnitPrice),
		Currency:         b.Currency,
		IsActive:         b.Active,
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *OfferItemBuilder) BuildView() *queries.OfferItemView {
	return &queries.OfferItemView{
		ID:               b.ID,
		OfferID:          b.OfferID,
		TraderID:         b.TraderID,
		Title:            b.Title,
		TotalQuantity:    b.TotalQuantity,
		ReservedQuantity: b.ReservedQuantity,
		Available:        b.TotalQuantity - b.ReservedQuantity,
		UnitPrice:        b.UnitPrice,
		Currency:         b.Currency,
		IsActive:         b.Active,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *OfferItemBuilder) BuildPublishRequestDTO() reqdto.PublishOfferItemRequest {
	return reqdto.PublishOfferItemRequest{
		OfferID:       b.OfferID,
		Title:         b.Title,
		TotalQuantity: b.TotalQuantity,
		UnitPrice:     b.UnitPrice,
		Currency:      b.Currency,
	}
}
