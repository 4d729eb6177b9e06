//go:build unit || e2e

package builder

import (
	"time"

	"stokship/internal/domain/deal"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DealBuilder struct {
	ID          uuid.UUID
	Number      string
	BuyerID     uuid.UUID
	TraderID    uuid.UUID
	Status      deal.Status
	QuoteSentAt *time.Time
	ApprovedAt  *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}

func NewDealBuilder() *DealBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &DealBuilder{
		ID:        uuid.New(),
		Number:    "DL-000001",
		BuyerID:   uuid.New(),
		TraderID:  uuid.New(),
		Status:    deal.StatusNegotiation,
		CreatedAt: now,
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

// Quoted marks the deal as quoted at t.
func (b *DealBuilder) Quoted(t time.Time) *DealBuilder {
	b.QuoteSentAt = &t
	return b
}

// Approved marks the deal as quoted and approved at t.
func (b *DealBuilder) Approved(t time.Time) *DealBuilder {
	if b.QuoteSentAt == nil {
		b.QuoteSentAt = &t
	}
	b.ApprovedAt = &t
	b.Status = deal.StatusApproved
	return b
}

// Build methods
func (b *DealBuilder) BuildDomain() *deal.Deal {
	return deal.Reconstruct(deal.Snapshot{
		ID:          b.ID,
		Number:      b.Number,
		BuyerID:     b.BuyerID,
		TraderID:    b.TraderID,
		Status:      b.Status,
		QuoteSentAt: b.QuoteSentAt,
		ApprovedAt:  b.ApprovedAt,
		CompletedAt: b.CompletedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	})
}

func (b *DealBuilder) BuildInfra() sqlc.Deals {
	return sqlc.Deals{
		ID:          b.ID,
		DealNumber:  b.Number,
		BuyerID:     b.BuyerID,
		TraderID:    b.TraderID,
		Status:      string(b.Status),
		QuoteSentAt: pgconv.TimePtrToPgtype(b.QuoteSentAt),
		ApprovedAt:  pgconv.TimePtrToPgtype(b.ApprovedAt),
		CompletedAt: pgconv.TimePtrToPgtype(b.CompletedAt),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
}
