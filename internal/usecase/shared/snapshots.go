package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

type ExpirableDeal struct {
	ID          uuid.UUID
	Number      string
	QuoteSentAt time.Time
}

const PaymentStatusCompleted = "COMPLETED"

type PaymentSnapshot struct {
	ID     uuid.UUID
	DealID uuid.UUID
	Status string
}

func (p PaymentSnapshot) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

type IdempotencyRecord struct {
	Key          uuid.UUID
	UserID       uuid.UUID
	Endpoint     string
	RequestHash  string
	ResultDealID *uuid.UUID
	ExpiresAt    time.Time
}
