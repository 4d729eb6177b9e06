package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const NoticeKindDealCancelled = "deal.cancelled"

// DealCancelledNotice is emitted after an automatic cancellation commits.
type DealCancelledNotice struct {
	DealID      uuid.UUID `json:"dealId"`
	DealNumber  string    `json:"dealNumber"`
	BuyerID     uuid.UUID `json:"buyerId"`
	ReasonText  string    `json:"reasonText"`
	CancelledAt time.Time `json:"cancelledAt"`
}

// Notifier delivers notices on a best-effort basis. Callers log failures and
// never roll back on them.
type Notifier interface {
	NotifyDealCancelled(ctx context.Context, notice DealCancelledNotice) error
}
