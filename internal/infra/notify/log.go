package notify

import (
	"context"
	"log/slog"

	"stokship/internal/usecase/shared"
)

// LogNotifier writes notices to the structured log. Used when no broker is
// configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyDealCancelled(ctx context.Context, notice shared.DealCancelledNotice) error {
	n.logger.InfoContext(ctx, "deal cancelled notice",
		"deal_id", notice.DealID,
		"deal_number", notice.DealNumber,
		"buyer_id", notice.BuyerID,
		"reason", notice.ReasonText,
		"cancelled_at", notice.CancelledAt)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
