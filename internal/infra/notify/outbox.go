package notify

import (
	"context"
	"time"

	"stokship/internal/pkg/clock"
	"stokship/internal/usecase/shared"
)

// OutboxNotifier queues notices as notification_jobs rows for a separate
// delivery worker. Each notice is written in its own transaction, after the
// cancellation it describes has committed.
type OutboxNotifier struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	topic   string
	timeout time.Duration
}

func NewOutboxNotifier(uow shared.UnitOfWork, clk clock.Clock, topic string, timeout time.Duration) *OutboxNotifier {
	return &OutboxNotifier{uow: uow, clock: clk, topic: topic, timeout: timeout}
}

func (n *OutboxNotifier) NotifyDealCancelled(ctx context.Context, notice shared.DealCancelledNotice) error {
	payload, err := encodeNotice(notice)
	if err != nil {
		return err
	}

	ctx, cancel := bounded(ctx, n.timeout)
	defer cancel()

	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Notifications().Enqueue(ctx, tx.DB(), shared.NotificationJob{
			Kind:    shared.NoticeKindDealCancelled,
			Topic:   n.topic,
			Payload: payload,
			RunAt:   n.clock.Now(),
		})
		return err
	})
}

func (n *OutboxNotifier) Close() error { return nil }
