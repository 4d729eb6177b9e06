// Package notify delivers deal notices to the configured sink.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/shared"
)

const (
	DriverLog    = "log"
	DriverOutbox = "outbox"
	DriverKafka  = "kafka"
	DriverAMQP   = "amqp"
)

// Sink is a notifier that owns a connection to release on shutdown.
type Sink interface {
	shared.Notifier
	Close() error
}

func encodeNotice(n shared.DealCancelledNotice) ([]byte, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return nil, errs.Wrap(err, "encode deal cancelled notice")
	}
	return body, nil
}

// bounded gives each send its own deadline. A zero timeout leaves ctx as is.
func bounded(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
