package notify

import (
	"context"
	"time"

	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes notices keyed by deal id so that all notices of a
// deal land on the same partition.
type KafkaNotifier struct {
	writer  MessageWriter
	timeout time.Duration
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}
}

func NewKafkaNotifier(writer MessageWriter, timeout time.Duration) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, timeout: timeout}
}

func (n *KafkaNotifier) NotifyDealCancelled(ctx context.Context, notice shared.DealCancelledNotice) error {
	body, err := encodeNotice(notice)
	if err != nil {
		return err
	}

	ctx, cancel := bounded(ctx, n.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(notice.DealID.String()),
		Value: body,
		Time:  notice.CancelledAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(shared.NoticeKindDealCancelled)},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "publish deal cancelled notice to kafka")
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
