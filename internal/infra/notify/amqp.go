package notify

import (
	"context"
	"sync"
	"time"

	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

type Publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPNotifier publishes notices to a topic exchange.
type AMQPNotifier struct {
	mu         sync.Mutex // amqp channels are not safe for concurrent publishing
	channel    Publisher
	exchange   string
	routingKey string
	closeFn    func() error
}

// DialAMQP connects and declares a durable topic exchange.
func DialAMQP(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errs.Wrap(err, "dial amqp")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "open amqp channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrapf(err, "declare exchange %s", exchange)
	}
	return conn, ch, nil
}

func NewAMQPNotifier(channel Publisher, exchange, routingKey string, closeFn func() error) *AMQPNotifier {
	if closeFn == nil {
		closeFn = func() error { return nil }
	}
	return &AMQPNotifier{channel: channel, exchange: exchange, routingKey: routingKey, closeFn: closeFn}
}

// NotifyDealCancelled publishes synchronously; the streadway client has no
// per-call context, so ctx is only checked before sending.
func (n *AMQPNotifier) NotifyDealCancelled(ctx context.Context, notice shared.DealCancelledNotice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := encodeNotice(notice)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	err = n.channel.Publish(n.exchange, n.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         shared.NoticeKindDealCancelled,
		Headers: amqp.Table{
			"deal_id":     notice.DealID.String(),
			"deal_number": notice.DealNumber,
		},
	})
	if err != nil {
		return errs.Wrap(err, "publish deal cancelled notice to amqp")
	}
	return nil
}

func (n *AMQPNotifier) Close() error {
	return n.closeFn()
}
