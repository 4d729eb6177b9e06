package notify

import (
	"log/slog"

	"stokship/internal/pkg/clock"
	"stokship/internal/pkg/config"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/shared"
)

// New builds the sink selected by cfg.Driver.
func New(cfg config.NotifyConfig, uow shared.UnitOfWork, clk clock.Clock) (Sink, error) {
	switch cfg.Driver {
	case DriverLog, "":
		return NewLogNotifier(slog.Default()), nil
	case DriverOutbox:
		return NewOutboxNotifier(uow, clk, cfg.Topic, cfg.Timeout), nil
	case DriverKafka:
		return NewKafkaNotifier(NewKafkaWriter(cfg.KafkaBrokers, cfg.Topic), cfg.Timeout), nil
	case DriverAMQP:
		conn, ch, err := DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, err
		}
		return NewAMQPNotifier(ch, cfg.AMQPExchange, cfg.AMQPRouting, func() error {
			_ = ch.Close()
			return conn.Close()
		}), nil
	default:
		return nil, errs.New("unknown notify driver: " + cfg.Driver)
	}
}
