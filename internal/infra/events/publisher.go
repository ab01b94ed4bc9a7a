package events

import (
	"context"
	"fmt"
	"log/slog"

	"tourpay/internal/pkg/config"
)

// Message is one outbox entry on its way to the broker.
type Message struct {
	Topic   string
	Key     string
	Payload []byte
	Headers map[string]string
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// NewPublisher picks the broker named by EVENTS_BROKER.
func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) (Publisher, error) {
	switch cfg.Broker {
	case "", "log":
		return NewLogPublisher(logger), nil
	case "kafka":
		return NewKafkaPublisher(cfg.KafkaBrokers)
	case "rabbitmq":
		return NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange)
	default:
		return nil, fmt.Errorf("unknown events broker %q", cfg.Broker)
	}
}

// LogPublisher writes events to the application log. Used in development and tests.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "events")}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.InfoContext(ctx, "event published",
		"topic", msg.Topic,
		"key", msg.Key,
		"payload", string(msg.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
