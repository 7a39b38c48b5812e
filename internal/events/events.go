package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	TypeOrderCreated = "order.created"
	TypeOrderUpdated = "order.updated"
	TypeOrderDeleted = "order.deleted"
)

// Envelope is the wire shape of an order mutation event.
type Envelope struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	Reference  string    `json:"reference"`
	TerminalID string    `json:"terminal_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher writes order events to Kafka. Publishing is best effort: the
// mutation has already been committed, so a failed write is logged and
// swallowed.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
		logger: logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, ev Envelope) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OrderID),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		p.logger.Error("failed to publish order event",
			zap.String("event_type", ev.EventType),
			zap.String("order_id", ev.OrderID),
			zap.Error(err),
		)
	}
	return err
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
