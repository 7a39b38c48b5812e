package kafka

import (
	"context"
	"time"

	"github.com/nordport/terminal-orders/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler processes one raw message value. A nil return commits the offset.
type Handler func(context.Context, []byte) error

// messageReader is the slice of kafka.Reader the consumer drives.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads a topic through a group reader and fans messages out to a
// worker pool per partition, so one slow partition does not stall the rest.
type Consumer struct {
	reader  messageReader
	parts   map[int]*Pool
	workers int
	handler Handler
	logger  *zap.Logger
}

func NewConsumer(cfg config.Kafka, handler Handler, logger *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.Group,
		StartOffset: kafka.LastOffset,
		MaxWait:     500 * time.Millisecond,
	})
	return &Consumer{
		reader:  reader,
		parts:   make(map[int]*Pool),
		workers: cfg.Workers,
		handler: handler,
		logger:  logger,
	}
}

func (c *Consumer) pool(partition int) *Pool {
	p, ok := c.parts[partition]
	if !ok {
		p = NewPool(c.workers)
		c.parts[partition] = p
	}
	return p
}

// Run consumes until ctx is cancelled or the reader fails.
func (c *Consumer) Run(ctx context.Context) error {
	defer func() {
		for _, p := range c.parts {
			p.Close()
			p.Wait()
		}
		_ = c.reader.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// FetchMessage leaves the group offset uncommitted; the worker
		// commits only after the handler succeeds, so a crash mid-handle
		// re-delivers the message.
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		msg := m
		c.pool(m.Partition).Submit(func() {
			if err := c.handler(ctx, msg.Value); err != nil {
				c.logger.Error("kafka handler error",
					zap.Int("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				return
			}
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("kafka commit error",
					zap.Int("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
			}
		})
	}
}
