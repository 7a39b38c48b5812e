package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nordport/terminal-orders/internal/observability"

	"go.uber.org/zap"
)

var ErrBadEvent = errors.New("bad event payload")

//go:generate mockgen -source internal/events/handler.go -destination=internal/events/handler_mock_test.go -package=events

// ReferenceCache is the slice of the uniqueness checker the handler needs.
type ReferenceCache interface {
	Invalidate(reference, terminalID string)
	Reset()
}

// Handler reacts to order mutation events by dropping the matching
// reference-uniqueness answers, closing the staleness window that manual
// invalidation alone leaves open.
type Handler struct {
	checks  ReferenceCache
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewHandler(checks ReferenceCache, logger *zap.Logger, metrics observability.Metrics) *Handler {
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return &Handler{
		checks:  checks,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle processes a single raw event. Unknown event types are skipped
// without error so the consumer keeps committing offsets.
func (h *Handler) Handle(_ context.Context, value []byte) error {
	t0 := time.Now()

	var ev Envelope
	if err := json.Unmarshal(value, &ev); err != nil {
		h.logger.Error("bad event json", zap.Error(err))
		h.metrics.ObserveKafka(sinceMs(t0), false)
		return ErrBadEvent
	}

	switch ev.EventType {
	case TypeOrderCreated, TypeOrderUpdated, TypeOrderDeleted:
	default:
		h.logger.Debug("skipping event", zap.String("event_type", ev.EventType))
		return nil
	}

	if ev.Reference == "" {
		h.logger.Error("event without reference", zap.String("event_type", ev.EventType))
		h.metrics.ObserveKafka(sinceMs(t0), false)
		return ErrBadEvent
	}

	if ev.TerminalID == "" {
		// No terminal to scope the purge to, drop everything to stay safe.
		h.checks.Reset()
	} else {
		h.checks.Invalidate(ev.Reference, ev.TerminalID)
	}

	h.metrics.ObserveKafka(sinceMs(t0), true)
	h.logger.Info("reference cache invalidated",
		zap.String("event_type", ev.EventType),
		zap.String("order_id", ev.OrderID),
		zap.String("reference", ev.Reference),
		zap.String("terminal_id", ev.TerminalID),
	)
	return nil
}

func sinceMs(t0 time.Time) float64 {
	return float64(time.Since(t0).Microseconds()) / 1000.0
}
