package application

import (
	"context"
	"time"

	"github.com/nordport/terminal-orders/internal/cache"
	"github.com/nordport/terminal-orders/internal/domain"
	"github.com/nordport/terminal-orders/internal/events"
	"github.com/nordport/terminal-orders/internal/filter"
	"github.com/nordport/terminal-orders/internal/observability"
	"github.com/nordport/terminal-orders/internal/validation"

	"go.uber.org/zap"
)

//go:generate mockgen -source internal/application/service.go -destination=internal/application/service_mock_test.go -package=application

type Storage interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, orderID string) error
	Terminals(ctx context.Context) ([]domain.Terminal, error)
}

type ReferenceChecker interface {
	UniqueReference(ctx context.Context, reference, terminalID, excludeOrderID string) validation.ReferenceResult
	Invalidate(reference, terminalID string)
}

type Publisher interface {
	Publish(ctx context.Context, ev events.Envelope) error
}

// Service ties the order store to the filter and validation layers. Mutations
// validate first, persist second, and then invalidate cached uniqueness
// answers and emit an order event.
type Service struct {
	storage   Storage
	filter    *filter.Evaluator
	checker   ReferenceChecker
	terminals *cache.Terminals
	publisher Publisher
	logger    *zap.Logger
	metrics   observability.Metrics
}

func NewService(
	storage Storage,
	eval *filter.Evaluator,
	checker ReferenceChecker,
	terminals *cache.Terminals,
	publisher Publisher,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Service {
	if eval == nil {
		eval = filter.New(nil)
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return &Service{
		storage:   storage,
		filter:    eval,
		checker:   checker,
		terminals: terminals,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

func (s *Service) List(ctx context.Context, c domain.Criteria) ([]domain.Order, ListStats, error) {
	var st ListStats

	t0 := time.Now()
	orders, err := s.storage.List(ctx)
	if err != nil {
		s.logger.Error("failed to list orders", zap.Error(err))
		return nil, st, err
	}
	st.FetchMs = convertToMs(t0)
	st.Total = len(orders)

	t1 := time.Now()
	matched := s.filter.Apply(orders, c)
	st.FilterMs = convertToMs(t1)
	st.Matched = len(matched)

	s.metrics.ObserveList(st.FetchMs, st.FilterMs, st.Matched, st.Total)
	s.logger.Info("orders listed",
		zap.Int("total", st.Total),
		zap.Int("matched", st.Matched),
		zap.Float64("fetch_ms", st.FetchMs),
		zap.Float64("filter_ms", st.FilterMs),
	)
	return matched, st, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.storage.GetByID(ctx, orderID)
}

// Create validates the order and persists it. A failed business rule comes
// back as an invalid Result with a nil error; the order is only nil on
// storage failure or rule failure.
func (s *Service) Create(ctx context.Context, order *domain.Order) (*domain.Order, validation.Result, error) {
	if res := validation.ValidateServiceDates(order.EtaDate, order.EtdDate, order.Service); !res.Valid {
		return nil, res, nil
	}
	if ref := s.checker.UniqueReference(ctx, order.Reference, order.TerminalID, ""); !ref.Valid {
		return nil, ref.Result, nil
	}

	created, err := s.storage.Create(ctx, order)
	if err != nil {
		s.logger.Error("failed to create order",
			zap.String("reference", order.Reference),
			zap.Error(err),
		)
		return nil, validation.Result{}, err
	}

	s.checker.Invalidate(created.Reference, created.TerminalID)
	s.publish(ctx, events.TypeOrderCreated, created)

	s.logger.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("reference", created.Reference),
		zap.String("terminal_id", created.TerminalID),
	)
	return created, validation.Result{Valid: true}, nil
}

func (s *Service) Update(ctx context.Context, orderID string, order *domain.Order) (*domain.Order, validation.Result, error) {
	if res := validation.ValidateServiceDates(order.EtaDate, order.EtdDate, order.Service); !res.Valid {
		return nil, res, nil
	}
	if ref := s.checker.UniqueReference(ctx, order.Reference, order.TerminalID, orderID); !ref.Valid {
		return nil, ref.Result, nil
	}

	order.ID = orderID
	if err := s.storage.Update(ctx, order); err != nil {
		if err != domain.ErrNotFound {
			s.logger.Error("failed to update order",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
		return nil, validation.Result{}, err
	}

	s.checker.Invalidate(order.Reference, order.TerminalID)
	s.publish(ctx, events.TypeOrderUpdated, order)

	s.logger.Info("order updated",
		zap.String("order_id", orderID),
		zap.String("reference", order.Reference),
	)
	return order, validation.Result{Valid: true}, nil
}

func (s *Service) Delete(ctx context.Context, orderID string) error {
	order, err := s.storage.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, orderID); err != nil {
		return err
	}

	s.checker.Invalidate(order.Reference, order.TerminalID)
	s.publish(ctx, events.TypeOrderDeleted, order)

	s.logger.Info("order deleted",
		zap.String("order_id", orderID),
		zap.String("reference", order.Reference),
	)
	return nil
}

// CheckReference exposes the uniqueness validator to the HTTP API.
func (s *Service) CheckReference(ctx context.Context, reference, terminalID, excludeOrderID string) validation.ReferenceResult {
	return s.checker.UniqueReference(ctx, reference, terminalID, excludeOrderID)
}

// Terminals serves the terminal directory through the expirable cache,
// falling back to the store when the cache has gone cold.
func (s *Service) Terminals(ctx context.Context) ([]domain.Terminal, error) {
	if s.terminals != nil {
		if cached := s.terminals.All(); len(cached) > 0 {
			s.metrics.IncCacheHit()
			return cached, nil
		}
		s.metrics.IncCacheMiss()
	}

	terminals, err := s.storage.Terminals(ctx)
	if err != nil {
		return nil, err
	}
	if s.terminals != nil {
		for _, t := range terminals {
			s.terminals.Set(t)
		}
	}
	return terminals, nil
}

func (s *Service) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	// Best effort, the mutation is already durable.
	_ = s.publisher.Publish(ctx, events.Envelope{
		EventType:  eventType,
		OrderID:    order.ID,
		Reference:  order.Reference,
		TerminalID: order.TerminalID,
	})
}
