package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/nordport/terminal-orders/internal/application"
	"github.com/nordport/terminal-orders/internal/cache"
	"github.com/nordport/terminal-orders/internal/config"
	"github.com/nordport/terminal-orders/internal/events"
	"github.com/nordport/terminal-orders/internal/filter"
	"github.com/nordport/terminal-orders/internal/httpapi"
	"github.com/nordport/terminal-orders/internal/kafka"
	"github.com/nordport/terminal-orders/internal/observability"
	"github.com/nordport/terminal-orders/internal/ordersapi"
	"github.com/nordport/terminal-orders/internal/pkg/breaker"
	"github.com/nordport/terminal-orders/internal/pkg/retry"
	"github.com/nordport/terminal-orders/internal/storage"
	"github.com/nordport/terminal-orders/internal/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewInmem(256)

	var pool *pgxpool.Pool
	if err := retry.Do(ctx, cfg.Retry, func() error {
		p, err := storage.NewPool(ctx, cfg.DSN(), logger)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	}); err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	repo := storage.New(pool, cfg.Tables)

	checks := cache.NewTTL[bool](cfg.Checks.TTL, nil)
	var finder validation.OrderFinder = repo
	if cfg.OrdersAPI != "" {
		finder = ordersapi.New(cfg.OrdersAPI, breaker.New(cfg.Breaker), logger)
		logger.Info("uniqueness checks go through remote orders api",
			zap.String("base_url", cfg.OrdersAPI),
		)
	}
	checker := validation.NewChecker(finder, checks, logger, metrics)

	terminals := cache.NewTerminals(cfg.Terminals.Size, cfg.Terminals.TTL)
	if err := terminals.Warm(ctx, repo); err != nil {
		logger.Warn("terminal cache warmup failed", zap.Error(err))
	}

	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	defer publisher.Close()

	service := application.NewService(
		repo,
		filter.New(nil),
		checker,
		terminals,
		publisher,
		logger,
		metrics,
	)

	consumer := kafka.NewConsumer(
		cfg.Kafka,
		events.NewHandler(checker, logger, metrics).Handle,
		logger,
	)
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("kafka consumer stopped", zap.Error(err))
		}
	}()

	server := httpapi.New(service, logger, metrics)
	logger.Info("server listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}
