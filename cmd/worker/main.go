package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/dentradar/dentradar-api/internal/config"
	"github.com/dentradar/dentradar-api/internal/repository/postgres"
	"github.com/dentradar/dentradar-api/pkg/logger"
	"github.com/dentradar/dentradar-api/pkg/messaging/redis"
	"github.com/dentradar/dentradar-api/pkg/metrics"
	"github.com/dentradar/dentradar-api/pkg/worker"
)

// Standalone outbox drainer. Run this instead of the in-process goroutine
// when the API is deployed with more than one replica.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)
	zl := appLogger.Zerolog()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewRedisBroker(cfg.Redis.URL, &zl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	outboxRepo := postgres.NewOutboxRepository(db)
	m := metrics.NewMetrics("dentradar", "worker")

	processor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
		BatchSize:     cfg.Outbox.BatchSize,
		PollInterval:  cfg.Outbox.PollInterval,
		RetryAttempts: cfg.Outbox.RetryAttempts,
		RetryDelay:    cfg.Outbox.RetryDelay,
	}, appLogger, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go processor.Start(ctx)
	log.Info().Msg("outbox worker started")

	// Metrics endpoint for scraping.
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.Port+1), nil); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down worker...")
	cancel()
}
