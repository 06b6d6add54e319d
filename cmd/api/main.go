package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/dentradar/dentradar-api/internal/config"
	"github.com/dentradar/dentradar-api/internal/handler"
	adminHandler "github.com/dentradar/dentradar-api/internal/handler/admin"
	authHandler "github.com/dentradar/dentradar-api/internal/handler/auth"
	bookingHandler "github.com/dentradar/dentradar-api/internal/handler/booking"
	locationHandler "github.com/dentradar/dentradar-api/internal/handler/location"
	personHandler "github.com/dentradar/dentradar-api/internal/handler/person"
	portalHandler "github.com/dentradar/dentradar-api/internal/handler/portal"
	providerHandler "github.com/dentradar/dentradar-api/internal/handler/provider"
	"github.com/dentradar/dentradar-api/internal/hours"
	"github.com/dentradar/dentradar-api/internal/middleware"
	"github.com/dentradar/dentradar-api/internal/places"
	"github.com/dentradar/dentradar-api/internal/repository/postgres"
	"github.com/dentradar/dentradar-api/internal/router"
	authService "github.com/dentradar/dentradar-api/internal/service/auth"
	bookingService "github.com/dentradar/dentradar-api/internal/service/booking"
	enrichmentService "github.com/dentradar/dentradar-api/internal/service/enrichment"
	eventService "github.com/dentradar/dentradar-api/internal/service/event"
	locationService "github.com/dentradar/dentradar-api/internal/service/location"
	personService "github.com/dentradar/dentradar-api/internal/service/person"
	profileService "github.com/dentradar/dentradar-api/internal/service/profile"
	providerService "github.com/dentradar/dentradar-api/internal/service/provider"
	"github.com/dentradar/dentradar-api/pkg/auth"
	"github.com/dentradar/dentradar-api/pkg/logger"
	"github.com/dentradar/dentradar-api/pkg/messaging/redis"
	"github.com/dentradar/dentradar-api/pkg/metrics"
	"github.com/dentradar/dentradar-api/pkg/worker"
)

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

	providerRepo := postgres.NewProviderRepository(db)
	personRepo := postgres.NewPersonRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	m := metrics.NewMetrics("dentradar", "api")

	broker, err := redis.NewRedisBroker(cfg.Redis.URL, &zl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	eventSvc := eventService.NewService(outboxRepo, zl)
	placesClient := places.NewClient(cfg.Places, zl, m)

	enrichmentSvc := enrichmentService.NewService(placesClient, providerRepo, eventSvc, zl)
	providerSvc := providerService.NewService(providerRepo, enrichmentSvc, eventSvc, zl)
	bookingSvc := bookingService.NewService(bookingRepo, providerRepo, eventSvc, zl)
	personSvc := personService.NewService(personRepo, providerRepo, providerSvc)
	profileSvc := profileService.NewService(profileRepo, zl)
	locationSvc := locationService.NewService(locationRepo, placesClient, cache.New(cfg.Places.CacheTTL, 10*time.Minute), zl)

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	otpStore := authService.NewRedisOTPStore(broker.Client())
	authSvc := authService.NewService(profileSvc, otpStore, jwtSvc, cfg.Auth, zl)

	hoursEngine := hours.NewEngine()

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	h := handler.NewHandler(db)
	r := router.New(
		authMiddleware,
		providerHandler.NewHandler(providerSvc, hoursEngine),
		bookingHandler.NewHandler(bookingSvc),
		personHandler.NewHandler(personSvc),
		portalHandler.NewHandler(providerSvc),
		authHandler.NewHandler(authSvc),
		locationHandler.NewHandler(locationSvc),
		adminHandler.NewHandler(bookingSvc, profileSvc),
		h,
		router.Config{
			RateLimit:     rate.Limit(50),
			RateBurst:     100,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "dentradar_api",
		},
	)
	r.Setup()

	outboxProcessor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
		BatchSize:     cfg.Outbox.BatchSize,
		PollInterval:  cfg.Outbox.PollInterval,
		RetryAttempts: cfg.Outbox.RetryAttempts,
		RetryDelay:    cfg.Outbox.RetryDelay,
	}, appLogger, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go outboxProcessor.Start(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
