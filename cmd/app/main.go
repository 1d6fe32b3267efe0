package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/traveldesk/config"
	"github.com/Domenick1991/traveldesk/internal/bootstrap"
	"github.com/Domenick1991/traveldesk/internal/cache"
	"github.com/Domenick1991/traveldesk/internal/database"
	"github.com/Domenick1991/traveldesk/internal/kafka"
	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/Domenick1991/traveldesk/internal/repository"
	"github.com/Domenick1991/traveldesk/internal/service/catalog"
	"github.com/Domenick1991/traveldesk/internal/service/reports"
	"github.com/Domenick1991/traveldesk/internal/service/travelers"
	"github.com/Domenick1991/traveldesk/internal/telemetry"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		appLog.WithError(err).Fatal("init telemetry")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			appLog.WithError(err).Warn("flush traces")
		}
	}()

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("connect postgres")
	}
	defer pool.Close()

	catalogOpts := []catalog.CatalogServiceOption{catalog.WithLogger(appLog)}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Cache.ReferenceTTL())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			appLog.WithError(err).Warn("redis unavailable, reference data will not be cached")
		} else {
			catalogOpts = append(catalogOpts, catalog.WithCache(redisCache))
		}
	}

	travelerOpts := []travelers.TravelerServiceOption{travelers.WithLogger(appLog)}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, appLog)
		defer producer.Close()
		travelerOpts = append(travelerOpts, travelers.WithProducer(producer, cfg.Kafka.TravelerTopic))
	}

	travelerService := travelers.NewTravelerService(
		repository.NewTravelerRepository(pool),
		repository.NewNotificationRepository(pool),
		repository.NewReservationRepository(pool),
		travelerOpts...,
	)
	catalogService := catalog.NewCatalogService(catalog.Repositories{
		Hotels:       repository.NewHotelRepository(pool),
		Flights:      repository.NewFlightRepository(pool),
		Activities:   repository.NewActivityRepository(pool),
		RentalCars:   repository.NewRentalCarRepository(pool),
		TravelAgents: repository.NewTravelAgentRepository(pool),
		Reviews:      repository.NewReviewRepository(pool),
	}, catalogOpts...)
	reportService := reports.NewReportService(repository.NewAnalyticsRepository(pool))

	if err := bootstrap.Run(ctx, cfg, appLog, bootstrap.Services{
		Travelers: travelerService,
		Catalog:   catalogService,
		Reports:   reportService,
		Store:     pool,
	}); err != nil {
		appLog.WithError(err).Fatal("server error")
	}
}
