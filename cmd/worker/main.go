package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/traveldesk/config"
	"github.com/Domenick1991/traveldesk/internal/database"
	"github.com/Domenick1991/traveldesk/internal/email"
	"github.com/Domenick1991/traveldesk/internal/kafka"
	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/Domenick1991/traveldesk/internal/repository"
	"github.com/Domenick1991/traveldesk/internal/service/notifications"
)

const brokerCheckInterval = time.Minute

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	workerLog, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 {
		workerLog.Fatal("kafka.brokers is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		workerLog.WithError(err).Fatal("connect postgres")
	}
	defer pool.Close()

	notificationService := notifications.NewNotificationService(
		repository.NewNotificationRepository(pool),
		email.NewSender(workerLog),
		workerLog,
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.TravelerTopic, workerLog)
	defer consumer.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, workerLog)
	defer producer.Close()

	consumerDone := make(chan error, 1)
	go func() {
		consumerDone <- consumer.ConsumeTravelerEvents(ctx, notificationService.HandleTravelerEvent)
	}()

	workerLog.LogSystem("worker", "start", true, map[string]interface{}{
		"topic":    cfg.Kafka.TravelerTopic,
		"group_id": cfg.Kafka.GroupID,
	})

	checkTicker := time.NewTicker(brokerCheckInterval)
	defer checkTicker.Stop()

	for {
		select {
		case <-checkTicker.C:
			if err := producer.CheckConnection(ctx); err != nil {
				workerLog.LogSystem("worker", "broker_check", false, map[string]interface{}{"error": err.Error()})
			}
		case err := <-consumerDone:
			if err != nil && ctx.Err() == nil {
				workerLog.WithError(err).Error("consumer stopped")
				return
			}
			workerLog.LogSystem("worker", "stop", true, nil)
			return
		case <-ctx.Done():
			workerLog.LogSystem("worker", "stop", true, nil)
			return
		}
	}
}
