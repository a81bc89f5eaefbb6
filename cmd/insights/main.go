package main

import (
	"context"
	"errors"

	"driveway/internal/insights/handler"
	"driveway/internal/insights/service"
	"driveway/pkg/app"
	"driveway/pkg/config"
	"driveway/pkg/kafka"
	kafka_config "driveway/pkg/kafka/config"
	kafka_middleware "driveway/pkg/kafka/middleware"
)

func main() {
	cfg := config.Load("insights")
	cfg.Log.Info("Starting Insights service")

	insightsService := service.NewInsightsService(cfg)

	consumer := initConsumer(cfg, insightsService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		cfg.Log.Info("Starting query event consumer",
			"topic", cfg.QueryEventsTopic,
			"group_id", cfg.QueryEventsGroupID,
		)
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			cfg.Log.Error("Query event consumer stopped", "error", err)
		}
	}()

	application := app.NewApplication(cfg)
	application.SetApp(
		handler.NewInsightsHandler(insightsService, cfg.Log),
		handler.NewHealthHandler(cfg.Log),
	)
	application.Run()

	cancel()
	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Consumer stopped")
}

func initConsumer(cfg *config.Config, insightsService service.InsightsService) *kafka.Consumer {
	kafkaCfg := kafka_config.Load()

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.QueryEventsTopic,
		cfg.QueryEventsGroupID,
		cfg.QueryEventsDLQTopic,
		insightsService.HandleMessage,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer",
			"topic", cfg.QueryEventsTopic,
			"group_id", cfg.QueryEventsGroupID,
			"error", err,
		)
	}

	if kafkaCfg.EnableMiddleware {
		consumer.Use(kafka_middleware.LoggingConsumerMiddleware())
		consumer.Use(kafka_middleware.MetricsConsumerMiddleware())
	}

	return consumer
}
