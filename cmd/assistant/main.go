package main

import (
	"driveway/internal/assistant/handler"
	"driveway/internal/assistant/service"
	"driveway/pkg/app"
	"driveway/pkg/config"
	"driveway/pkg/kafka"
	kafka_config "driveway/pkg/kafka/config"
	kafka_middleware "driveway/pkg/kafka/middleware"
)

func main() {
	cfg := config.Load("assistant")
	cfg.Log.Info("Starting Assistant service")

	cfg.SetListings()

	producer := initProducer(cfg)
	if producer != nil {
		defer producer.Close()
	}

	assistantService := initServices(cfg, producer)

	application := app.NewApplication(cfg)
	application.SetApp(
		handler.NewAssistantHandler(assistantService, cfg.Log),
		handler.NewHealthHandler(cfg.Client.Listings, cfg.Log),
	)
	application.Run()
}

// initProducer builds the query-event producer. Kafka is optional for this
// service: if the brokers are unreachable the assistant still answers
// queries, it just stops emitting analytics events.
func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafka_config.Load()

	producer, err := kafka.NewProducer(kafkaCfg, cfg.QueryEventsTopic, cfg.QueryEventsDLQTopic)
	if err != nil {
		cfg.Log.Warn("Failed to create Kafka producer, query events disabled",
			"topic", cfg.QueryEventsTopic,
			"error", err,
		)
		return nil
	}

	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware())
		producer.Use(kafka_middleware.MetricsProducerMiddleware())
	}

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.QueryEventsTopic)
	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) service.AssistantService {
	source := service.NewHTTPListingSource(cfg.Client.Listings)

	var publisher service.EventPublisher
	if producer != nil {
		publisher = producer
	}

	assistantService := service.NewAssistantService(source, publisher, cfg)
	cfg.Log.Info("Assistant service initialized")
	return assistantService
}
