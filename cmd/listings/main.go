package main

import (
	"driveway/internal/listings/handler"
	"driveway/internal/listings/repository"
	"driveway/internal/listings/service"
	"driveway/internal/listings/validator"
	"driveway/pkg/app"
	"driveway/pkg/config"
)

func main() {
	cfg := config.Load("listings")
	cfg.Log.Info("Starting Listings service")

	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	listingService := initServices(cfg)

	application := app.NewApplication(cfg)
	application.SetApp(
		handler.NewListingHandler(listingService, cfg.Log),
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
	)
	application.Run()
}

func initServices(cfg *config.Config) service.ListingService {
	listingValidator := validator.NewListingValidator(cfg.Log)
	listingRepo := repository.NewMongoListingRepository(cfg)
	listingService := service.NewListingService(listingRepo, listingValidator, cfg)

	cfg.Log.Info("Listing service initialized")
	return listingService
}
