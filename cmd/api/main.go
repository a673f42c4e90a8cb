package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"estatehub/internal/adapter/api"
	"estatehub/internal/adapter/api/handler"
	"estatehub/internal/adapter/api/router"
	"estatehub/internal/adapter/repository"
	"estatehub/internal/domain/service"
	"estatehub/internal/infrastructure/cache"
	"estatehub/internal/infrastructure/mongodb"
	"estatehub/internal/infrastructure/storage"
	"estatehub/internal/usecase"
	"estatehub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	mongoClient, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	redisCache := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
	defer redisCache.Close()

	var imageService service.ImageUploadService
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		imageService = storageClient
	} else {
		log.Printf("STORAGE_BUCKET not set, image uploads disabled")
	}

	propertyRepo := repository.NewMongoPropertyRepository(db)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, redisCache)

	handler.Setup(propertyUseCase, redisCache, imageService, mongoClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
