package handler

import (
	"go.mongodb.org/mongo-driver/mongo"

	"estatehub/internal/domain/service"
	"estatehub/internal/usecase"
)

var (
	propertyHandler *PropertyHandler
	uploadHandler   *UploadHandler
	healthHandler   *HealthHandler
)

func Setup(
	propertyUseCase *usecase.PropertyUseCase,
	listCache usecase.PropertyCache,
	imageService service.ImageUploadService,
	mongoClient *mongo.Client,
) {
	propertyHandler = NewPropertyHandler(propertyUseCase, listCache)
	uploadHandler = NewUploadHandler(imageService)
	healthHandler = NewHealthHandler(mongoClient)
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
