package usecase

import (
	"context"
	"fmt"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/pkg/errors"
	"estatehub/pkg/logger"
)

// PropertyCache is the read cache in front of the store. Implementations
// must treat failures as misses; the usecase never lets a cache error
// surface.
type PropertyCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	cache        PropertyCache
}

func NewPropertyUseCase(propertyRepo repository.PropertyRepository, cache PropertyCache) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		cache:        cache,
	}
}

type CreatePropertyInput struct {
	Title             string
	Price             *float64
	Description       string
	PropertyType      string
	FinishingProgress string
	Bedrooms          *int
	Bathrooms         *int
	Location          string
	IsForSale         bool
	IsForRent         bool
	Images            []entity.PropertyImage
}

type UpdatePropertyInput struct {
	Title             *string
	Price             *float64
	Description       *string
	PropertyType      *string
	FinishingProgress *string
	Bedrooms          *int
	Bathrooms         *int
	Location          *string
	IsForSale         *bool
	IsForRent         *bool
	Images            *[]entity.PropertyImage
}

func (uc *PropertyUseCase) CreateProperty(ctx context.Context, input CreatePropertyInput) (*entity.Property, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	property := &entity.Property{
		Title:             input.Title,
		Price:             *input.Price,
		Description:       input.Description,
		PropertyType:      input.PropertyType,
		FinishingProgress: input.FinishingProgress,
		Bedrooms:          input.Bedrooms,
		Bathrooms:         input.Bathrooms,
		Location:          input.Location,
		IsForSale:         input.IsForSale,
		IsForRent:         input.IsForRent,
		Images:            input.Images,
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) GetPropertyByID(ctx context.Context, id string) (*entity.Property, error) {
	if uc.cache != nil {
		var cached entity.Property
		hit, err := uc.cache.Get(ctx, propertyCacheKey(id), &cached)
		if err != nil {
			logger.Warn("property cache read failed: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, propertyCacheKey(id), property); err != nil {
			logger.Warn("property cache write failed: %v", err)
		}
	}

	return property, nil
}

// UpdateProperty merges the provided fields onto the stored record. Fields
// left nil in the input are untouched; id and createdAt can never change.
func (uc *PropertyUseCase) UpdateProperty(ctx context.Context, id string, input UpdatePropertyInput) (*entity.Property, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	property, err := uc.propertyRepo.Update(ctx, id, repository.UpdateProperty{
		Title:             input.Title,
		Price:             input.Price,
		Description:       input.Description,
		PropertyType:      input.PropertyType,
		FinishingProgress: input.FinishingProgress,
		Bedrooms:          input.Bedrooms,
		Bathrooms:         input.Bathrooms,
		Location:          input.Location,
		IsForSale:         input.IsForSale,
		IsForRent:         input.IsForRent,
		Images:            input.Images,
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, id)

	return property, nil
}

func (uc *PropertyUseCase) DeleteProperty(ctx context.Context, id string) error {
	if err := uc.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, id)

	return nil
}

// ListProperties returns one page of properties matching filter plus the
// total count of matching records before pagination. A page past the end
// yields an empty list with accurate totals.
func (uc *PropertyUseCase) ListProperties(ctx context.Context, filter repository.PropertyFilter, page, pageSize int) ([]*entity.Property, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	return uc.propertyRepo.List(ctx, filter, page, pageSize)
}

func (uc *PropertyUseCase) invalidate(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, propertyCacheKey(id)); err != nil {
		logger.Warn("property cache invalidation failed: %v", err)
	}
}

func propertyCacheKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}

func validateCreate(input CreatePropertyInput) error {
	if input.Title == "" {
		return errors.Validation("Title is required", nil)
	}
	if input.Price == nil {
		return errors.Validation("Price is required", nil)
	}
	if *input.Price < 0 {
		return errors.Validation("Price must be non-negative", nil)
	}
	if input.PropertyType == "" {
		return errors.Validation("Property type is required", nil)
	}
	if !entity.IsValidPropertyType(input.PropertyType) {
		return errors.Validation("Invalid property type", nil)
	}
	if input.FinishingProgress != "" && !entity.IsValidFinishingProgress(input.FinishingProgress) {
		return errors.Validation("Invalid finishing progress", nil)
	}
	return validateCounts(input.Bedrooms, input.Bathrooms)
}

func validateUpdate(input UpdatePropertyInput) error {
	if input.Title != nil && *input.Title == "" {
		return errors.Validation("Title must not be empty", nil)
	}
	if input.Price != nil && *input.Price < 0 {
		return errors.Validation("Price must be non-negative", nil)
	}
	if input.PropertyType != nil && !entity.IsValidPropertyType(*input.PropertyType) {
		return errors.Validation("Invalid property type", nil)
	}
	if input.FinishingProgress != nil && *input.FinishingProgress != "" && !entity.IsValidFinishingProgress(*input.FinishingProgress) {
		return errors.Validation("Invalid finishing progress", nil)
	}
	return validateCounts(input.Bedrooms, input.Bathrooms)
}

func validateCounts(bedrooms, bathrooms *int) error {
	if bedrooms != nil && *bedrooms < 0 {
		return errors.Validation("Bedrooms must be non-negative", nil)
	}
	if bathrooms != nil && *bathrooms < 0 {
		return errors.Validation("Bathrooms must be non-negative", nil)
	}
	return nil
}
