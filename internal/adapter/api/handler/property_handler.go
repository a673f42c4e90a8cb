package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/cache"
	"estatehub/internal/usecase"
	"estatehub/pkg/logger"
	"estatehub/pkg/response"
	"estatehub/pkg/utils"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
	listCache       usecase.PropertyCache
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase, listCache usecase.PropertyCache) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
		listCache:       listCache,
	}
}

type propertyImageRequest struct {
	URL string `json:"url" validate:"required,url"`
	Key string `json:"key"`
}

type createPropertyRequest struct {
	Title             string                 `json:"title" validate:"required"`
	Price             *float64               `json:"price" validate:"required,gte=0"`
	Description       string                 `json:"description"`
	PropertyType      string                 `json:"propertyType" validate:"required"`
	FinishingProgress string                 `json:"finishingProgress"`
	Bedrooms          *int                   `json:"bedrooms"`
	Bathrooms         *int                   `json:"bathrooms"`
	Location          string                 `json:"location"`
	IsForSale         bool                   `json:"isForSale"`
	IsForRent         bool                   `json:"isForRent"`
	Images            []propertyImageRequest `json:"images"`
}

type updatePropertyRequest struct {
	Title             *string                 `json:"title"`
	Price             *float64                `json:"price" validate:"omitempty,gte=0"`
	Description       *string                 `json:"description"`
	PropertyType      *string                 `json:"propertyType"`
	FinishingProgress *string                 `json:"finishingProgress"`
	Bedrooms          *int                    `json:"bedrooms"`
	Bathrooms         *int                    `json:"bathrooms"`
	Location          *string                 `json:"location"`
	IsForSale         *bool                   `json:"isForSale"`
	IsForRent         *bool                   `json:"isForRent"`
	Images            *[]propertyImageRequest `json:"images"`
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.CreateProperty(c.Request().Context(), usecase.CreatePropertyInput{
		Title:             req.Title,
		Price:             req.Price,
		Description:       req.Description,
		PropertyType:      req.PropertyType,
		FinishingProgress: req.FinishingProgress,
		Bedrooms:          req.Bedrooms,
		Bathrooms:         req.Bathrooms,
		Location:          req.Location,
		IsForSale:         req.IsForSale,
		IsForRent:         req.IsForRent,
		Images:            toEntityImages(req.Images),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	property, err := h.propertyUseCase.GetPropertyByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, property)
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdatePropertyInput{
		Title:             req.Title,
		Price:             req.Price,
		Description:       req.Description,
		PropertyType:      req.PropertyType,
		FinishingProgress: req.FinishingProgress,
		Bedrooms:          req.Bedrooms,
		Bathrooms:         req.Bathrooms,
		Location:          req.Location,
		IsForSale:         req.IsForSale,
		IsForRent:         req.IsForRent,
	}
	if req.Images != nil {
		images := toEntityImages(*req.Images)
		input.Images = &images
	}

	property, err := h.propertyUseCase.UpdateProperty(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, property)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	if err := h.propertyUseCase.DeleteProperty(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Property deleted successfully")
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()
	pagination := utils.GetPaginationParams(c)
	filter := parseListFilter(c)

	var cacheKey string
	if h.listCache != nil {
		cacheKey = cache.QueryKey("properties", listCacheParams(c, pagination))
		var cached response.PropertyPage
		hit, err := h.listCache.Get(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warn("list cache read failed: %v", err)
		} else if hit {
			return response.OK(c, cached)
		}
	}

	properties, total, err := h.propertyUseCase.ListProperties(ctx, filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	page := response.NewPropertyPage(properties, total, pagination.Page, pagination.PageSize)

	// List entries expire by TTL alone; writes only invalidate the by-id
	// cache, so a page can lag a write by at most the TTL.
	if h.listCache != nil {
		if err := h.listCache.Set(ctx, cacheKey, page); err != nil {
			logger.Warn("list cache write failed: %v", err)
		}
	}

	return response.OK(c, page)
}

// parseListFilter translates the recognized query inputs into the
// enumerated filter. Absent inputs add no constraint; malformed numeric
// values are ignored rather than rejected, and propertyType "all" is the
// no-constraint sentinel.
func parseListFilter(c echo.Context) repository.PropertyFilter {
	filter := repository.PropertyFilter{
		Title:    c.QueryParam("title"),
		Location: c.QueryParam("location"),
	}

	if propertyType := c.QueryParam("propertyType"); propertyType != "" && propertyType != "all" {
		filter.PropertyType = propertyType
	}
	if minPrice := c.QueryParam("minPrice"); minPrice != "" {
		if value, err := strconv.ParseFloat(minPrice, 64); err == nil {
			filter.MinPrice = &value
		}
	}
	if maxPrice := c.QueryParam("maxPrice"); maxPrice != "" {
		if value, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			filter.MaxPrice = &value
		}
	}
	if bedrooms := c.QueryParam("bedrooms"); bedrooms != "" {
		if value, err := strconv.Atoi(bedrooms); err == nil {
			filter.Bedrooms = &value
		}
	}
	if bathrooms := c.QueryParam("bathrooms"); bathrooms != "" {
		if value, err := strconv.Atoi(bathrooms); err == nil {
			filter.Bathrooms = &value
		}
	}
	if forSale := parseBoolParam(c.QueryParam("isForSale")); forSale != nil {
		filter.ForSale = forSale
	}
	if forRent := parseBoolParam(c.QueryParam("isForRent")); forRent != nil {
		filter.ForRent = forRent
	}

	return filter
}

func parseBoolParam(value string) *bool {
	switch value {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// listCacheParams normalizes pagination in the cache key so clamped
// equivalents ("page=0" and "page=1") share an entry.
func listCacheParams(c echo.Context, pagination utils.PaginationParams) map[string]string {
	params := map[string]string{
		"page":  strconv.Itoa(pagination.Page),
		"limit": strconv.Itoa(pagination.PageSize),
	}
	for _, key := range []string{"title", "location", "propertyType", "minPrice", "maxPrice", "bedrooms", "bathrooms", "isForSale", "isForRent"} {
		if value := c.QueryParam(key); value != "" {
			params[key] = value
		}
	}
	return params
}

func toEntityImages(images []propertyImageRequest) []entity.PropertyImage {
	result := make([]entity.PropertyImage, len(images))
	for i, img := range images {
		result[i] = entity.PropertyImage{URL: img.URL, Key: img.Key}
	}
	return result
}
