package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"estatehub/internal/domain/service"
	"estatehub/pkg/errors"
	"estatehub/pkg/logger"
	"estatehub/pkg/response"
)

const maxImageSize = 4 * 1024 * 1024

type UploadHandler struct {
	imageService service.ImageUploadService
}

func NewUploadHandler(imageService service.ImageUploadService) *UploadHandler {
	return &UploadHandler{
		imageService: imageService,
	}
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadImage accepts a multipart image and returns the url/key pair the
// property endpoints persist verbatim.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	if h.imageService == nil {
		return response.Error(c, errors.Internal("Image storage is not configured", nil))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > maxImageSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", maxImageSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	result, err := h.imageService.UploadImage(c.Request().Context(), src, contentType)
	if err != nil {
		logger.Error("image upload failed: %v", err)
		return response.Error(c, errors.Internal("Failed to upload image", err))
	}

	return response.OK(c, result)
}

// DeleteImage removes the object named by the key. Keys contain slashes,
// so the route binds the trailing wildcard.
func (h *UploadHandler) DeleteImage(c echo.Context) error {
	if h.imageService == nil {
		return response.Error(c, errors.Internal("Image storage is not configured", nil))
	}

	key := c.Param("*")
	if key == "" {
		return response.Error(c, errors.BadRequest("Missing image key", nil))
	}

	if err := h.imageService.DeleteImage(c.Request().Context(), key); err != nil {
		logger.Error("image delete failed: %v", err)
		return response.Error(c, errors.Internal("Failed to delete image", err))
	}

	return response.Message(c, "Image deleted successfully")
}
