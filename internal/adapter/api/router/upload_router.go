package router

import (
	"github.com/labstack/echo/v4"

	"estatehub/internal/adapter/api/handler"
)

func SetupUploadRouter(e *echo.Echo) {
	uploadHandler := handler.GetUploadHandler()

	uploads := e.Group("/uploads")
	uploads.POST("/images", uploadHandler.UploadImage)
	uploads.DELETE("/images/*", uploadHandler.DeleteImage)
}
