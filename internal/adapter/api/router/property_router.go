package router

import (
	"github.com/labstack/echo/v4"

	"estatehub/internal/adapter/api/handler"
	"estatehub/internal/adapter/api/middleware"
)

func SetupPropertyRouter(e *echo.Echo) {
	propertyHandler := handler.GetPropertyHandler()

	properties := e.Group("/properties")
	properties.Use(middleware.GeneralRateLimit())
	properties.GET("", propertyHandler.ListProperties)
	properties.POST("", propertyHandler.CreateProperty)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.PUT("/:id", propertyHandler.UpdateProperty)
	properties.DELETE("/:id", propertyHandler.DeleteProperty)
}
