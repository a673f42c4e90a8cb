package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupPropertyRouter(e)
	SetupUploadRouter(e)
	SetupHealthRouter(e)
}
