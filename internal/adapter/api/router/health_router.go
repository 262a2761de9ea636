package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()

	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/health/firebase", healthHandler.CheckFirebaseHealth)
}
