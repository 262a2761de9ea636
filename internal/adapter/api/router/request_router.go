package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/handler"
	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/middleware"
)

func SetupRequestRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	requestHandler := handler.GetRequestHandler()

	requests := e.Group("/v1/requests")
	requests.Use(authMiddleware.Authenticate)
	requests.POST("", requestHandler.CreateRequest)
	requests.GET("/received", requestHandler.ListReceived)
	requests.GET("/sent", requestHandler.ListSent)
	requests.PUT("/:id/respond", requestHandler.RespondToRequest)
}
