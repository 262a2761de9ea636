package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/handler"
	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()
	itemHandler := handler.GetItemHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("", userHandler.ListUsers)
	users.GET("/search", userHandler.SearchUsers)
	users.GET("/:id", userHandler.GetProfile)
	users.GET("/:id/stats", userHandler.GetStats)
	users.GET("/:id/items", itemHandler.ListUserItems)
	users.POST("/:id/rate", userHandler.RateUser)

	me := e.Group("/v1/me")
	me.Use(authMiddleware.Authenticate)
	me.PUT("/preferences", userHandler.UpdatePreferences)
}
