package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/handler"
	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	me := e.Group("/v1/auth")
	me.Use(authMiddleware.Authenticate)
	me.GET("/me", authHandler.Me)
}
