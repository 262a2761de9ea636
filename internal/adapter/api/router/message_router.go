package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/handler"
	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)
	messages.POST("", messageHandler.SendMessage)
	messages.GET("/conversations", messageHandler.ListConversations)
	messages.GET("/thread/:userId", messageHandler.GetThread)
	messages.GET("/unread-count", messageHandler.CountUnread)
	messages.PUT("/:id/read", messageHandler.MarkRead)
	messages.DELETE("/:id", messageHandler.DeleteMessage)
}
