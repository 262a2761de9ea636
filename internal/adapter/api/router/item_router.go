package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/handler"
	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/middleware"
)

func SetupItemRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authClient *auth.Client) {
	itemHandler := handler.GetItemHandler()

	// Browsing works unauthenticated; a signed-in viewer also bumps view
	// counters, so these routes use optional auth.
	items := e.Group("/v1/items")
	items.Use(VerifyToken(authClient))
	items.GET("", itemHandler.ListItems)
	items.GET("/:id", itemHandler.GetItem)

	engage := e.Group("/v1/items")
	engage.Use(authMiddleware.Authenticate)
	engage.POST("/:id/like", itemHandler.ToggleLike)
	engage.POST("/:id/interest", itemHandler.ExpressInterest)

	myItems := e.Group("/v1/my-items")
	myItems.Use(authMiddleware.Authenticate)
	myItems.GET("", itemHandler.ListMyItems)
	myItems.POST("", itemHandler.CreateItem)
	myItems.PUT("/:id", itemHandler.UpdateItem)
	myItems.DELETE("/:id", itemHandler.DeleteItem)
}
