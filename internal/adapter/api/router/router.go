package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authClient *auth.Client) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupItemRouter(e, authMiddleware, authClient)
	SetupRequestRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
