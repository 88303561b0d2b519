package router

import (
	"github.com/labstack/echo/v4"

	"voltmarket/internal/adapter/api/handler"
)

func SetupNotificationRouter(e *echo.Echo) {
	notificationHandler := handler.GetNotificationHandler()

	// Authentication happens inside the handler; the upgrade request carries
	// the token as a query param.
	e.GET("/v1/ws/notifications", notificationHandler.Connect)
}
