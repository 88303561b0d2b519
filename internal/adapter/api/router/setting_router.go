package router

import (
	"github.com/labstack/echo/v4"

	"voltmarket/internal/adapter/api/handler"
	"voltmarket/internal/adapter/api/middleware"
)

func SetupSettingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	settingHandler := handler.GetSettingHandler()

	e.GET("/v1/settings", settingHandler.GetPublic)

	admin := e.Group("/v1/admin/settings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", settingHandler.List)
	admin.PUT("/:key", settingHandler.Update)
	admin.DELETE("/:key", settingHandler.Delete)
}
