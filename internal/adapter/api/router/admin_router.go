package router

import (
	"github.com/labstack/echo/v4"

	"voltmarket/internal/adapter/api/handler"
	"voltmarket/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/businesses/under-review", adminHandler.ListUnderReview)
	admin.POST("/businesses/:id/approve", adminHandler.ApproveBusiness)
	admin.POST("/businesses/:id/reject", adminHandler.RejectBusiness)
	admin.PUT("/users/:id/admin", adminHandler.GrantAdmin)
}
