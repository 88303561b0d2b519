package router

import (
	"github.com/labstack/echo/v4"

	"voltmarket/internal/adapter/api/handler"
	"voltmarket/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()
	documentHandler := handler.GetDocumentHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/me", userHandler.GetMe)
	users.PATCH("/me", userHandler.UpdateProfile)
	users.POST("/me/sync-verification", userHandler.SyncVerification)

	users.POST("/me/documents", documentHandler.Upload)
	users.DELETE("/me/documents/:id", documentHandler.Delete)
}
