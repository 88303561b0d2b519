package router

import (
	"github.com/labstack/echo/v4"

	"voltmarket/internal/adapter/api/middleware"
	"voltmarket/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, authMiddleware, limiter)
	SetupUserRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupSettingRouter(e, authMiddleware, adminMiddleware)
	SetupNotificationRouter(e)
	SetupHealthRouter(e)
}
