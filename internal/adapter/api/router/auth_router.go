package router

import (
	"github.com/labstack/echo/v4"

	"voltmarket/internal/adapter/api/handler"
	"voltmarket/internal/adapter/api/middleware"
	"voltmarket/internal/infrastructure/ratelimit"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	// Public routes, rate limited per source IP
	e.POST("/v1/auth/register", authHandler.Register, middleware.RateLimitMiddleware(limiter, "register"))
	e.POST("/v1/auth/login", authHandler.Login, middleware.RateLimitMiddleware(limiter, "login"))
	e.POST("/v1/auth/google", authHandler.GoogleLogin, middleware.RateLimitMiddleware(limiter, "login"))
	e.POST("/v1/auth/forgot-password", authHandler.ForgotPassword, middleware.RateLimitMiddleware(limiter, "reset"))

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/logout", authHandler.Logout)
	protected.POST("/send-verification", authHandler.SendVerification)
	protected.PUT("/password", authHandler.ChangePassword)
}
