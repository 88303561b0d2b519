package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"voltmarket/internal/usecase"
)

type AuthMiddleware struct {
	session usecase.SessionClient
}

func NewAuthMiddleware(session usecase.SessionClient) *AuthMiddleware {
	return &AuthMiddleware{
		session: session,
	}
}

// Authenticate verifies the bearer token and stores the subject and the
// verified claims on the request context. Claims are re-verified on every
// request and never cached server-side.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		uid, claims, err := m.session.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", uid)
		c.Set("claims", claims)
		c.Set("token", parts[1])

		return next(c)
	}
}
