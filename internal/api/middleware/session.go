package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
)

// SessionSource exposes the signed-in user.
type SessionSource interface {
	CurrentUser() *domain.User
}

// Session rejects requests while nobody is signed in and injects the current
// user and its role into the context.
func Session(src SessionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := src.CurrentUser()
			if u == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
			}

			c.Set("user", u)
			c.Set("role", u.Role())

			return next(c)
		}
	}
}
