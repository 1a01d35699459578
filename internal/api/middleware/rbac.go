package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
)

// RBAC admits a request only when the role Session stored on the context is
// one of allowedRoles. Refusals are returned as domain.ErrForbidden for the
// error handler to render.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				if role == "" {
					role = "anonymous"
				}
				return fmt.Errorf("%s %s as %s: %w", c.Request().Method, c.Path(), role, domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
