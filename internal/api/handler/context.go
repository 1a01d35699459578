package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
)

// sessionUser returns the user injected by the Session middleware.
func sessionUser(c echo.Context) (*domain.User, error) {
	u, ok := c.Get("user").(*domain.User)
	if !ok || u == nil {
		return nil, fmt.Errorf("session user: %w", domain.ErrNotSignedIn)
	}
	return u, nil
}

// bindAndValidate decodes the request into req, normalises it and runs the
// validator. Validation failures become 400 responses.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if n, ok := req.(interface{ normalize() }); ok {
		n.normalize()
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
