package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
	"github.com/edge-marketplace/marketplace/internal/core/service"
)

// ProfileHandler serves the signed-in member's own profile.
type ProfileHandler struct {
	store ports.Store
}

func NewProfileHandler(store ports.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// Update merges the supplied fields into the member's profile.
//
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	u, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		req.Email = &email
		if other, ok := h.store.State().UserByEmail(email); ok && other.ID != u.ID {
			return fmt.Errorf("update profile %s: %w", u.ID, domain.ErrUserExists)
		}
	}

	h.store.UpdateProfile(c.Request().Context(), toProfileUpdate(req))

	return c.JSON(http.StatusOK, sessionResponse{User: h.store.CurrentUser()})
}

// Stats returns the listing and review counters shown on the profile page.
//
// @Summary      Profile statistics
// @Tags         profile
// @Produce      json
// @Success      200  {object}  ports.ProfileStats
// @Failure      401  {object}  map[string]string
// @Router       /v1/profile/stats [get]
func (h *ProfileHandler) Stats(c echo.Context) error {
	u, err := sessionUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, service.ProfileStats(h.store.State(), u.ID))
}

// Listings returns the member's own listings grouped by moderation status.
//
// @Summary      My listings
// @Tags         profile
// @Produce      json
// @Success      200  {object}  ports.StatusBuckets
// @Failure      401  {object}  map[string]string
// @Router       /v1/my/listings [get]
func (h *ProfileHandler) Listings(c echo.Context) error {
	u, err := sessionUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, service.SellerListings(h.store.State(), u.ID))
}
