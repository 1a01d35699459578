package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edge-marketplace/marketplace/internal/core/ports"
)

// StateHandler exposes the whole store for clients that hydrate at once.
type StateHandler struct {
	store ports.Store
}

func NewStateHandler(store ports.Store) *StateHandler {
	return &StateHandler{store: store}
}

// Get handles GET /v1/state.
//
// @Summary      Full store state
// @Tags         state
// @Produce      json
// @Success      200  {object}  domain.State
// @Router       /v1/state [get]
func (h *StateHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.State())
}
