package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edge-marketplace/marketplace/internal/api/metrics"
	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
	"github.com/edge-marketplace/marketplace/internal/core/service"
)

// ModerationHandler serves the moderator's review queue.
type ModerationHandler struct {
	store ports.Store
}

func NewModerationHandler(store ports.Store) *ModerationHandler {
	return &ModerationHandler{store: store}
}

// Queue handles GET /v1/moderation/items.
//
// @Summary      All listings grouped by status
// @Tags         moderation
// @Produce      json
// @Success      200  {object}  ports.StatusBuckets
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/moderation/items [get]
func (h *ModerationHandler) Queue(c echo.Context) error {
	return c.JSON(http.StatusOK, service.ModerationQueue(h.store.State()))
}

// SetStatus handles PATCH /v1/moderation/items/:id/status.
//
// @Summary      Approve, reject or requeue a listing
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Item ID"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Item
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/moderation/items/{id}/status [patch]
func (h *ModerationHandler) SetStatus(c echo.Context) error {
	itemID := c.Param("id")
	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, found, changed := h.store.UpdateItemStatus(c.Request().Context(), itemID, domain.ItemStatus(req.Status))
	if !found {
		return fmt.Errorf("set status %s: %w", itemID, domain.ErrItemNotFound)
	}
	if changed {
		metrics.ModerationDecisionsTotal.WithLabelValues(string(item.Status)).Inc()
	}
	return c.JSON(http.StatusOK, item)
}
