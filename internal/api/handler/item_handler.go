package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/edge-marketplace/marketplace/internal/api/metrics"
	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
	"github.com/edge-marketplace/marketplace/internal/core/service"
)

const defaultFeatured = 6

// ItemHandler serves listings and their reviews.
type ItemHandler struct {
	store ports.Store
}

func NewItemHandler(store ports.Store) *ItemHandler {
	return &ItemHandler{store: store}
}

// List handles GET /v1/items.
//
// @Summary      Browse approved listings
// @Tags         items
// @Produce      json
// @Param        q          query     string  false  "Search in title, brand and description"
// @Param        category   query     string  false  "all, knife or watch"
// @Param        condition  query     string  false  "all, new, like-new, good or fair"
// @Param        sort       query     string  false  "newest, price-low or price-high"
// @Param        page       query     int     false  "1-based page"
// @Success      200        {object}  ports.ListingPage
// @Failure      400        {object}  map[string]string
// @Router       /v1/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	var req listItemsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page := service.Browse(h.store.State(), ports.ListingQuery{
		Search:    req.Search,
		Category:  req.Category,
		Condition: req.Condition,
		Sort:      req.Sort,
		Page:      req.Page,
	})
	return c.JSON(http.StatusOK, page)
}

// Featured handles GET /v1/items/featured.
//
// @Summary      Featured listings
// @Tags         items
// @Produce      json
// @Param        limit  query     int  false  "Number of listings (default 6)"
// @Success      200    {array}   domain.Item
// @Router       /v1/items/featured [get]
func (h *ItemHandler) Featured(c echo.Context) error {
	n := defaultFeatured
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		n = parsed
	}
	return c.JSON(http.StatusOK, service.Featured(h.store.State(), n))
}

// Get handles GET /v1/items/:id.
//
// @Summary      Listing detail with seller and reviews
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  ports.ItemDetail
// @Failure      404  {object}  map[string]string
// @Router       /v1/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	detail, err := service.ItemDetail(h.store.State(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Create handles POST /v1/items. New listings wait for moderation.
//
// @Summary      Submit a listing
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      createItemRequest  true  "Listing"
// @Success      201   {object}  domain.Item
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	u, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, ok := h.store.AddItem(c.Request().Context(), toNewItem(req))
	if !ok {
		return fmt.Errorf("create item for %s: %w", u.ID, domain.ErrNotSignedIn)
	}

	metrics.ListingsCreatedTotal.WithLabelValues(string(item.Category)).Inc()
	return c.JSON(http.StatusCreated, item)
}

// AddReview handles POST /v1/items/:id/reviews. A member reviews an item once.
//
// @Summary      Review a listing
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Item ID"
// @Param        body  body      addReviewRequest  true  "Review"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/items/{id}/reviews [post]
func (h *ItemHandler) AddReview(c echo.Context) error {
	u, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req addReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.store.AddReviewOnce(c.Request().Context(), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		return fmt.Errorf("review by %s: %w", u.ID, err)
	}
	return c.JSON(http.StatusCreated, review)
}
