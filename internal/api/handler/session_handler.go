package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
)

// SessionHandler signs members in and out.
type SessionHandler struct {
	store ports.Store
}

func NewSessionHandler(store ports.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// Login signs in the member registered under the given email.
//
// @Summary      Sign in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if !h.store.Login(c.Request().Context(), req.Email, req.Password) {
		return fmt.Errorf("login %s: %w", req.Email, domain.ErrInvalidCredentials)
	}

	return c.JSON(http.StatusOK, sessionResponse{User: h.store.CurrentUser()})
}

// Register creates a member account and signs it in.
//
// @Summary      Register
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if !h.store.Register(c.Request().Context(), req.Username, req.Email, req.Password) {
		return fmt.Errorf("register %s: %w", req.Email, domain.ErrUserExists)
	}

	return c.JSON(http.StatusCreated, sessionResponse{User: h.store.CurrentUser()})
}

// Logout signs the current member out. It succeeds when nobody is signed in.
//
// @Summary      Sign out
// @Tags         session
// @Success      204
// @Router       /v1/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.store.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Current returns the signed-in member, or 204 when signed out.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Success      204
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	u := h.store.CurrentUser()
	if u == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, sessionResponse{User: u})
}
