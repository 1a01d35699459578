package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

type errorMapping struct {
	target  error
	code    int
	message string
}

// domainErrors is checked in order; the first match wins.
var domainErrors = []errorMapping{
	{domain.ErrItemNotFound, http.StatusNotFound, "item not found"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{domain.ErrConversationNotFound, http.StatusNotFound, "conversation not found"},
	{domain.ErrUserExists, http.StatusConflict, "user already exists"},
	{domain.ErrAlreadyReviewed, http.StatusConflict, "item already reviewed"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{domain.ErrNotSignedIn, http.StatusUnauthorized, "sign in required"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
}

// NewHTTPErrorHandler renders marketplace errors as {"error": "..."}.
// Errors that map to no status are logged and reported as a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, known := statusFor(err)
		if !known {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func statusFor(err error) (code int, msg string, known bool) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), true
	}
	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			return m.code, m.message, true
		}
	}
	return http.StatusInternalServerError, "internal server error", false
}
