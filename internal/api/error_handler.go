package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ticketflow/ticketflow/internal/api/handler"
	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the envelope {"success": false, "error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := handler.ErrorResponse{Success: false}
		code := resolveError(err, log, c, &resp)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, resp *handler.ErrorResponse) int {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Error = ve.Error()
		resp.Fields = ve.Fields
		return http.StatusBadRequest
	}

	var rl *domain.RateLimitError
	if errors.As(err, &rl) {
		retryAt := time.Unix(rl.RetryAfter, 0).UTC()
		wait := int64(time.Until(retryAt).Seconds())
		if wait < 0 {
			wait = 0
		}
		c.Response().Header().Set("Retry-After", strconv.FormatInt(wait, 10))
		resp.Error = domain.ErrRateLimited.Error()
		resp.RetryAfter = retryAt.Format(time.RFC3339)
		return http.StatusTooManyRequests
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		resp.Error = fmt.Sprintf("%v", he.Message)
		return he.Code
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		// Same body whatever the cause.
		resp.Error = domain.ErrUnauthenticated.Error()
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		resp.Error = domain.ErrForbidden.Error()
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		resp.Error = domain.ErrInvalidCredentials.Error()
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidRole):
		resp.Error = domain.ErrInvalidRole.Error()
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound):
		resp.Error = domain.ErrUserNotFound.Error()
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists):
		resp.Error = domain.ErrUserExists.Error()
		return http.StatusConflict
	case errors.Is(err, domain.ErrUserHasTickets):
		resp.Error = domain.ErrUserHasTickets.Error()
		return http.StatusConflict
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	resp.Error = "internal server error"
	return http.StatusInternalServerError
}
