package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrPageForbidden):
		return http.StatusForbidden, domain.ErrPageForbidden.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrAppointmentNotFound):
		return http.StatusNotFound, domain.ErrAppointmentNotFound.Error()
	case errors.Is(err, domain.ErrVersionConflict):
		return http.StatusPreconditionFailed, domain.ErrVersionConflict.Error()
	case errors.Is(err, domain.ErrUnsupportedImage):
		return http.StatusUnsupportedMediaType, domain.ErrUnsupportedImage.Error()
	case errors.Is(err, domain.ErrExtractionUnavailable):
		return http.StatusServiceUnavailable, domain.ErrExtractionUnavailable.Error()
	case errors.Is(err, domain.ErrExtractionFailed):
		log.Warn().Err(err).Str("path", c.Path()).Msg("extraction failed")
		return http.StatusBadGateway, domain.ErrExtractionFailed.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
