package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/api/metrics"
	"github.com/cras-office/agenda/internal/core/domain"
)

// RequirePage lets the request through only when the session role may open
// page. It must run after Auth.
func RequirePage(page domain.Page) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, _ := c.Get(SessionKey).(*domain.User)
			if session == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}
			if !domain.IsAllowed(session.Role, page) {
				metrics.GateDenialsTotal.WithLabelValues(string(page)).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": domain.ErrPageForbidden.Error()})
			}
			return next(c)
		}
	}
}
