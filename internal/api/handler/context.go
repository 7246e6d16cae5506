package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/core/domain"
)

// sessionKey matches middleware.SessionKey.
const sessionKey = "session"

// ctxSession returns the session injected by the Auth middleware. A missing
// session means the middleware did not run; reject with 401.
func ctxSession(c echo.Context) (*domain.User, error) {
	u, _ := c.Get(sessionKey).(*domain.User)
	if u == nil || u.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return u, nil
}

// ifMatch returns the version named by the If-Match header, without quotes
// or weak prefix. Empty means the client did not ask for a check.
func ifMatch(c echo.Context) string {
	v := strings.TrimSpace(c.Request().Header.Get("If-Match"))
	v = strings.TrimPrefix(v, "W/")
	return strings.Trim(v, `"`)
}

func setETag(c echo.Context, version string) {
	if version != "" {
		c.Response().Header().Set("ETag", `"`+version+`"`)
	}
}
