package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// SessionKey is the context key holding the *domain.User of the session.
const SessionKey = "session"

// Auth validates the JWT, then checks it still belongs to the stored current
// session. A logout or a later login by anyone ends the session, so the
// token stops working even when it has not expired.
func Auth(jwtSecret string, sessions ports.SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			subject, err := claims.GetSubject()
			if err != nil || subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			session, err := sessions.CurrentSession(c.Request().Context())
			if err != nil {
				return err
			}
			if session == nil || session.ID != subject {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrSessionEnded.Error())
			}

			c.Set(SessionKey, session)
			c.Set("role", string(session.Role))

			return next(c)
		}
	}
}
