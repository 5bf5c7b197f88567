package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookstack/catalog-api/internal/core/ports"
)

// Auth gates a route behind bearer-token authentication: it extracts the
// token, verifies it, resolves the embedded id to a stored user, and stashes
// that id in the request context for the handler. One verification attempt
// per request, no retries.
func Auth(tokens ports.TokenVerifier, users ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization token required")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Request is not authorized")
			}

			// The token may outlive its user; a dangling subject is as
			// unauthorized as a bad signature.
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Request is not authorized")
			}

			c.Set("user_id", user.ID)

			return next(c)
		}
	}
}
