package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the caller identity injected by the Auth middleware.
// An empty id means the middleware did not run; fail before any service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Request is not authorized")
	}
	return userID, nil
}
