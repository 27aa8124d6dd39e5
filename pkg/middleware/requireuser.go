package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUser reads the user id set by the app shell (X-User-Id header or
// FARM_UID cookie) and rejects requests without one. When enabled=false it
// passes through; use DevLogin instead in development.
func RequireUser(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-User-Id")
			if uid == "" {
				if ck, err := c.Cookie("FARM_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing user id"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
