package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/commentbox/comment-system/internal/core/ports"
)

// SessionAuth guards admin routes. It extracts the Bearer token from the
// Authorization header and checks it against the credential store; token
// validity is purely existence-with-TTL, there are no claims to parse.
func SessionAuth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "未授权")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "未授权")
			}

			if !auth.Validate(c.Request().Context(), parts[1]) {
				return echo.NewHTTPError(http.StatusUnauthorized, "未授权")
			}

			return next(c)
		}
	}
}
