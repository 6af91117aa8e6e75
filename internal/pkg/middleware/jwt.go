package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/kerbshare/trustengine/internal/pkg/jwt"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication on the
// operator-facing endpoints
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if operatorID, ok := (*claims)["operator_id"]; ok {
				c.Set("operator_id", operatorID)
			}
			if role, ok := (*claims)["role"]; ok {
				c.Set("operator_role", role)
			}

			return next(c)
		}
	}
}
