package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/kerbshare/trustengine/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware validates the API key for service-to-service
// communication. Keys are passed in explicitly at construction; there is
// no ambient key registry.
func ValidateAPIKey(serviceKeys map[string]string, allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			validKey := false
			for _, service := range allowedServices {
				key := serviceKeys[service]
				if key != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
