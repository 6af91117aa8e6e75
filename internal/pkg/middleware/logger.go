package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kerbshare/trustengine/internal/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger logs every request with latency and status, tagging it
// with a request id (generated when the caller did not send one).
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Set("request_id", requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status

			fields := []logger.Field{
				logger.String("request_id", requestID),
				logger.String("method", c.Request().Method),
				logger.String("path", c.Request().URL.Path),
				logger.String("client_ip", c.RealIP()),
				logger.Int("status", status),
				logger.Duration("latency", latency),
			}

			switch {
			case status >= 500:
				logger.Error("Server error", append(fields, logger.Err(err))...)
			case status >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request processed", fields...)
			}

			return nil
		}
	}
}
