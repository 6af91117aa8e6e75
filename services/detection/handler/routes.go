package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kerbshare/trustengine/internal/pkg/middleware"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/services/detection"
	httpHandler "github.com/kerbshare/trustengine/services/detection/handler/http"
)

// Handler combines all handlers for the detection service
type Handler struct {
	detectionHTTP *httpHandler.DetectionHandler
	cfg           *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(detectionUC detection.DetectionUC, cfg *models.Config) *Handler {
	return &Handler{
		detectionHTTP: httpHandler.NewDetectionHandler(detectionUC),
		cfg:           cfg,
	}
}

// RegisterRoutes registers all HTTP routes. The patterns endpoint is for
// trust operators, so it sits behind JWT auth.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.GET("/patterns", h.detectionHTTP.GetPatterns)
}
