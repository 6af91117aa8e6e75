package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kerbshare/trustengine/internal/pkg/middleware"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/services/handoff"
	httpHandler "github.com/kerbshare/trustengine/services/handoff/handler/http"
)

// Handler combines all handlers for the handoff service
type Handler struct {
	handoffHTTP *httpHandler.HandoffHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(handoffUC handoff.HandoffUC, cfg *models.Config) *Handler {
	return &Handler{
		handoffHTTP: httpHandler.NewHandoffHandler(handoffUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Ping scoring is
// service-to-service only, so it sits behind API key auth.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	serviceKeys := map[string]string{
		"booking-service":  h.cfg.APIKeys.BookingService,
		"location-service": h.cfg.APIKeys.LocationService,
	}

	internal := e.Group("/internal", middleware.ValidateAPIKey(serviceKeys, "booking-service", "location-service"))
	internal.POST("/handoffs/:handoffID/pings", h.handoffHTTP.ScorePing)
	internal.DELETE("/handoffs/:handoffID", h.handoffHTTP.EndSession)
}
