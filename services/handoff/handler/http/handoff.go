package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kerbshare/trustengine/internal/pkg/logger"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	nrpkg "github.com/kerbshare/trustengine/internal/pkg/newrelic"
	"github.com/kerbshare/trustengine/internal/utils"
	"github.com/kerbshare/trustengine/services/handoff"
)

// HandoffHandler handles HTTP requests for handoff location scoring
type HandoffHandler struct {
	handoffUC handoff.HandoffUC
}

// NewHandoffHandler creates a new handoff HTTP handler
func NewHandoffHandler(handoffUC handoff.HandoffUC) *HandoffHandler {
	return &HandoffHandler{
		handoffUC: handoffUC,
	}
}

// ScorePing scores one GPS ping for an in-progress handoff. The scorer
// always produces a best-effort result, so this endpoint only fails on a
// malformed request.
func (h *HandoffHandler) ScorePing(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Handoff.ScorePing")

	handoffID := c.Param("handoffID")
	if handoffID == "" {
		return utils.BadRequestResponse(c, "Handoff ID is required")
	}
	nrpkg.AddTransactionAttribute(txn, "handoff.id", handoffID)

	var ping models.GpsPing
	if err := c.Bind(&ping); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if ping.Timestamp.IsZero() {
		return utils.BadRequestResponse(c, "Ping timestamp is required")
	}

	result, err := h.handoffUC.ScorePing(c.Request().Context(), handoffID, ping)
	if err != nil {
		logger.Error("Failed to score handoff ping",
			logger.String("handoff_id", handoffID),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to score ping: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ping scored successfully", result)
}

// EndSession discards the session state for a finished handoff
func (h *HandoffHandler) EndSession(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Handoff.EndSession")

	handoffID := c.Param("handoffID")
	if handoffID == "" {
		return utils.BadRequestResponse(c, "Handoff ID is required")
	}

	if err := h.handoffUC.EndSession(c.Request().Context(), handoffID); err != nil {
		logger.Error("Failed to end handoff session",
			logger.String("handoff_id", handoffID),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to end handoff session: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Handoff session ended", nil)
}
