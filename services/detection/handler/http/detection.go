package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kerbshare/trustengine/internal/pkg/logger"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	nrpkg "github.com/kerbshare/trustengine/internal/pkg/newrelic"
	"github.com/kerbshare/trustengine/internal/utils"
	"github.com/kerbshare/trustengine/services/detection"
)

// DetectionHandler handles HTTP requests for pattern detection
type DetectionHandler struct {
	detectionUC detection.DetectionUC
}

// NewDetectionHandler creates a new detection HTTP handler
func NewDetectionHandler(detectionUC detection.DetectionUC) *DetectionHandler {
	return &DetectionHandler{
		detectionUC: detectionUC,
	}
}

// GetPatterns runs a detection pass over the requested timeframe and
// returns the ranked pattern list with run statistics.
func (h *DetectionHandler) GetPatterns(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Detection.GetPatterns")

	window := models.DetectionWindow{}

	if timeframe := c.QueryParam("timeframe"); timeframe != "" {
		switch timeframe {
		case "1d", "7d", "30d":
			window.Timeframe = timeframe
		default:
			return utils.BadRequestResponse(c, "Invalid timeframe, expected 1d, 7d or 30d")
		}
	}

	if severity := c.QueryParam("severity"); severity != "" {
		minSeverity := models.Severity(severity)
		if !models.ValidSeverity(minSeverity) {
			return utils.BadRequestResponse(c, "Invalid severity: "+severity)
		}
		window.MinSeverity = minSeverity
	}

	if patternType := c.QueryParam("type"); patternType != "" {
		pt := models.PatternType(patternType)
		if !models.ValidPatternType(pt) {
			return utils.BadRequestResponse(c, "Invalid pattern type: "+patternType)
		}
		window.Type = pt
	}

	result, err := h.detectionUC.DetectPatterns(c.Request().Context(), window)
	if err != nil {
		logger.Error("Detection run failed",
			logger.String("timeframe", window.Timeframe),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to analyze booking patterns: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Patterns detected successfully", result)
}
