package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbshare/trustengine/internal/pkg/models"
	httpHandler "github.com/kerbshare/trustengine/services/handoff/handler/http"
	"github.com/kerbshare/trustengine/services/handoff/mocks"
)

func newPingRequest(handoffID, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/handoffs/"+handoffID+"/pings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("handoffID")
	c.SetParamValues(handoffID)
	return c, rec
}

func TestScorePing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eta := 3
	uc := mocks.NewMockHandoffUC(ctrl)
	uc.EXPECT().
		ScorePing(gomock.Any(), "handoff-1", gomock.Any()).
		Return(&models.LocationTrustResult{
			TrustScore: 95,
			Direction:  models.DirectionApproaching,
			ETAMinutes: &eta,
			Narrative:  "0.6 mi away, approaching",
		}, nil)

	h := httpHandler.NewHandoffHandler(uc)

	body := `{"latitude":30.26,"longitude":-97.74,"timestamp":"2026-08-30T15:00:00Z","distance_to_pickup_m":1000}`
	c, rec := newPingRequest("handoff-1", body)

	require.NoError(t, h.ScorePing(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                       `json:"success"`
		Data    models.LocationTrustResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 95, resp.Data.TrustScore)
	assert.Equal(t, models.DirectionApproaching, resp.Data.Direction)
	require.NotNil(t, resp.Data.ETAMinutes)
	assert.Equal(t, 3, *resp.Data.ETAMinutes)
}

func TestScorePing_MissingTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := httpHandler.NewHandoffHandler(mocks.NewMockHandoffUC(ctrl))

	c, rec := newPingRequest("handoff-1", `{"latitude":30.26,"longitude":-97.74}`)

	require.NoError(t, h.ScorePing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScorePing_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := httpHandler.NewHandoffHandler(mocks.NewMockHandoffUC(ctrl))

	c, rec := newPingRequest("handoff-1", `{"latitude":"far away"}`)

	require.NoError(t, h.ScorePing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScorePing_UsecaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockHandoffUC(ctrl)
	uc.EXPECT().
		ScorePing(gomock.Any(), "handoff-1", gomock.Any()).
		Return(nil, assert.AnError)

	h := httpHandler.NewHandoffHandler(uc)

	body := `{"latitude":1,"longitude":2,"timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`
	c, rec := newPingRequest("handoff-1", body)

	require.NoError(t, h.ScorePing(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEndSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockHandoffUC(ctrl)
	uc.EXPECT().EndSession(gomock.Any(), "handoff-1").Return(nil)

	h := httpHandler.NewHandoffHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/internal/handoffs/handoff-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("handoffID")
	c.SetParamValues("handoff-1")

	require.NoError(t, h.EndSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEndSession_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockHandoffUC(ctrl)
	uc.EXPECT().EndSession(gomock.Any(), "handoff-1").Return(assert.AnError)

	h := httpHandler.NewHandoffHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/internal/handoffs/handoff-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("handoffID")
	c.SetParamValues("handoff-1")

	require.NoError(t, h.EndSession(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
