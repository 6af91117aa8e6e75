package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbshare/trustengine/internal/pkg/constants"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/services/handoff/gateway"
)

type fakePublisher struct {
	subjects []string
	payloads [][]byte
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return nil
}

func narrativeConfig(url string) *models.Config {
	return &models.Config{
		Narrative: models.NarrativeConfig{
			URL:       url,
			TimeoutMs: 2000,
			Enabled:   true,
		},
	}
}

func TestNarrate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/narratives", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "handoff-1", req["handoff_id"])

		json.NewEncoder(w).Encode(map[string]string{
			"narrative": "Your guest is half a mile out and closing.",
		})
	}))
	defer server.Close()

	gw := gateway.NewHandoffGateway(narrativeConfig(server.URL), &fakePublisher{}, nil)

	eta := 4
	result := &models.LocationTrustResult{
		TrustScore: 95,
		Direction:  models.DirectionApproaching,
		ETAMinutes: &eta,
	}

	narrative, err := gw.Narrate(context.Background(), "handoff-1", result, models.GpsPing{DistanceToPickupM: 800})
	assert.NoError(t, err)
	assert.Equal(t, "Your guest is half a mile out and closing.", narrative)
}

func TestNarrate_CollaboratorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gw := gateway.NewHandoffGateway(narrativeConfig(server.URL), &fakePublisher{}, nil)

	result := &models.LocationTrustResult{TrustScore: 85, Direction: models.DirectionStationary}
	_, err := gw.Narrate(context.Background(), "handoff-1", result, models.GpsPing{})
	assert.Error(t, err)
}

func TestNarrate_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := gateway.NewHandoffGateway(narrativeConfig(server.URL), &fakePublisher{}, nil)
	result := &models.LocationTrustResult{TrustScore: 60, Direction: models.DirectionAway}

	// breaker trips after five consecutive failures; later calls fail fast
	for i := 0; i < 8; i++ {
		_, err := gw.Narrate(context.Background(), "handoff-1", result, models.GpsPing{})
		assert.Error(t, err)
	}
	assert.Equal(t, 5, calls)
}

func TestNarrate_NotConfigured(t *testing.T) {
	gw := gateway.NewHandoffGateway(&models.Config{}, &fakePublisher{}, nil)

	result := &models.LocationTrustResult{TrustScore: 85, Direction: models.DirectionStationary}
	_, err := gw.Narrate(context.Background(), "handoff-1", result, models.GpsPing{})
	assert.Error(t, err)
}

func TestPublishTrustEvent(t *testing.T) {
	pub := &fakePublisher{}
	gw := gateway.NewHandoffGateway(&models.Config{}, pub, nil)

	eta := 7
	event := &models.HandoffTrustEvent{
		HandoffID:  "handoff-1",
		TrustScore: 92,
		Direction:  models.DirectionApproaching,
		ETAMinutes: &eta,
	}

	require.NoError(t, gw.PublishTrustEvent(context.Background(), event))
	require.Equal(t, []string{constants.SubjectHandoffScored}, pub.subjects)

	var decoded models.HandoffTrustEvent
	require.NoError(t, json.Unmarshal(pub.payloads[0], &decoded))
	assert.Equal(t, "handoff-1", decoded.HandoffID)
	assert.Equal(t, 92, decoded.TrustScore)
	assert.Equal(t, 7, *decoded.ETAMinutes)
}

func TestPublishSessionEnded(t *testing.T) {
	pub := &fakePublisher{}
	gw := gateway.NewHandoffGateway(&models.Config{}, pub, nil)

	event := &models.HandoffEndedEvent{HandoffID: "handoff-1"}
	require.NoError(t, gw.PublishSessionEnded(context.Background(), event))
	assert.Equal(t, []string{constants.SubjectHandoffEnded}, pub.subjects)
}
