package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/kerbshare/trustengine/internal/pkg/circuitbreaker"
	httppkg "github.com/kerbshare/trustengine/internal/pkg/http"
	"github.com/kerbshare/trustengine/internal/pkg/logger"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	nrpkg "github.com/kerbshare/trustengine/internal/pkg/newrelic"
	"github.com/kerbshare/trustengine/internal/utils"
)

const narrativePath = "/v1/narratives"

// HandoffGateway talks to the handoff service's outbound collaborators:
// the narrative generator over HTTP and the NATS event stream. The
// narrative call sits behind a circuit breaker so a degraded collaborator
// stops costing a timeout per ping.
type HandoffGateway struct {
	cfg        *models.Config
	httpClient *httppkg.Client
	publisher  NATSPublisher
	breaker    *circuitbreaker.CircuitBreaker
}

// NewHandoffGateway creates a new handoff gateway
func NewHandoffGateway(cfg *models.Config, publisher NATSPublisher, zapLogger *logger.ZapLogger) *HandoffGateway {
	var httpClient *httppkg.Client
	if cfg.Narrative.URL != "" {
		timeout := time.Duration(cfg.Narrative.TimeoutMs) * time.Millisecond
		httpClient = httppkg.NewClient(cfg.Narrative.URL, timeout)
	}

	breakerCfg := circuitbreaker.DefaultConfig("narrative-service")
	breakerCfg.Timeout = 30 * time.Second

	return &HandoffGateway{
		cfg:        cfg,
		httpClient: httpClient,
		publisher:  publisher,
		breaker:    circuitbreaker.New(breakerCfg, zapLogger),
	}
}

type narrativeRequest struct {
	HandoffID     string  `json:"handoff_id"`
	TrustScore    int     `json:"trust_score"`
	Direction     string  `json:"direction"`
	ETAMinutes    *int    `json:"eta_minutes"`
	DistanceMiles float64 `json:"distance_miles"`
}

type narrativeResponse struct {
	Narrative string `json:"narrative"`
}

// Narrate asks the collaborator to phrase the scoring outcome. Callers
// own the timeout and the fallback string; this only does the call.
func (g *HandoffGateway) Narrate(ctx context.Context, handoffID string, result *models.LocationTrustResult, ping models.GpsPing) (string, error) {
	if g.httpClient == nil {
		return "", errors.New("narrative collaborator not configured")
	}

	req := narrativeRequest{
		HandoffID:     handoffID,
		TrustScore:    result.TrustScore,
		Direction:     string(result.Direction),
		ETAMinutes:    result.ETAMinutes,
		DistanceMiles: utils.MetersToMiles(ping.DistanceToPickupM),
	}

	var resp narrativeResponse
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return nrpkg.WithExternalSegment(ctx, "narrative-service", "Narrate", g.cfg.Narrative.URL+narrativePath, func() error {
			return g.httpClient.PostJSON(ctx, narrativePath, req, &resp)
		})
	})
	if err != nil {
		return "", err
	}

	return resp.Narrative, nil
}
