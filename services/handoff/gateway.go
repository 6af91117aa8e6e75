package handoff

import (
	"context"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// HandoffGW defines the interface for the handoff service's outbound
// collaborators: the narrative generator and the NATS event stream.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kerbshare/trustengine/services/handoff HandoffGW
type HandoffGW interface {
	// Narrate asks the narrative collaborator to phrase the scoring
	// outcome. It is advisory only and must never change a score.
	Narrate(ctx context.Context, handoffID string, result *models.LocationTrustResult, ping models.GpsPing) (string, error)
	PublishTrustEvent(ctx context.Context, event *models.HandoffTrustEvent) error
	PublishSessionEnded(ctx context.Context, event *models.HandoffEndedEvent) error
}
