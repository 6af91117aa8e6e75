package handoff

import (
	"context"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// HandoffUC defines the interface for location trust scoring during a
// pickup handoff
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kerbshare/trustengine/services/handoff HandoffUC
type HandoffUC interface {
	ScorePing(ctx context.Context, handoffID string, ping models.GpsPing) (*models.LocationTrustResult, error)
	EndSession(ctx context.Context, handoffID string) error
}
