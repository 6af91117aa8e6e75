package detection

import (
	"context"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// DetectionGW defines the interface for publishing detection events to
// downstream consumers
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kerbshare/trustengine/services/detection DetectionGW
type DetectionGW interface {
	PublishPatternDetected(ctx context.Context, pattern *models.SuspiciousPattern) error
}
