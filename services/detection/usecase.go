package detection

import (
	"context"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// DetectionUC defines the interface for pattern detection business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kerbshare/trustengine/services/detection DetectionUC
type DetectionUC interface {
	DetectPatterns(ctx context.Context, window models.DetectionWindow) (*models.DetectionResult, error)
}
