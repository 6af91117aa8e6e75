package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kerbshare/trustengine/internal/pkg/constants"
	"github.com/kerbshare/trustengine/internal/pkg/logger"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/internal/pkg/retry"
)

// NATSPublisher interface for publishing messages
type NATSPublisher interface {
	Publish(subject string, data []byte) error
}

// DetectionGateway publishes advisory detection events to NATS so
// downstream policy consumers can react without polling the endpoint.
type DetectionGateway struct {
	publisher NATSPublisher
	retrier   *retry.Retrier
}

// NewDetectionGateway creates a new detection gateway
func NewDetectionGateway(publisher NATSPublisher, zapLogger *logger.ZapLogger) *DetectionGateway {
	retryCfg := retry.Config{
		MaxRetries: 2,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return err != nil
		},
	}

	return &DetectionGateway{
		publisher: publisher,
		retrier:   retry.New(retryCfg, zapLogger),
	}
}

// PublishPatternDetected publishes a detected pattern event to NATS
func (g *DetectionGateway) PublishPatternDetected(ctx context.Context, pattern *models.SuspiciousPattern) error {
	data, err := json.Marshal(pattern)
	if err != nil {
		return fmt.Errorf("failed to marshal pattern event: %w", err)
	}

	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.publisher.Publish(constants.SubjectPatternDetected, data)
	})
}
