package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kerbshare/trustengine/internal/pkg/constants"
	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// NATSPublisher interface for publishing messages
type NATSPublisher interface {
	Publish(subject string, data []byte) error
}

// PublishTrustEvent publishes the per-ping scoring outcome to NATS
func (g *HandoffGateway) PublishTrustEvent(ctx context.Context, event *models.HandoffTrustEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal trust event: %w", err)
	}

	return g.publisher.Publish(constants.SubjectHandoffScored, data)
}

// PublishSessionEnded publishes a session-ended event to NATS
func (g *HandoffGateway) PublishSessionEnded(ctx context.Context, event *models.HandoffEndedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal session ended event: %w", err)
	}

	return g.publisher.Publish(constants.SubjectHandoffEnded, data)
}
