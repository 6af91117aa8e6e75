package handoff

import (
	"context"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// SessionRepo defines the interface for handoff session state. GetSession
// returns (nil, nil) when no session exists yet; the first ping of a
// handoff has no previous ping by definition.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kerbshare/trustengine/services/handoff SessionRepo
type SessionRepo interface {
	GetSession(ctx context.Context, handoffID string) (*models.HandoffSession, error)
	SaveSession(ctx context.Context, handoffID string, session *models.HandoffSession) error
	DeleteSession(ctx context.Context, handoffID string) error
}
