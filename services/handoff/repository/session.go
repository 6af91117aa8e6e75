package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/kerbshare/trustengine/internal/pkg/constants"
	"github.com/kerbshare/trustengine/internal/pkg/database"
	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// SessionRepository stores handoff session state in Redis hashes. Each
// session carries a TTL so abandoned handoffs expire on their own.
type SessionRepository struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(cfg *models.Config, redis *database.RedisClient) *SessionRepository {
	return &SessionRepository{
		cfg:   cfg,
		redis: redis,
	}
}

// GetSession loads the session for a handoff. Returns (nil, nil) when no
// session exists; the first ping of a handoff has no previous state.
func (r *SessionRepository) GetSession(ctx context.Context, handoffID string) (*models.HandoffSession, error) {
	key := fmt.Sprintf(constants.KeyHandoffSession, handoffID)

	values, err := r.redis.HMGet(ctx, key,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
		constants.FieldDistanceM,
		constants.FieldIdenticalStreak,
		constants.FieldGeohash,
		constants.FieldUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load handoff session: %w", err)
	}

	// timestamp is written on every save, so its absence means no session
	if values[2] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt session latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt session longitude: %w", err)
	}
	ts, err := models.ParseTimestamp(values[2])
	if err != nil {
		return nil, fmt.Errorf("corrupt session timestamp: %w", err)
	}
	dist, err := strconv.ParseFloat(values[3], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt session distance: %w", err)
	}
	streak, err := strconv.Atoi(values[4])
	if err != nil {
		return nil, fmt.Errorf("corrupt session streak: %w", err)
	}

	session := &models.HandoffSession{
		LastPing: models.GpsPing{
			Latitude:          lat,
			Longitude:         lng,
			Timestamp:         ts,
			DistanceToPickupM: dist,
		},
		IdenticalStreak: streak,
		Geohash:         values[5],
	}
	if values[6] != "" {
		if updatedAt, err := models.ParseTimestamp(values[6]); err == nil {
			session.UpdatedAt = updatedAt
		}
	}

	return session, nil
}

// SaveSession writes the session hash and refreshes its TTL. Coordinates
// are stored with full float64 precision so the bit-identical comparison
// survives the round trip.
func (r *SessionRepository) SaveSession(ctx context.Context, handoffID string, session *models.HandoffSession) error {
	key := fmt.Sprintf(constants.KeyHandoffSession, handoffID)

	fields := map[string]interface{}{
		constants.FieldLatitude:        strconv.FormatFloat(session.LastPing.Latitude, 'g', -1, 64),
		constants.FieldLongitude:       strconv.FormatFloat(session.LastPing.Longitude, 'g', -1, 64),
		constants.FieldTimestamp:       models.FormatTimestamp(session.LastPing.Timestamp),
		constants.FieldDistanceM:       strconv.FormatFloat(session.LastPing.DistanceToPickupM, 'g', -1, 64),
		constants.FieldIdenticalStreak: strconv.Itoa(session.IdenticalStreak),
		constants.FieldGeohash:         session.Geohash,
		constants.FieldUpdatedAt:       models.FormatTimestamp(session.UpdatedAt),
	}

	if err := r.redis.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to save handoff session: %w", err)
	}

	ttl := time.Duration(r.cfg.Handoff.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if err := r.redis.Expire(ctx, key, ttl); err != nil {
		return fmt.Errorf("failed to set session expiry: %w", err)
	}

	return nil
}

// DeleteSession removes the session state for a finished handoff
func (r *SessionRepository) DeleteSession(ctx context.Context, handoffID string) error {
	key := fmt.Sprintf(constants.KeyHandoffSession, handoffID)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete handoff session: %w", err)
	}
	return nil
}
