package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kerbshare/trustengine/internal/pkg/logger"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	nrpkg "github.com/kerbshare/trustengine/internal/pkg/newrelic"
	"github.com/kerbshare/trustengine/internal/utils"
	"github.com/kerbshare/trustengine/services/handoff"
)

const sessionGeohashPrecision = 9

// HandoffUsecase scores GPS pings against the previous ping of the same
// handoff session. Pings within one session are serialized by a per-key
// lock; concurrent sessions share nothing.
type HandoffUsecase struct {
	cfg         *models.Config
	sessionRepo handoff.SessionRepo
	handoffGW   handoff.HandoffGW

	mu           sync.Mutex
	sessionLocks map[string]*sessionLock
}

// sessionLock serializes writers of one handoff session. The refcount
// covers holders and waiters, so the map entry is pruned exactly when the
// session goes idle and a waiter never sees its mutex swapped out.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewHandoffUsecase creates a new handoff usecase
func NewHandoffUsecase(
	cfg *models.Config,
	sessionRepo handoff.SessionRepo,
	handoffGW handoff.HandoffGW,
) *HandoffUsecase {
	return &HandoffUsecase{
		cfg:          cfg,
		sessionRepo:  sessionRepo,
		handoffGW:    handoffGW,
		sessionLocks: make(map[string]*sessionLock),
	}
}

// ScorePing evaluates one ping for the given handoff session. It always
// returns a best-effort score; a session store failure downgrades to the
// no-previous baseline rather than failing the request.
func (uc *HandoffUsecase) ScorePing(ctx context.Context, handoffID string, ping models.GpsPing) (*models.LocationTrustResult, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "handoff.ScorePing", func() (*models.LocationTrustResult, error) {
		lock := uc.acquireSessionLock(handoffID)
		defer uc.releaseSessionLock(handoffID, lock)

		session, err := uc.sessionRepo.GetSession(ctx, handoffID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to load handoff session, scoring without previous ping",
				logger.String("handoff_id", handoffID),
				logger.Err(err))
			session = nil
		}

		var previous *models.GpsPing
		streak := 0
		if session != nil {
			previous = &session.LastPing
			streak = session.IdenticalStreak
		}

		assessment := assessPing(ping, previous, streak, uc.cfg.Handoff)
		result := &models.LocationTrustResult{
			TrustScore: assessment.Trust,
			Direction:  assessment.Direction,
			ETAMinutes: assessment.ETAMinutes,
		}
		result.Narrative = uc.narrate(ctx, handoffID, result, ping)

		newStreak := 0
		if assessment.Identical {
			newStreak = streak + 1
		}
		updated := &models.HandoffSession{
			LastPing:        ping,
			IdenticalStreak: newStreak,
			Geohash:         utils.EncodeLocation(ping, sessionGeohashPrecision),
			UpdatedAt:       time.Now(),
		}
		if err := uc.sessionRepo.SaveSession(ctx, handoffID, updated); err != nil {
			logger.WarnCtx(ctx, "Failed to save handoff session",
				logger.String("handoff_id", handoffID),
				logger.Err(err))
		}

		uc.publishTrustEvent(ctx, handoffID, result)

		logger.DebugCtx(ctx, "Scored handoff ping",
			logger.String("handoff_id", handoffID),
			logger.Int("trust_score", result.TrustScore),
			logger.String("direction", string(result.Direction)),
			logger.Float64("speed_mph", assessment.SpeedMPH))

		return result, nil
	})
}

// EndSession discards the session state for a completed, expired or
// bypassed handoff.
func (uc *HandoffUsecase) EndSession(ctx context.Context, handoffID string) error {
	lock := uc.acquireSessionLock(handoffID)
	defer uc.releaseSessionLock(handoffID, lock)

	if err := uc.sessionRepo.DeleteSession(ctx, handoffID); err != nil {
		return fmt.Errorf("failed to delete handoff session: %w", err)
	}

	event := &models.HandoffEndedEvent{
		HandoffID: handoffID,
		EndedAt:   time.Now(),
	}
	if err := uc.handoffGW.PublishSessionEnded(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish session ended event",
			logger.String("handoff_id", handoffID),
			logger.Err(err))
	}

	return nil
}

// narrate asks the collaborator to phrase the result, with a bounded
// timeout and a deterministic fallback. A narrative failure never blocks
// or fails the handoff flow.
func (uc *HandoffUsecase) narrate(ctx context.Context, handoffID string, result *models.LocationTrustResult, ping models.GpsPing) string {
	fallback := fmt.Sprintf("%.1f mi away, %s", utils.MetersToMiles(ping.DistanceToPickupM), result.Direction)

	if !uc.cfg.Narrative.Enabled {
		return fallback
	}

	timeout := time.Duration(uc.cfg.Narrative.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	narrateCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	narrative, err := uc.handoffGW.Narrate(narrateCtx, handoffID, result, ping)
	if err != nil || narrative == "" {
		if err != nil {
			logger.DebugCtx(ctx, "Narrative collaborator unavailable, using fallback",
				logger.String("handoff_id", handoffID),
				logger.Err(err))
		}
		return fallback
	}
	return narrative
}

func (uc *HandoffUsecase) publishTrustEvent(ctx context.Context, handoffID string, result *models.LocationTrustResult) {
	event := &models.HandoffTrustEvent{
		HandoffID:  handoffID,
		TrustScore: result.TrustScore,
		Direction:  result.Direction,
		ETAMinutes: result.ETAMinutes,
		Timestamp:  time.Now(),
	}
	if err := uc.handoffGW.PublishTrustEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trust event",
			logger.String("handoff_id", handoffID),
			logger.Err(err))
	}
}

// acquireSessionLock takes the lock owning the given session, creating it
// on first use. The lock enforces single-writer-per-session ordering.
func (uc *HandoffUsecase) acquireSessionLock(handoffID string) *sessionLock {
	uc.mu.Lock()
	lock, ok := uc.sessionLocks[handoffID]
	if !ok {
		lock = &sessionLock{}
		uc.sessionLocks[handoffID] = lock
	}
	lock.refs++
	uc.mu.Unlock()

	lock.mu.Lock()
	return lock
}

// releaseSessionLock unlocks and drops the map entry once the last holder
// or waiter is gone. Sessions that expire via the Redis TTL leave nothing
// behind; the entry lives only while a request is in flight.
func (uc *HandoffUsecase) releaseSessionLock(handoffID string, lock *sessionLock) {
	lock.mu.Unlock()

	uc.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(uc.sessionLocks, handoffID)
	}
	uc.mu.Unlock()
}
