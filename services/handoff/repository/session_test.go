package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbshare/trustengine/internal/pkg/constants"
	"github.com/kerbshare/trustengine/internal/pkg/database"
	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/services/handoff/repository"
)

func setupRepo(t *testing.T) (*repository.SessionRepository, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisClient := &database.RedisClient{Client: client}

	cfg := &models.Config{
		Handoff: models.HandoffConfig{SessionTTLMinutes: 30},
	}
	return repository.NewSessionRepository(cfg, redisClient), mr
}

func TestSessionRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	session := &models.HandoffSession{
		LastPing: models.GpsPing{
			Latitude:          30.267153,
			Longitude:         -97.743057,
			Timestamp:         time.Date(2026, 8, 30, 15, 4, 5, 123456789, time.UTC),
			DistanceToPickupM: 842.5,
		},
		IdenticalStreak: 2,
		Geohash:         "9v6kpv3u2",
		UpdatedAt:       time.Date(2026, 8, 30, 15, 4, 6, 0, time.UTC),
	}

	require.NoError(t, repo.SaveSession(ctx, "handoff-1", session))

	loaded, err := repo.GetSession(ctx, "handoff-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	// coordinates must survive bit-identical so the streak check works
	assert.Equal(t, session.LastPing.Latitude, loaded.LastPing.Latitude)
	assert.Equal(t, session.LastPing.Longitude, loaded.LastPing.Longitude)
	assert.True(t, session.LastPing.Timestamp.Equal(loaded.LastPing.Timestamp))
	assert.Equal(t, session.LastPing.DistanceToPickupM, loaded.LastPing.DistanceToPickupM)
	assert.Equal(t, 2, loaded.IdenticalStreak)
	assert.Equal(t, "9v6kpv3u2", loaded.Geohash)
}

func TestGetSession_MissingReturnsNil(t *testing.T) {
	repo, _ := setupRepo(t)

	session, err := repo.GetSession(context.Background(), "never-seen")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSaveSession_SetsTTL(t *testing.T) {
	repo, mr := setupRepo(t)

	session := &models.HandoffSession{
		LastPing:  models.GpsPing{Latitude: 1, Longitude: 2, Timestamp: time.Now()},
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.SaveSession(context.Background(), "handoff-ttl", session))

	key := fmt.Sprintf(constants.KeyHandoffSession, "handoff-ttl")
	assert.Equal(t, 30*time.Minute, mr.TTL(key))
}

func TestDeleteSession(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	session := &models.HandoffSession{
		LastPing:  models.GpsPing{Latitude: 1, Longitude: 2, Timestamp: time.Now()},
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.SaveSession(ctx, "handoff-2", session))
	require.NoError(t, repo.DeleteSession(ctx, "handoff-2"))

	loaded, err := repo.GetSession(ctx, "handoff-2")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDeleteSession_MissingIsNoError(t *testing.T) {
	repo, _ := setupRepo(t)
	assert.NoError(t, repo.DeleteSession(context.Background(), "never-seen"))
}
