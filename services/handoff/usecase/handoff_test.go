package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/services/handoff/mocks"
	"github.com/kerbshare/trustengine/services/handoff/usecase"
)

func handoffConfig() *models.Config {
	return &models.Config{
		Handoff: models.HandoffConfig{
			ImpossibleSpeedMPH:   200,
			NullIslandDegrees:    1.0,
			StationaryBandM:      50,
			MinETASpeedMPH:       1.0,
			SessionTTLMinutes:    30,
			IdenticalStreakLimit: 5,
		},
	}
}

func TestScorePing_FirstPing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	repo.EXPECT().GetSession(gomock.Any(), "handoff-1").Return(nil, nil)

	var saved *models.HandoffSession
	repo.EXPECT().
		SaveSession(gomock.Any(), "handoff-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, s *models.HandoffSession) error {
			saved = s
			return nil
		})
	gw.EXPECT().PublishTrustEvent(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewHandoffUsecase(handoffConfig(), repo, gw)

	pingAt := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	ping := models.GpsPing{Latitude: 30.26, Longitude: -97.74, Timestamp: pingAt, DistanceToPickupM: 804.672}

	result, err := uc.ScorePing(context.Background(), "handoff-1", ping)
	require.NoError(t, err)

	assert.Equal(t, 85, result.TrustScore)
	assert.Equal(t, models.DirectionStationary, result.Direction)
	assert.Nil(t, result.ETAMinutes)
	assert.Equal(t, "0.5 mi away, stationary", result.Narrative)

	require.NotNil(t, saved)
	assert.Equal(t, ping.Latitude, saved.LastPing.Latitude)
	assert.Equal(t, 0, saved.IdenticalStreak)
	assert.NotEmpty(t, saved.Geohash)
}

func TestScorePing_SessionLoadErrorScoresBaseline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	repo.EXPECT().GetSession(gomock.Any(), "handoff-1").Return(nil, assert.AnError)
	repo.EXPECT().SaveSession(gomock.Any(), "handoff-1", gomock.Any()).Return(nil)
	gw.EXPECT().PublishTrustEvent(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewHandoffUsecase(handoffConfig(), repo, gw)

	ping := models.GpsPing{Latitude: 30.26, Longitude: -97.74, Timestamp: time.Now(), DistanceToPickupM: 500}
	result, err := uc.ScorePing(context.Background(), "handoff-1", ping)

	require.NoError(t, err)
	assert.Equal(t, 85, result.TrustScore)
}

func TestScorePing_IdenticalStreakAccumulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	pingAt := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	previous := models.GpsPing{Latitude: 30.26, Longitude: -97.74, Timestamp: pingAt, DistanceToPickupM: 500}

	repo.EXPECT().
		GetSession(gomock.Any(), "handoff-1").
		Return(&models.HandoffSession{LastPing: previous, IdenticalStreak: 1}, nil)

	var saved *models.HandoffSession
	repo.EXPECT().
		SaveSession(gomock.Any(), "handoff-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, s *models.HandoffSession) error {
			saved = s
			return nil
		})
	gw.EXPECT().PublishTrustEvent(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewHandoffUsecase(handoffConfig(), repo, gw)

	current := models.GpsPing{Latitude: 30.26, Longitude: -97.74, Timestamp: pingAt.Add(15 * time.Second), DistanceToPickupM: 500}
	result, err := uc.ScorePing(context.Background(), "handoff-1", current)

	require.NoError(t, err)
	assert.Equal(t, 95, result.TrustScore)
	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.IdenticalStreak)
}

func TestScorePing_MovementResetsStreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	pingAt := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	previous := models.GpsPing{Latitude: 30.26, Longitude: -97.74, Timestamp: pingAt, DistanceToPickupM: 500}

	repo.EXPECT().
		GetSession(gomock.Any(), "handoff-1").
		Return(&models.HandoffSession{LastPing: previous, IdenticalStreak: 3}, nil)

	var saved *models.HandoffSession
	repo.EXPECT().
		SaveSession(gomock.Any(), "handoff-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, s *models.HandoffSession) error {
			saved = s
			return nil
		})
	gw.EXPECT().PublishTrustEvent(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewHandoffUsecase(handoffConfig(), repo, gw)

	current := models.GpsPing{Latitude: 30.2601, Longitude: -97.74, Timestamp: pingAt.Add(15 * time.Second), DistanceToPickupM: 490}
	_, err := uc.ScorePing(context.Background(), "handoff-1", current)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 0, saved.IdenticalStreak)
}

func TestScorePing_NarrativeCollaboratorUsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	cfg := handoffConfig()
	cfg.Narrative = models.NarrativeConfig{Enabled: true, TimeoutMs: 2000}

	repo.EXPECT().GetSession(gomock.Any(), "handoff-1").Return(nil, nil)
	repo.EXPECT().SaveSession(gomock.Any(), "handoff-1", gomock.Any()).Return(nil)
	gw.EXPECT().
		Narrate(gomock.Any(), "handoff-1", gomock.Any(), gomock.Any()).
		Return("Guest is waiting near the car.", nil)
	gw.EXPECT().PublishTrustEvent(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewHandoffUsecase(cfg, repo, gw)

	ping := models.GpsPing{Latitude: 30.26, Longitude: -97.74, Timestamp: time.Now(), DistanceToPickupM: 100}
	result, err := uc.ScorePing(context.Background(), "handoff-1", ping)

	require.NoError(t, err)
	assert.Equal(t, "Guest is waiting near the car.", result.Narrative)
}

func TestScorePing_NarrativeFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	cfg := handoffConfig()
	cfg.Narrative = models.NarrativeConfig{Enabled: true, TimeoutMs: 100}

	repo.EXPECT().GetSession(gomock.Any(), "handoff-1").Return(nil, nil)
	repo.EXPECT().SaveSession(gomock.Any(), "handoff-1", gomock.Any()).Return(nil)
	gw.EXPECT().
		Narrate(gomock.Any(), "handoff-1", gomock.Any(), gomock.Any()).
		Return("", assert.AnError)
	gw.EXPECT().PublishTrustEvent(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewHandoffUsecase(cfg, repo, gw)

	ping := models.GpsPing{Latitude: 30.26, Longitude: -97.74, Timestamp: time.Now(), DistanceToPickupM: 1609.344}
	result, err := uc.ScorePing(context.Background(), "handoff-1", ping)

	require.NoError(t, err)
	assert.Equal(t, "1.0 mi away, stationary", result.Narrative)
}

func TestScorePing_SaveFailureStillReturnsScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	repo.EXPECT().GetSession(gomock.Any(), "handoff-1").Return(nil, nil)
	repo.EXPECT().SaveSession(gomock.Any(), "handoff-1", gomock.Any()).Return(assert.AnError)
	gw.EXPECT().PublishTrustEvent(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewHandoffUsecase(handoffConfig(), repo, gw)

	ping := models.GpsPing{Latitude: 30.26, Longitude: -97.74, Timestamp: time.Now(), DistanceToPickupM: 500}
	result, err := uc.ScorePing(context.Background(), "handoff-1", ping)

	require.NoError(t, err)
	assert.Equal(t, 85, result.TrustScore)
}

func TestEndSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	repo.EXPECT().DeleteSession(gomock.Any(), "handoff-1").Return(nil)
	gw.EXPECT().PublishSessionEnded(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewHandoffUsecase(handoffConfig(), repo, gw)
	assert.NoError(t, uc.EndSession(context.Background(), "handoff-1"))
}

func TestEndSession_DeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	repo.EXPECT().DeleteSession(gomock.Any(), "handoff-1").Return(assert.AnError)

	uc := usecase.NewHandoffUsecase(handoffConfig(), repo, gw)
	assert.Error(t, uc.EndSession(context.Background(), "handoff-1"))
}
