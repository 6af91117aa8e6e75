package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/services/handoff/mocks"
)

func TestScorePing_ConcurrentPingsSerialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	var inFlight int32
	var overlapped int32
	repo.EXPECT().
		GetSession(gomock.Any(), "handoff-1").
		DoAndReturn(func(_ context.Context, _ string) (*models.HandoffSession, error) {
			if atomic.AddInt32(&inFlight, 1) > 1 {
				atomic.StoreInt32(&overlapped, 1)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return nil, nil
		}).
		AnyTimes()
	repo.EXPECT().SaveSession(gomock.Any(), "handoff-1", gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().PublishTrustEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	uc := NewHandoffUsecase(&models.Config{Handoff: scorerCfg}, repo, gw)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			p := ping(30.26, -97.74, t0.Add(time.Duration(n)*time.Second), 500)
			_, err := uc.ScorePing(context.Background(), "handoff-1", p)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&overlapped), "pings of one session must not score concurrently")
}

func TestSessionLocks_PrunedWhenIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	repo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().PublishTrustEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	uc := NewHandoffUsecase(&models.Config{Handoff: scorerCfg}, repo, gw)

	// sessions that only ever ping and then expire via TTL must not
	// leave lock entries behind
	for _, id := range []string{"handoff-1", "handoff-2", "handoff-3"} {
		_, err := uc.ScorePing(context.Background(), id, ping(30.26, -97.74, t0, 500))
		assert.NoError(t, err)
	}

	uc.mu.Lock()
	remaining := len(uc.sessionLocks)
	uc.mu.Unlock()
	assert.Zero(t, remaining)
}

func TestSessionLocks_PrunedAfterEndSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockHandoffGW(ctrl)

	repo.EXPECT().DeleteSession(gomock.Any(), "handoff-1").Return(nil)
	gw.EXPECT().PublishSessionEnded(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewHandoffUsecase(&models.Config{Handoff: scorerCfg}, repo, gw)

	assert.NoError(t, uc.EndSession(context.Background(), "handoff-1"))

	uc.mu.Lock()
	remaining := len(uc.sessionLocks)
	uc.mu.Unlock()
	assert.Zero(t, remaining)
}
