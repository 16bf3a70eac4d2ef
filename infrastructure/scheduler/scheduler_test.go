package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
	"talent-stake/domain/interfaces"
	"talent-stake/infrastructure/logger"
	"talent-stake/test/helpers"
	"talent-stake/test/mocks"
)

func TestMirrorScheduler_StartRunsSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncUC := mocks.NewMockSyncMirrorUseCase(ctrl)

	var runs int32
	syncUC.EXPECT().
		Execute(gomock.Any(), interfaces.SyncMirrorParams{BatchSize: 50}).
		DoAndReturn(func(context.Context, interfaces.SyncMirrorParams) (*interfaces.SyncMirrorResult, error) {
			atomic.AddInt32(&runs, 1)
			return &interfaces.SyncMirrorResult{Processed: 1}, nil
		}).
		AnyTimes()

	s := NewMirrorScheduler(syncUC, nil, Options{
		SyncSchedule: "@every 1h",
		BatchSize:    50,
	}, logger.NewNopLogger())

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	helpers.AssertEventually(t, func() bool {
		return atomic.LoadInt32(&runs) >= 1
	}, 2*time.Second, "initial sync did not run")

	before := atomic.LoadInt32(&runs)
	s.OnCommit([]entities.LedgerEvent{{Sequence: 1}})
	helpers.AssertEventually(t, func() bool {
		return atomic.LoadInt32(&runs) > before
	}, 2*time.Second, "commit did not trigger a sync")
}

func TestMirrorScheduler_TriggerCoalesces(t *testing.T) {
	s := NewMirrorScheduler(nil, nil, Options{}, logger.NewNopLogger())

	s.Trigger()
	s.Trigger()
	s.OnCommit([]entities.LedgerEvent{{Sequence: 1}})
	assert.Len(t, s.trigger, 1)
}

func TestMirrorScheduler_EmptyCommitDoesNotTrigger(t *testing.T) {
	s := NewMirrorScheduler(nil, nil, Options{}, logger.NewNopLogger())

	s.OnCommit(nil)
	assert.Len(t, s.trigger, 0)
}

func TestMirrorScheduler_Defaults(t *testing.T) {
	s := NewMirrorScheduler(nil, nil, Options{}, logger.NewNopLogger())

	assert.Equal(t, DefaultSyncSchedule, s.opts.SyncSchedule)
	assert.Equal(t, DefaultReconcileSchedule, s.opts.ReconcileSchedule)
}

func TestMirrorScheduler_InvalidSchedule(t *testing.T) {
	s := NewMirrorScheduler(nil, nil, Options{SyncSchedule: "every now and then"}, logger.NewNopLogger())

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cron.AddFunc sync")
}

func TestMirrorScheduler_StartTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncUC := mocks.NewMockSyncMirrorUseCase(ctrl)
	syncUC.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(&interfaces.SyncMirrorResult{}, nil).
		AnyTimes()

	s := NewMirrorScheduler(syncUC, nil, Options{SyncSchedule: "@every 1h"}, logger.NewNopLogger())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Error(t, s.Start(context.Background()))
}

func TestMirrorScheduler_RunReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mocks.NewMockReconcileMirrorUseCase(ctrl)
	reconcile.EXPECT().
		Execute(gomock.Any(), interfaces.ReconcileMirrorParams{}).
		Return(nil, errors.New("database is locked"))

	s := NewMirrorScheduler(nil, reconcile, Options{}, logger.NewNopLogger())
	s.RunReconcile(context.Background())
}

func TestMirrorScheduler_RunSyncError(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncUC := mocks.NewMockSyncMirrorUseCase(ctrl)
	syncUC.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("projection failed"))

	s := NewMirrorScheduler(syncUC, nil, Options{}, logger.NewNopLogger())
	s.RunSync(context.Background())
}

func TestMirrorScheduler_ReconcileNeverOverlapsSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncUC := mocks.NewMockSyncMirrorUseCase(ctrl)
	reconcileUC := mocks.NewMockReconcileMirrorUseCase(ctrl)

	var active, overlaps int32
	enter := func() {
		if atomic.AddInt32(&active, 1) > 1 {
			atomic.AddInt32(&overlaps, 1)
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&active, -1)
	}
	syncUC.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, interfaces.SyncMirrorParams) (*interfaces.SyncMirrorResult, error) {
			enter()
			return &interfaces.SyncMirrorResult{}, nil
		}).
		Times(10)
	reconcileUC.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, interfaces.ReconcileMirrorParams) (*interfaces.ReconcileMirrorResult, error) {
			enter()
			return &interfaces.ReconcileMirrorResult{}, nil
		}).
		Times(10)

	s := NewMirrorScheduler(syncUC, reconcileUC, Options{}, logger.NewNopLogger())
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			s.RunReconcile(ctx)
		}
	}()
	for i := 0; i < 10; i++ {
		s.RunSync(ctx)
	}
	<-done

	assert.Equal(t, int32(0), atomic.LoadInt32(&overlaps))
}
