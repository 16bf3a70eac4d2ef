// Package scheduler drives mirror sync and reconcile runs with robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"talent-stake/domain/entities"
	"talent-stake/domain/interfaces"
)

// Default cron specs.
const (
	DefaultSyncSchedule      = "@every 5s"
	DefaultReconcileSchedule = "@every 1h"
)

// Options configures a MirrorScheduler.
type Options struct {
	SyncSchedule      string
	ReconcileSchedule string
	BatchSize         int
}

// MirrorScheduler runs mirror sync on a schedule and promptly after ledger commits,
// and periodically reconciles the read store against the ledger.
type MirrorScheduler struct {
	cron      *cron.Cron
	sync      interfaces.SyncMirrorUseCase
	reconcile interfaces.ReconcileMirrorUseCase
	opts      Options
	logger    interfaces.Logger

	trigger chan struct{}
	// syncMu serializes sync and reconcile runs against the read store.
	syncMu sync.Mutex

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewMirrorScheduler creates a scheduler. reconcile may be nil to disable reconciliation.
func NewMirrorScheduler(
	syncUseCase interfaces.SyncMirrorUseCase,
	reconcile interfaces.ReconcileMirrorUseCase,
	opts Options,
	logger interfaces.Logger,
) *MirrorScheduler {
	if opts.SyncSchedule == "" {
		opts.SyncSchedule = DefaultSyncSchedule
	}
	if opts.ReconcileSchedule == "" {
		opts.ReconcileSchedule = DefaultReconcileSchedule
	}
	return &MirrorScheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger{logger: logger}),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger})),
		),
		sync:      syncUseCase,
		reconcile: reconcile,
		opts:      opts,
		logger:    logger,
		trigger:   make(chan struct{}, 1),
	}
}

// Start registers the jobs and starts the scheduler. One sync runs immediately
// so the read store catches up without waiting for the first tick.
func (s *MirrorScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if _, err := s.cron.AddFunc(s.opts.SyncSchedule, func() { s.RunSync(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc sync %q: %w", s.opts.SyncSchedule, err)
	}
	if s.reconcile != nil {
		if _, err := s.cron.AddFunc(s.opts.ReconcileSchedule, func() { s.RunReconcile(ctx) }); err != nil {
			return fmt.Errorf("cron.AddFunc reconcile %q: %w", s.opts.ReconcileSchedule, err)
		}
	}

	s.stop = make(chan struct{})
	s.running = true
	s.cron.Start()

	s.wg.Add(1)
	go s.triggerLoop(ctx)
	s.Trigger()

	s.logger.Info("Mirror scheduler started",
		"sync_schedule", s.opts.SyncSchedule,
		"reconcile_schedule", s.opts.ReconcileSchedule)
	return nil
}

// Stop waits for running jobs and shuts the scheduler down.
func (s *MirrorScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.logger.Info("Mirror scheduler stopped")
}

// Trigger requests a sync run. Requests made while one is queued are coalesced.
func (s *MirrorScheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// OnCommit implements interfaces.CommitListener.
func (s *MirrorScheduler) OnCommit(events []entities.LedgerEvent) {
	if len(events) > 0 {
		s.Trigger()
	}
}

// RunSync drains pending ledger events into the read store.
func (s *MirrorScheduler) RunSync(ctx context.Context) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	result, err := s.sync.Execute(ctx, interfaces.SyncMirrorParams{BatchSize: s.opts.BatchSize})
	if err != nil {
		s.logger.Error("Mirror sync failed", "error", err)
		return
	}
	if result.Processed > 0 {
		s.logger.Debug("Mirror sync run", "processed", result.Processed, "pending", result.Pending)
	}
}

// RunReconcile repairs projections that drifted from the ledger. It never
// overlaps a sync run.
func (s *MirrorScheduler) RunReconcile(ctx context.Context) {
	if s.reconcile == nil {
		return
	}
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	if _, err := s.reconcile.Execute(ctx, interfaces.ReconcileMirrorParams{}); err != nil {
		s.logger.Error("Mirror reconcile failed", "error", err)
	}
}

func (s *MirrorScheduler) triggerLoop(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-s.trigger:
			s.RunSync(ctx)
		}
	}
}

// cronLogger adapts interfaces.Logger to cron.Logger.
type cronLogger struct {
	logger interfaces.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.WithError(err).Error("cron: "+msg, keysAndValues...)
}
