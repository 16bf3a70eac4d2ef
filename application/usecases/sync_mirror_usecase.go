// Package usecases contains application use cases that orchestrate business logic.
// It keeps the off-chain mirror in step with the escrow ledger.
package usecases

import (
	"context"
	"fmt"
	"time"

	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

const (
	defaultSyncBatchSize = 100
	maxSyncBatchSize     = 1000
)

// syncMirrorUseCase implements the SyncMirrorUseCase interface.
type syncMirrorUseCase struct {
	events    interfaces.EventRepository
	projector interfaces.MirrorProjector
	publisher interfaces.ProjectionPublisher
	metrics   interfaces.LedgerMetrics
	logger    interfaces.Logger
	nowFn     func() time.Time
}

// NewSyncMirrorUseCase creates a new mirror sync use case. publisher and metrics may be nil.
func NewSyncMirrorUseCase(
	events interfaces.EventRepository,
	projector interfaces.MirrorProjector,
	publisher interfaces.ProjectionPublisher,
	metrics interfaces.LedgerMetrics,
	logger interfaces.Logger,
) interfaces.SyncMirrorUseCase {
	return &syncMirrorUseCase{
		events:    events,
		projector: projector,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		nowFn:     time.Now,
	}
}

// Execute drains pending outbox events into the read store in sequence order.
// A projection failure stops the run and leaves the failing event pending.
func (uc *syncMirrorUseCase) Execute(
	ctx context.Context,
	params interfaces.SyncMirrorParams,
) (*interfaces.SyncMirrorResult, error) {
	if err := uc.validateParams(params); err != nil {
		return nil, err
	}

	batchSize := params.BatchSize
	if batchSize == 0 {
		batchSize = defaultSyncBatchSize
	}

	result := &interfaces.SyncMirrorResult{}
	for batch := 0; params.MaxBatches == 0 || batch < params.MaxBatches; batch++ {
		events, err := uc.events.ListPending(ctx, batchSize)
		if err != nil {
			return result, err
		}
		if len(events) == 0 {
			break
		}

		done, err := uc.applyBatch(ctx, events, result)
		if err != nil {
			return result, err
		}
		if done < batchSize {
			break
		}
	}

	pending, err := uc.events.CountPending(ctx)
	if err != nil {
		return result, err
	}
	result.Pending = pending
	if uc.metrics != nil {
		uc.metrics.SetMirrorPending(pending)
	}

	if result.Processed > 0 {
		uc.logger.Info("Mirror synced",
			"processed", result.Processed,
			"applied", result.Applied,
			"pending", result.Pending)
	}
	return result, nil
}

// applyBatch projects events one by one and marks the successful prefix projected.
func (uc *syncMirrorUseCase) applyBatch(
	ctx context.Context,
	events []entities.LedgerEvent,
	result *interfaces.SyncMirrorResult,
) (int, error) {
	var (
		projected []uint64
		applied   []entities.LedgerEvent
		applyErr  error
	)
	for _, event := range events {
		changed, err := uc.projector.Apply(ctx, event)
		if err != nil {
			uc.logger.Error("Failed to project ledger event",
				"sequence", event.Sequence,
				"type", string(event.Type),
				"error", err)
			applyErr = fmt.Errorf("project event %d: %w", event.Sequence, err)
			break
		}
		projected = append(projected, event.Sequence)
		if changed {
			applied = append(applied, event)
		}
	}

	if len(projected) > 0 {
		if err := uc.events.MarkProjected(ctx, projected, uc.nowFn()); err != nil {
			return 0, err
		}
	}
	result.Processed += len(projected)
	result.Applied += len(applied)
	if uc.metrics != nil && len(applied) > 0 {
		uc.metrics.AddMirrorApplied(len(applied))
	}

	uc.publish(ctx, applied)
	return len(projected), applyErr
}

// publish announces applied events. Failures are logged and never fail the sync.
func (uc *syncMirrorUseCase) publish(ctx context.Context, events []entities.LedgerEvent) {
	if uc.publisher == nil {
		return
	}
	for _, event := range events {
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.logger.Warn("Failed to publish projection change",
				"sequence", event.Sequence,
				"error", err)
		}
	}
}

// validateParams validates the sync parameters.
func (uc *syncMirrorUseCase) validateParams(params interfaces.SyncMirrorParams) error {
	validationErr := &errors.ValidationError{}

	if params.BatchSize < 0 || params.BatchSize > maxSyncBatchSize {
		validationErr.AddFieldError("batch_size", fmt.Sprintf("must be between 0 and %d", maxSyncBatchSize))
	}
	if params.MaxBatches < 0 {
		validationErr.AddFieldError("max_batches", "must not be negative")
	}

	if validationErr.HasErrors() {
		return validationErr
	}
	return nil
}
