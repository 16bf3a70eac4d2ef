package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// eventRepository implements the EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new outbox repository.
func NewEventRepository(db *gorm.DB) interfaces.EventRepository {
	return &eventRepository{db: db}
}

// Append stores the event and assigns its sequence number and event ID.
func (r *eventRepository) Append(ctx context.Context, event *entities.LedgerEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return r.wrap("Append", fmt.Errorf("encode payload: %w", err))
	}

	row := &eventRow{
		EventID:    event.EventID,
		Type:       string(event.Type),
		JobID:      event.JobID,
		ReferralID: event.ReferralID,
		Actor:      event.Actor.Hex(),
		Payload:    string(payload),
		OccurredAt: event.OccurredAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return r.wrap("Append", err)
	}
	event.Sequence = row.Sequence
	return nil
}

// ListPending returns events not yet projected, oldest first.
func (r *eventRepository) ListPending(ctx context.Context, limit int) ([]entities.LedgerEvent, error) {
	var rows []eventRow
	err := r.db.WithContext(ctx).
		Where("projected_at IS NULL").
		Order("sequence ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.wrap("ListPending", err)
	}
	return r.toEntities(rows)
}

// MarkProjected stamps the given events as applied.
func (r *eventRepository) MarkProjected(ctx context.Context, sequences []uint64, at time.Time) error {
	if len(sequences) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&eventRow{}).
		Where("sequence IN ?", sequences).
		Update("projected_at", at).Error
	if err != nil {
		return r.wrap("MarkProjected", err)
	}
	return nil
}

// CountPending returns the number of events waiting for projection.
func (r *eventRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&eventRow{}).
		Where("projected_at IS NULL").
		Count(&count).Error
	if err != nil {
		return 0, r.wrap("CountPending", err)
	}
	return count, nil
}

// FindByJob returns the full event history of a job.
func (r *eventRepository) FindByJob(ctx context.Context, jobID uint64) ([]entities.LedgerEvent, error) {
	var rows []eventRow
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("sequence ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.wrap("FindByJob", err)
	}
	return r.toEntities(rows)
}

func (r *eventRepository) toEntities(rows []eventRow) ([]entities.LedgerEvent, error) {
	events := make([]entities.LedgerEvent, 0, len(rows))
	for _, row := range rows {
		var payload entities.EventPayload
		if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
			return nil, r.wrap("Decode", fmt.Errorf("event %d: %w", row.Sequence, err))
		}
		events = append(events, entities.LedgerEvent{
			Sequence:    row.Sequence,
			EventID:     row.EventID,
			Type:        entities.EventType(row.Type),
			JobID:       row.JobID,
			ReferralID:  row.ReferralID,
			Actor:       common.HexToAddress(row.Actor),
			Payload:     payload,
			OccurredAt:  row.OccurredAt,
			ProjectedAt: row.ProjectedAt,
		})
	}
	return events, nil
}

func (r *eventRepository) wrap(operation string, err error) error {
	return &errors.RepositoryError{
		Operation: operation,
		Entity:    "LedgerEvent",
		Err:       err,
	}
}
