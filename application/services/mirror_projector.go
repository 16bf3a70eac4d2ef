package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"talent-stake/domain/entities"
	"talent-stake/domain/interfaces"
)

// mirrorProjector implements the MirrorProjector interface.
type mirrorProjector struct {
	store interfaces.ReadStore
	nowFn func() time.Time
}

// NewMirrorProjector creates a projector writing into store.
func NewMirrorProjector(store interfaces.ReadStore) interfaces.MirrorProjector {
	return &mirrorProjector{store: store, nowFn: time.Now}
}

// Apply upserts the job and referral snapshots carried by event. Snapshots older
// than the stored projection are ignored, so replaying an event is a no-op.
func (p *mirrorProjector) Apply(ctx context.Context, event entities.LedgerEvent) (bool, error) {
	syncedAt := p.nowFn()
	changed := false

	if event.Payload.Referral != nil {
		projection := entities.NewReferralProjection(event.Payload.Referral, syncedAt)
		ok, err := p.store.UpsertReferral(ctx, projection)
		if err != nil {
			return false, errors.Wrapf(err, "project referral %d from event %d", projection.ReferralID, event.Sequence)
		}
		changed = changed || ok
	}

	if event.Payload.Job != nil {
		projection, err := entities.NewJobProjection(event.Payload.Job, syncedAt)
		if err != nil {
			return false, errors.Wrapf(err, "build job projection from event %d", event.Sequence)
		}
		ok, err := p.store.UpsertJob(ctx, projection)
		if err != nil {
			return false, errors.Wrapf(err, "project job %d from event %d", projection.JobID, event.Sequence)
		}
		changed = changed || ok
	}

	return changed, nil
}
