package interfaces

import (
	"context"

	"talent-stake/domain/entities"
)

// ReadStore is the off-chain projection the UI reads from.
type ReadStore interface {
	GetJob(ctx context.Context, jobID uint64) (*entities.JobProjection, error)
	GetReferral(ctx context.Context, referralID uint64) (*entities.ReferralProjection, error)
	ListReferralsByJob(ctx context.Context, jobID uint64) ([]entities.ReferralProjection, error)

	// UpsertJob stores p unless the stored projection has a higher version.
	// It reports whether the store changed.
	UpsertJob(ctx context.Context, p entities.JobProjection) (bool, error)

	// UpsertReferral stores p unless the stored projection has a higher version.
	UpsertReferral(ctx context.Context, p entities.ReferralProjection) (bool, error)

	// OverwriteJob stores p regardless of the stored version.
	OverwriteJob(ctx context.Context, p entities.JobProjection) error

	// OverwriteReferral stores p regardless of the stored version.
	OverwriteReferral(ctx context.Context, p entities.ReferralProjection) error
}

// MirrorProjector applies ledger events to the read store.
type MirrorProjector interface {
	// Apply projects the snapshots carried by event and reports whether anything changed.
	Apply(ctx context.Context, event entities.LedgerEvent) (bool, error)
}

// ProjectionPublisher announces applied events to live subscribers.
type ProjectionPublisher interface {
	Publish(ctx context.Context, event entities.LedgerEvent) error
}

// CommitListener is told about events right after their transaction commits.
type CommitListener interface {
	OnCommit(events []entities.LedgerEvent)
}
