package interfaces

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/entities"
)

// JobRepository handles ledger job persistence
type JobRepository interface {
	// NextID reserves the next monotonic job ID
	NextID(ctx context.Context) (uint64, error)

	// Create stores a new job
	Create(ctx context.Context, job *entities.Job) error

	// FindByID finds a job by its ID
	FindByID(ctx context.Context, id uint64) (*entities.Job, error)

	// FindByIDForUpdate finds a job and locks its row until the transaction ends
	FindByIDForUpdate(ctx context.Context, id uint64) (*entities.Job, error)

	// Update persists a mutated job
	Update(ctx context.Context, job *entities.Job) error

	// FindByFilter lists jobs matching the filter, newest first
	FindByFilter(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error)

	// FindPage lists jobs with ID greater than afterID in ID order
	FindPage(ctx context.Context, afterID uint64, limit int) ([]entities.Job, error)
}

// ReferralRepository handles ledger referral persistence
type ReferralRepository interface {
	NextID(ctx context.Context) (uint64, error)
	Create(ctx context.Context, referral *entities.Referral) error
	FindByID(ctx context.Context, id uint64) (*entities.Referral, error)

	// FindByClaimHash resolves the claim index
	FindByClaimHash(ctx context.Context, hash common.Hash) (*entities.Referral, error)
	ExistsByClaimHash(ctx context.Context, hash common.Hash) (bool, error)
	ExistsForReferrer(ctx context.Context, jobID uint64, referrer common.Address) (bool, error)

	FindByJob(ctx context.Context, jobID uint64) ([]entities.Referral, error)

	// FindInFlightByJob returns referrals of a job that still hold a stake
	FindInFlightByJob(ctx context.Context, jobID uint64) ([]entities.Referral, error)

	FindByReferrer(ctx context.Context, referrer common.Address) ([]entities.Referral, error)
	FindPage(ctx context.Context, afterID uint64, limit int) ([]entities.Referral, error)
	Update(ctx context.Context, referral *entities.Referral) error
}

// EventRepository is the append-only ledger outbox
type EventRepository interface {
	// Append stores the event and assigns its sequence number
	Append(ctx context.Context, event *entities.LedgerEvent) error

	// ListPending returns events not yet projected, in sequence order
	ListPending(ctx context.Context, limit int) ([]entities.LedgerEvent, error)

	// MarkProjected records that the events were applied to the read store
	MarkProjected(ctx context.Context, sequences []uint64, at time.Time) error

	CountPending(ctx context.Context) (int64, error)

	// FindByJob returns the event history of a job
	FindByJob(ctx context.Context, jobID uint64) ([]entities.LedgerEvent, error)
}

// DisputeRepository handles dispute persistence
type DisputeRepository interface {
	Create(ctx context.Context, dispute *entities.Dispute) error
	FindByJob(ctx context.Context, jobID uint64) ([]entities.Dispute, error)
}

// UnitOfWork represents a unit of work pattern for transactions
type UnitOfWork interface {
	// Begin starts the transaction
	Begin(ctx context.Context) error

	// Jobs returns the job repository
	Jobs() JobRepository

	// Referrals returns the referral repository
	Referrals() ReferralRepository

	// Events returns the outbox repository
	Events() EventRepository

	// Disputes returns the dispute repository
	Disputes() DisputeRepository

	// Settlement returns the token ledger bound to the same transaction
	Settlement() TokenLedger

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error
}

// TransactionManager runs work inside a single all-or-nothing transaction
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(uow UnitOfWork) error) error
}
