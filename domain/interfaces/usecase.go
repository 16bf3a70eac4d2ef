package interfaces

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
)

// EscrowEngine mutates the ledger. Every call runs in one transaction under the
// job's lock and either fully applies or leaves no trace.
type EscrowEngine interface {
	// CreateJob pulls the bounty into escrow and opens a job.
	CreateJob(ctx context.Context, params CreateJobParams) (*entities.Job, error)

	// StakeReferral pulls the referral stake into escrow and issues a claim hash.
	StakeReferral(ctx context.Context, params StakeReferralParams) (*entities.Referral, error)

	// ClaimReferral binds a candidate to a pending referral and consumes its claim hash.
	ClaimReferral(ctx context.Context, params ClaimReferralParams) (*entities.Referral, error)

	// AdjudicateReferral applies the job owner's decision to a submitted referral.
	AdjudicateReferral(ctx context.Context, params AdjudicateReferralParams) (*AdjudicationResult, error)

	// WithdrawJob returns the pot to the creator and closes the job.
	WithdrawJob(ctx context.Context, params WithdrawJobParams) (*WithdrawalResult, error)
}

// CreateJobParams represents parameters for creating a job.
type CreateJobParams struct {
	Creator     common.Address
	Title       string
	Description string
	Bounty      entities.Amount
}

// StakeReferralParams represents parameters for staking a referral.
type StakeReferralParams struct {
	JobID    uint64
	Referrer common.Address
	Pitch    string
}

// ClaimReferralParams represents parameters for claiming a referral.
type ClaimReferralParams struct {
	ClaimHash common.Hash
	Candidate common.Address
}

// AdjudicateReferralParams represents parameters for adjudicating a referral.
type AdjudicateReferralParams struct {
	ReferralID uint64
	Decision   entities.Decision
	Caller     common.Address
}

// AdjudicationResult is the outcome of an adjudication.
type AdjudicationResult struct {
	Job      *entities.Job      `json:"job" yaml:"job"`
	Referral *entities.Referral `json:"referral" yaml:"referral"`
	Payout   *entities.Payout   `json:"payout,omitempty" yaml:"payout,omitempty"`
	// Settled lists the other referrals rejected because the job was filled.
	Settled []entities.Referral `json:"settled,omitempty" yaml:"settled,omitempty"`
}

// WithdrawJobParams represents parameters for withdrawing a job.
type WithdrawJobParams struct {
	JobID  uint64
	Caller common.Address
}

// WithdrawalResult is the outcome of a withdrawal.
type WithdrawalResult struct {
	Job      *entities.Job       `json:"job" yaml:"job"`
	Returned entities.Amount     `json:"returned" yaml:"returned"`
	Settled  []entities.Referral `json:"settled,omitempty" yaml:"settled,omitempty"`
}

// LedgerQueries serves consistent reads of the authoritative ledger.
type LedgerQueries interface {
	GetJob(ctx context.Context, jobID uint64) (*entities.Job, error)

	// GetJobView returns a job with its referrals as one consistent snapshot.
	GetJobView(ctx context.Context, jobID uint64) (*dto.JobView, error)

	GetReferral(ctx context.Context, referralID uint64) (*entities.Referral, error)
	TotalPot(ctx context.Context, jobID uint64) (entities.Amount, error)
	IsReferralClaimable(ctx context.Context, claimHash common.Hash) (bool, error)
	ListJobs(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error)
	ListReferralsByReferrer(ctx context.Context, referrer common.Address) ([]entities.Referral, error)
	JobHistory(ctx context.Context, jobID uint64) ([]entities.LedgerEvent, error)

	// EscrowBalance returns the funds currently held by the escrow holder.
	EscrowBalance(ctx context.Context) (entities.Amount, error)
}

// DisputeService records disputes raised by job participants.
type DisputeService interface {
	RecordDispute(ctx context.Context, params RecordDisputeParams) (*entities.Dispute, error)
	ListDisputes(ctx context.Context, jobID uint64) ([]entities.Dispute, error)
}

// RecordDisputeParams represents parameters for recording a dispute.
type RecordDisputeParams struct {
	JobID    uint64
	Reporter common.Address
	Target   common.Address
	Reason   string
	Evidence string
}

// FundingService manages settlement balances of participants.
type FundingService interface {
	// Fund credits amount to owner.
	Fund(ctx context.Context, owner common.Address, amount entities.Amount) error

	// ApproveEscrow lets the escrow holder pull up to amount from owner.
	ApproveEscrow(ctx context.Context, owner common.Address, amount entities.Amount) error

	Balance(ctx context.Context, owner common.Address) (*dto.AccountBalance, error)
}

// SyncMirrorUseCase drains the outbox into the read store.
type SyncMirrorUseCase interface {
	// Execute projects pending ledger events.
	Execute(ctx context.Context, params SyncMirrorParams) (*SyncMirrorResult, error)
}

// SyncMirrorParams represents parameters for a mirror sync run.
type SyncMirrorParams struct {
	BatchSize  int
	MaxBatches int
}

// SyncMirrorResult represents the result of a mirror sync run.
type SyncMirrorResult struct {
	Processed int   `json:"processed" yaml:"processed"`
	Applied   int   `json:"applied" yaml:"applied"`
	Pending   int64 `json:"pending" yaml:"pending"`
}

// ReconcileMirrorUseCase repairs the read store from ledger truth.
type ReconcileMirrorUseCase interface {
	// Execute compares every ledger entity with its projection and overwrites mismatches.
	Execute(ctx context.Context, params ReconcileMirrorParams) (*ReconcileMirrorResult, error)
}

// ReconcileMirrorParams represents parameters for a reconcile run.
type ReconcileMirrorParams struct {
	PageSize int
}

// ReconcileMirrorResult represents the result of a reconcile run.
type ReconcileMirrorResult struct {
	JobsChecked       int `json:"jobs_checked" yaml:"jobs_checked"`
	JobsRepaired      int `json:"jobs_repaired" yaml:"jobs_repaired"`
	ReferralsChecked  int `json:"referrals_checked" yaml:"referrals_checked"`
	ReferralsRepaired int `json:"referrals_repaired" yaml:"referrals_repaired"`
}

// OutputFormat represents the output format.
type OutputFormat string

// OutputFormat constants.
const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)
