package entities

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// JobProjection is the read-side copy of a job served to the UI.
type JobProjection struct {
	JobID           uint64         `json:"job_id" yaml:"job_id"`
	Creator         common.Address `json:"creator" yaml:"creator"`
	Title           string         `json:"title" yaml:"title"`
	Description     string         `json:"description" yaml:"description"`
	InitialBounty   Amount         `json:"initial_bounty" yaml:"initial_bounty"`
	AccumulatedSpam Amount         `json:"accumulated_spam" yaml:"accumulated_spam"`
	TotalPot        Amount         `json:"total_pot" yaml:"total_pot"`
	State           JobState       `json:"state" yaml:"state"`
	Version         uint64         `json:"version" yaml:"version"`
	CreatedAt       time.Time      `json:"created_at" yaml:"created_at"`
	ClosedAt        *time.Time     `json:"closed_at,omitempty" yaml:"closed_at,omitempty"`
	SyncedAt        time.Time      `json:"synced_at" yaml:"synced_at"`
}

// NewJobProjection builds the projection of a ledger job.
func NewJobProjection(job *Job, syncedAt time.Time) (JobProjection, error) {
	pot, err := job.TotalPot()
	if err != nil {
		return JobProjection{}, err
	}
	p := JobProjection{
		JobID:           job.ID,
		Creator:         job.Creator,
		Title:           job.Title,
		Description:     job.Description,
		InitialBounty:   job.InitialBounty,
		AccumulatedSpam: job.AccumulatedSpam,
		TotalPot:        pot,
		State:           job.State,
		Version:         job.Version,
		CreatedAt:       job.CreatedAt,
		SyncedAt:        syncedAt,
	}
	if job.ClosedAt != nil {
		closedAt := *job.ClosedAt
		p.ClosedAt = &closedAt
	}
	return p, nil
}

// Matches reports whether the projection carries the same ledger state as other,
// ignoring sync bookkeeping.
func (p JobProjection) Matches(other JobProjection) bool {
	return p.JobID == other.JobID &&
		p.Creator == other.Creator &&
		p.Title == other.Title &&
		p.Description == other.Description &&
		p.InitialBounty == other.InitialBounty &&
		p.AccumulatedSpam == other.AccumulatedSpam &&
		p.TotalPot == other.TotalPot &&
		p.State == other.State &&
		p.Version == other.Version &&
		sameTime(p.ClosedAt, other.ClosedAt)
}

// ReferralProjection is the read-side copy of a referral.
type ReferralProjection struct {
	ReferralID  uint64          `json:"referral_id" yaml:"referral_id"`
	JobID       uint64          `json:"job_id" yaml:"job_id"`
	Referrer    common.Address  `json:"referrer" yaml:"referrer"`
	Candidate   *common.Address `json:"candidate,omitempty" yaml:"candidate,omitempty"`
	Pitch       string          `json:"pitch" yaml:"pitch"`
	StakeAmount Amount          `json:"stake_amount" yaml:"stake_amount"`
	State       ReferralState   `json:"state" yaml:"state"`
	ClaimHash   common.Hash     `json:"claim_hash" yaml:"claim_hash"`
	Version     uint64          `json:"version" yaml:"version"`
	CreatedAt   time.Time       `json:"created_at" yaml:"created_at"`
	DecidedAt   *time.Time      `json:"decided_at,omitempty" yaml:"decided_at,omitempty"`
	SyncedAt    time.Time       `json:"synced_at" yaml:"synced_at"`
}

// NewReferralProjection builds the projection of a ledger referral.
func NewReferralProjection(r *Referral, syncedAt time.Time) ReferralProjection {
	clone := r.Clone()
	return ReferralProjection{
		ReferralID:  clone.ID,
		JobID:       clone.JobID,
		Referrer:    clone.Referrer,
		Candidate:   clone.Candidate,
		Pitch:       clone.Pitch,
		StakeAmount: clone.StakeAmount,
		State:       clone.State,
		ClaimHash:   clone.ClaimHash,
		Version:     clone.Version,
		CreatedAt:   clone.CreatedAt,
		DecidedAt:   clone.DecidedAt,
		SyncedAt:    syncedAt,
	}
}

// Matches reports whether the projection carries the same ledger state as other.
func (p ReferralProjection) Matches(other ReferralProjection) bool {
	sameCandidate := (p.Candidate == nil && other.Candidate == nil) ||
		(p.Candidate != nil && other.Candidate != nil && *p.Candidate == *other.Candidate)
	return p.ReferralID == other.ReferralID &&
		p.JobID == other.JobID &&
		p.Referrer == other.Referrer &&
		sameCandidate &&
		p.Pitch == other.Pitch &&
		p.StakeAmount == other.StakeAmount &&
		p.State == other.State &&
		p.ClaimHash == other.ClaimHash &&
		p.Version == other.Version
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
