package entities

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EventType identifies a ledger event.
type EventType string

// Ledger event types.
const (
	EventJobCreated          EventType = "job.created"
	EventReferralStaked      EventType = "referral.staked"
	EventReferralClaimed     EventType = "referral.claimed"
	EventReferralAdjudicated EventType = "referral.adjudicated"
	EventFundsDistributed    EventType = "funds.distributed"
	EventJobWithdrawn        EventType = "job.withdrawn"
)

// SettlementReason explains why a referral reached a terminal state.
type SettlementReason string

// Settlement reasons carried by adjudication events.
const (
	ReasonDecision   SettlementReason = "decision"
	ReasonJobFilled  SettlementReason = "job_filled"
	ReasonWithdrawal SettlementReason = "job_withdrawn"
)

// Payout describes the split of a job pot on hire.
type Payout struct {
	Referrer        common.Address `json:"referrer" yaml:"referrer"`
	Candidate       common.Address `json:"candidate" yaml:"candidate"`
	TotalPot        Amount         `json:"total_pot" yaml:"total_pot"`
	ReferrerAmount  Amount         `json:"referrer_amount" yaml:"referrer_amount"`
	CandidateAmount Amount         `json:"candidate_amount" yaml:"candidate_amount"`
}

// EventPayload carries the post-transition snapshots of the entities an event touched.
type EventPayload struct {
	Job            *Job             `json:"job,omitempty"`
	Referral       *Referral        `json:"referral,omitempty"`
	Payout         *Payout          `json:"payout,omitempty"`
	StakeRefunded  *Amount          `json:"stake_refunded,omitempty"`
	StakeForfeited *Amount          `json:"stake_forfeited,omitempty"`
	ReturnedAmount *Amount          `json:"returned_amount,omitempty"`
	Reason         SettlementReason `json:"reason,omitempty"`
}

// LedgerEvent is an append-only outbox record describing one ledger mutation.
type LedgerEvent struct {
	Sequence    uint64         `json:"sequence"`
	EventID     string         `json:"event_id"`
	Type        EventType      `json:"type"`
	JobID       uint64         `json:"job_id"`
	ReferralID  uint64         `json:"referral_id,omitempty"`
	Actor       common.Address `json:"actor"`
	Payload     EventPayload   `json:"payload"`
	OccurredAt  time.Time      `json:"occurred_at"`
	ProjectedAt *time.Time     `json:"projected_at,omitempty"`
}
