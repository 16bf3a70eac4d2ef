package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ReferralState represents the lifecycle state of a referral.
type ReferralState string

// Referral state constants.
const (
	ReferralStatePendingClaim ReferralState = "pending_claim"
	ReferralStateSubmitted    ReferralState = "submitted"
	ReferralStateRejected     ReferralState = "rejected"
	ReferralStateSpam         ReferralState = "spam"
	ReferralStateHired        ReferralState = "hired"
)

// referralTransitions lists the allowed edges of the referral state graph.
// Terminal states have no entry.
var referralTransitions = map[ReferralState][]ReferralState{
	ReferralStatePendingClaim: {ReferralStateSubmitted, ReferralStateRejected},
	ReferralStateSubmitted:    {ReferralStateRejected, ReferralStateSpam, ReferralStateHired},
}

// CanTransition reports whether a referral may move from one state to another.
func CanTransition(from, to ReferralState) bool {
	for _, allowed := range referralTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s ReferralState) IsTerminal() bool {
	return len(referralTransitions[s]) == 0
}

// IsInFlight reports whether the stake is still held for an undecided referral.
func (s ReferralState) IsInFlight() bool {
	return s == ReferralStatePendingClaim || s == ReferralStateSubmitted
}

// IsValid reports whether s is a known referral state.
func (s ReferralState) IsValid() bool {
	switch s {
	case ReferralStatePendingClaim, ReferralStateSubmitted, ReferralStateRejected,
		ReferralStateSpam, ReferralStateHired:
		return true
	}
	return false
}

// Referral is a staked introduction of a candidate to a job.
type Referral struct {
	ID          uint64          `json:"id" yaml:"id"`
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
}

// TransitionTo moves the referral to the next state and bumps its version.
func (r *Referral) TransitionTo(next ReferralState, at time.Time) error {
	if !CanTransition(r.State, next) {
		return fmt.Errorf("referral %d: transition %s -> %s not allowed", r.ID, r.State, next)
	}
	r.State = next
	r.Version++
	if next.IsTerminal() {
		decidedAt := at
		r.DecidedAt = &decidedAt
	}
	return nil
}

// Clone returns a deep copy of the referral.
func (r *Referral) Clone() *Referral {
	if r == nil {
		return nil
	}
	clone := *r
	if r.Candidate != nil {
		candidate := *r.Candidate
		clone.Candidate = &candidate
	}
	if r.DecidedAt != nil {
		decidedAt := *r.DecidedAt
		clone.DecidedAt = &decidedAt
	}
	return &clone
}

// Decision is the creator's verdict on a submitted referral.
type Decision string

// Decision constants.
const (
	DecisionPass Decision = "pass"
	DecisionSpam Decision = "spam"
	DecisionHire Decision = "hire"
)

// ParseDecision accepts the decision names and their numeric encodings 0, 1 and 2.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pass", "reject", "rejected", "0":
		return DecisionPass, nil
	case "spam", "1":
		return DecisionSpam, nil
	case "hire", "hired", "2":
		return DecisionHire, nil
	}
	return "", fmt.Errorf("unknown decision %q", s)
}

// TargetState returns the referral state a decision leads to.
func (d Decision) TargetState() (ReferralState, bool) {
	switch d {
	case DecisionPass:
		return ReferralStateRejected, true
	case DecisionSpam:
		return ReferralStateSpam, true
	case DecisionHire:
		return ReferralStateHired, true
	}
	return "", false
}
