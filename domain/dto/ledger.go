// Package dto contains data transfer objects for CLI output, API responses and notifications.
package dto

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/entities"
)

// JobView is a job and its referrals read as one snapshot.
type JobView struct {
	Job       *entities.Job       `json:"job" yaml:"job"`
	TotalPot  entities.Amount     `json:"total_pot" yaml:"total_pot"`
	Referrals []entities.Referral `json:"referrals" yaml:"referrals"`
	Summary   ReferralSummary     `json:"summary" yaml:"summary"`
}

// ReferralSummary counts the referrals of a job by state.
type ReferralSummary struct {
	Total   int                            `json:"total" yaml:"total"`
	ByState map[entities.ReferralState]int `json:"by_state" yaml:"by_state"`
}

// NewReferralSummary counts referrals by state.
func NewReferralSummary(referrals []entities.Referral) ReferralSummary {
	summary := ReferralSummary{
		Total:   len(referrals),
		ByState: make(map[entities.ReferralState]int),
	}
	for _, r := range referrals {
		summary.ByState[r.State]++
	}
	return summary
}

// AccountBalance reports a participant's settlement funds.
type AccountBalance struct {
	Owner           common.Address  `json:"owner" yaml:"owner"`
	Balance         entities.Amount `json:"balance" yaml:"balance"`
	EscrowAllowance entities.Amount `json:"escrow_allowance" yaml:"escrow_allowance"`
}

// OnchainBalance reports a participant's funds on the settlement token contract.
type OnchainBalance struct {
	Token           common.Address  `json:"token" yaml:"token"`
	Symbol          string          `json:"symbol" yaml:"symbol"`
	Decimals        uint8           `json:"decimals" yaml:"decimals"`
	Owner           common.Address  `json:"owner" yaml:"owner"`
	Balance         entities.Amount `json:"balance" yaml:"balance"`
	EscrowAllowance entities.Amount `json:"escrow_allowance" yaml:"escrow_allowance"`
}

// LedgerSnapshot is an export of the ledger for offline inspection.
type LedgerSnapshot struct {
	GeneratedAt   time.Time       `json:"generated_at" yaml:"generated_at"`
	EscrowHolder  common.Address  `json:"escrow_holder" yaml:"escrow_holder"`
	EscrowBalance entities.Amount `json:"escrow_balance" yaml:"escrow_balance"`
	Jobs          []JobView       `json:"jobs" yaml:"jobs"`
}
