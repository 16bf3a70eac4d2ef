package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/entities"
)

// CreateJobRequest is the body of a job creation request.
type CreateJobRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Bounty      entities.Amount `json:"bounty"`
}

// StakeReferralRequest is the body of a referral stake request.
type StakeReferralRequest struct {
	Pitch string `json:"pitch"`
}

// StakeReferralResponse returns the claim hash the referrer hands to the candidate.
type StakeReferralResponse struct {
	ReferralID uint64             `json:"referral_id"`
	ClaimHash  common.Hash        `json:"claim_hash"`
	Referral   *entities.Referral `json:"referral"`
}

// ClaimStatusResponse reports whether a claim hash can still be claimed.
type ClaimStatusResponse struct {
	ClaimHash common.Hash `json:"claim_hash"`
	Claimable bool        `json:"claimable"`
}

// AdjudicateRequest is the body of an adjudication request.
type AdjudicateRequest struct {
	Decision string `json:"decision"`
}

// RecordDisputeRequest is the body of a dispute request.
type RecordDisputeRequest struct {
	Target   common.Address `json:"target"`
	Reason   string         `json:"reason"`
	Evidence string         `json:"evidence"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Class  string              `json:"class"`
	Fields map[string][]string `json:"fields,omitempty"`
}
