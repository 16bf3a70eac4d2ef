package entities

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DisputeStatus represents the review status of a dispute.
type DisputeStatus string

// Dispute status constants. Only open disputes are created; review happens elsewhere.
const (
	DisputeStatusOpen     DisputeStatus = "open"
	DisputeStatusResolved DisputeStatus = "resolved"
)

// Dispute is a complaint raised by a participant about another participant of a job.
// Disputes are recorded for review and never move funds.
type Dispute struct {
	ID         string         `json:"id" yaml:"id"`
	JobID      uint64         `json:"job_id" yaml:"job_id"`
	Reporter   common.Address `json:"reporter" yaml:"reporter"`
	Target     common.Address `json:"target" yaml:"target"`
	Reason     string         `json:"reason" yaml:"reason"`
	Evidence   string         `json:"evidence,omitempty" yaml:"evidence,omitempty"`
	Status     DisputeStatus  `json:"status" yaml:"status"`
	Resolution string         `json:"resolution,omitempty" yaml:"resolution,omitempty"`
	CreatedAt  time.Time      `json:"created_at" yaml:"created_at"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty" yaml:"resolved_at,omitempty"`
}
