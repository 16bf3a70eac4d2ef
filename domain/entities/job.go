package entities

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// JobState represents the lifecycle state of a job.
type JobState string

// Job state constants.
const (
	JobStateDraft  JobState = "draft"
	JobStateOpen   JobState = "open"
	JobStateClosed JobState = "closed"
)

// IsValid reports whether s is a known job state.
func (s JobState) IsValid() bool {
	switch s {
	case JobStateDraft, JobStateOpen, JobStateClosed:
		return true
	}
	return false
}

// Job is a bounty posted by a creator. While open it holds the initial bounty plus
// every forfeited spam stake; once closed the whole pot has been paid out.
type Job struct {
	ID              uint64         `json:"id" yaml:"id"`
	Creator         common.Address `json:"creator" yaml:"creator"`
	Title           string         `json:"title" yaml:"title"`
	Description     string         `json:"description" yaml:"description"`
	InitialBounty   Amount         `json:"initial_bounty" yaml:"initial_bounty"`
	AccumulatedSpam Amount         `json:"accumulated_spam" yaml:"accumulated_spam"`
	State           JobState       `json:"state" yaml:"state"`
	Version         uint64         `json:"version" yaml:"version"`
	CreatedAt       time.Time      `json:"created_at" yaml:"created_at"`
	ClosedAt        *time.Time     `json:"closed_at,omitempty" yaml:"closed_at,omitempty"`
}

// TotalPot returns the initial bounty plus accumulated spam.
func (j *Job) TotalPot() (Amount, error) {
	return j.InitialBounty.Add(j.AccumulatedSpam)
}

// IsOpen reports whether the job still accepts referrals and decisions.
func (j *Job) IsOpen() bool {
	return j.State == JobStateOpen
}

// IsOwnedBy reports whether principal created the job.
func (j *Job) IsOwnedBy(principal common.Address) bool {
	return j.Creator == principal
}

// Close marks the job closed at the given time and bumps its version.
func (j *Job) Close(at time.Time) {
	closedAt := at
	j.State = JobStateClosed
	j.ClosedAt = &closedAt
	j.Version++
}

// Clone returns a deep copy of the job.
func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}
	clone := *j
	if j.ClosedAt != nil {
		closedAt := *j.ClosedAt
		clone.ClosedAt = &closedAt
	}
	return &clone
}

// JobFilter represents filters for listing jobs.
type JobFilter struct {
	Creator *common.Address
	State   *JobState
	Limit   int
}
