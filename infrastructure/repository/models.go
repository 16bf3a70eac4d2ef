// Package repository implements the ledger store and the mirror read store on gorm.
package repository

import (
	"time"

	"talent-stake/domain/entities"
)

// Counter names for monotonic IDs.
const (
	counterJob      = "job"
	counterReferral = "referral"
)

// jobRow is the ledger_jobs table.
type jobRow struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement:false"`
	Creator         string          `gorm:"type:varchar(42);index;not null"`
	Title           string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text"`
	InitialBounty   entities.Amount `gorm:"type:varchar(78);not null"`
	AccumulatedSpam entities.Amount `gorm:"type:varchar(78);not null"`
	State           string          `gorm:"type:varchar(16);index;not null"`
	Version         uint64          `gorm:"not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	ClosedAt        *time.Time
}

// TableName specifies the table name for jobRow.
func (jobRow) TableName() string {
	return "ledger_jobs"
}

// referralRow is the ledger_referrals table. claim_hash is the claim index.
type referralRow struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement:false"`
	JobID       uint64          `gorm:"not null;index:idx_referrals_job_state,priority:1;index:idx_referrals_job_referrer,priority:1"`
	Referrer    string          `gorm:"type:varchar(42);not null;index;index:idx_referrals_job_referrer,priority:2"`
	Candidate   *string         `gorm:"type:varchar(42)"`
	Pitch       string          `gorm:"type:text;not null"`
	StakeAmount entities.Amount `gorm:"type:varchar(78);not null"`
	State       string          `gorm:"type:varchar(16);not null;index:idx_referrals_job_state,priority:2"`
	ClaimHash   string          `gorm:"type:varchar(66);not null;uniqueIndex"`
	Version     uint64          `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	DecidedAt   *time.Time
}

// TableName specifies the table name for referralRow.
func (referralRow) TableName() string {
	return "ledger_referrals"
}

// counterRow is the ledger_counters table.
type counterRow struct {
	Name  string `gorm:"primaryKey;type:varchar(32)"`
	Value uint64 `gorm:"not null"`
}

// TableName specifies the table name for counterRow.
func (counterRow) TableName() string {
	return "ledger_counters"
}

// eventRow is the ledger_events outbox table.
type eventRow struct {
	Sequence    uint64     `gorm:"primaryKey;autoIncrement"`
	EventID     string     `gorm:"type:varchar(36);not null;uniqueIndex"`
	Type        string     `gorm:"type:varchar(32);not null;index"`
	JobID       uint64     `gorm:"not null;index"`
	ReferralID  uint64     `gorm:"not null"`
	Actor       string     `gorm:"type:varchar(42);not null"`
	Payload     string     `gorm:"type:text;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	ProjectedAt *time.Time `gorm:"index"`
}

// TableName specifies the table name for eventRow.
func (eventRow) TableName() string {
	return "ledger_events"
}

// tokenAccountRow is the token_accounts table.
type tokenAccountRow struct {
	Owner     string          `gorm:"primaryKey;type:varchar(42)"`
	Balance   entities.Amount `gorm:"type:varchar(78);not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for tokenAccountRow.
func (tokenAccountRow) TableName() string {
	return "token_accounts"
}

// tokenAllowanceRow is the token_allowances table.
type tokenAllowanceRow struct {
	Owner     string          `gorm:"primaryKey;type:varchar(42)"`
	Spender   string          `gorm:"primaryKey;type:varchar(42)"`
	Amount    entities.Amount `gorm:"type:varchar(78);not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for tokenAllowanceRow.
func (tokenAllowanceRow) TableName() string {
	return "token_allowances"
}

// disputeRow is the disputes table.
type disputeRow struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	JobID      uint64    `gorm:"not null;index"`
	Reporter   string    `gorm:"type:varchar(42);not null"`
	Target     string    `gorm:"type:varchar(42);not null"`
	Reason     string    `gorm:"type:text;not null"`
	Evidence   string    `gorm:"type:text"`
	Status     string    `gorm:"type:varchar(16);not null"`
	Resolution string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
	ResolvedAt *time.Time
}

// TableName specifies the table name for disputeRow.
func (disputeRow) TableName() string {
	return "disputes"
}

// jobProjectionRow is the job_projections read model table.
type jobProjectionRow struct {
	JobID           uint64          `gorm:"primaryKey;autoIncrement:false"`
	Creator         string          `gorm:"type:varchar(42);index;not null"`
	Title           string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text"`
	InitialBounty   entities.Amount `gorm:"type:varchar(78);not null"`
	AccumulatedSpam entities.Amount `gorm:"type:varchar(78);not null"`
	TotalPot        entities.Amount `gorm:"type:varchar(78);not null"`
	State           string          `gorm:"type:varchar(16);not null"`
	Version         uint64          `gorm:"not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	ClosedAt        *time.Time
	SyncedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for jobProjectionRow.
func (jobProjectionRow) TableName() string {
	return "job_projections"
}

// referralProjectionRow is the referral_projections read model table.
type referralProjectionRow struct {
	ReferralID  uint64          `gorm:"primaryKey;autoIncrement:false"`
	JobID       uint64          `gorm:"not null;index"`
	Referrer    string          `gorm:"type:varchar(42);not null;index"`
	Candidate   *string         `gorm:"type:varchar(42)"`
	Pitch       string          `gorm:"type:text;not null"`
	StakeAmount entities.Amount `gorm:"type:varchar(78);not null"`
	State       string          `gorm:"type:varchar(16);not null"`
	ClaimHash   string          `gorm:"type:varchar(66);not null"`
	Version     uint64          `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	DecidedAt   *time.Time
	SyncedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for referralProjectionRow.
func (referralProjectionRow) TableName() string {
	return "referral_projections"
}
