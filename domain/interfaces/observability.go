package interfaces

import (
	"time"

	"talent-stake/domain/entities"
)

// Logger is the structured logger used across the ledger. fields are
// alternating key/value pairs.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})

	// Fatal logs and exits the process.
	Fatal(msg string, fields ...interface{})

	// WithFields returns a logger that adds fields to every entry.
	WithFields(fields map[string]interface{}) Logger

	// WithError returns a logger carrying err as the error field.
	WithError(err error) Logger
}

// Operation outcomes reported to metrics.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// LedgerMetrics records escrow and mirror activity.
type LedgerMetrics interface {
	ObserveOperation(operation, outcome string, duration time.Duration)
	RecordPayout(payout entities.Payout)
	SetEscrowBalance(amount entities.Amount)
	SetMirrorPending(count int64)
	AddMirrorApplied(count int)
}
