package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db                 *gorm.DB
	tx                 *gorm.DB
	jobRepository      interfaces.JobRepository
	referralRepository interfaces.ReferralRepository
	eventRepository    interfaces.EventRepository
	disputeRepository  interfaces.DisputeRepository
	settlement         interfaces.TokenLedger
}

// NewUnitOfWork creates a new unit of work
func NewUnitOfWork(db *gorm.DB) interfaces.UnitOfWork {
	return &unitOfWork{
		db: db,
	}
}

// Begin starts a new transaction. Once begun, the transaction is not tied to the
// caller's cancellation so it always ends in an explicit commit or rollback.
func (u *unitOfWork) Begin(ctx context.Context) error {
	u.tx = u.db.WithContext(context.WithoutCancel(ctx)).Begin()
	if u.tx.Error != nil {
		err := u.tx.Error
		u.tx = nil
		return err
	}

	u.jobRepository = NewJobRepository(u.tx)
	u.referralRepository = NewReferralRepository(u.tx)
	u.eventRepository = NewEventRepository(u.tx)
	u.disputeRepository = NewDisputeRepository(u.tx)
	u.settlement = NewSettlementLedger(u.tx)

	return nil
}

func (u *unitOfWork) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Jobs returns the job repository
func (u *unitOfWork) Jobs() interfaces.JobRepository {
	if u.jobRepository == nil {
		u.jobRepository = NewJobRepository(u.conn())
	}
	return u.jobRepository
}

// Referrals returns the referral repository
func (u *unitOfWork) Referrals() interfaces.ReferralRepository {
	if u.referralRepository == nil {
		u.referralRepository = NewReferralRepository(u.conn())
	}
	return u.referralRepository
}

// Events returns the outbox repository
func (u *unitOfWork) Events() interfaces.EventRepository {
	if u.eventRepository == nil {
		u.eventRepository = NewEventRepository(u.conn())
	}
	return u.eventRepository
}

// Disputes returns the dispute repository
func (u *unitOfWork) Disputes() interfaces.DisputeRepository {
	if u.disputeRepository == nil {
		u.disputeRepository = NewDisputeRepository(u.conn())
	}
	return u.disputeRepository
}

// Settlement returns the token ledger
func (u *unitOfWork) Settlement() interfaces.TokenLedger {
	if u.settlement == nil {
		u.settlement = NewSettlementLedger(u.conn())
	}
	return u.settlement
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// transactionManager implements the TransactionManager interface.
type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a transaction manager over db.
func NewTransactionManager(db *gorm.DB) interfaces.TransactionManager {
	return &transactionManager{db: db}
}

// WithinTransaction runs fn in a fresh unit of work. The work is committed when fn
// returns nil and rolled back when it returns an error or panics.
func (m *transactionManager) WithinTransaction(ctx context.Context, fn func(uow interfaces.UnitOfWork) error) (err error) {
	uow := NewUnitOfWork(m.db)
	if err := uow.Begin(ctx); err != nil {
		return &errors.RepositoryError{Operation: "Begin", Entity: "Transaction", Err: err}
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback()
			panic(p)
		}
	}()

	if err := fn(uow); err != nil {
		if rbErr := uow.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := uow.Commit(); err != nil {
		return &errors.RepositoryError{Operation: "Commit", Entity: "Transaction", Err: err}
	}
	return nil
}
