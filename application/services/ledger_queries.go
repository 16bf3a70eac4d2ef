package services

import (
	"context"
	stderrors "errors"

	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// ledgerQueries implements the LedgerQueries interface.
type ledgerQueries struct {
	txm          interfaces.TransactionManager
	locks        *JobLocks
	escrowHolder common.Address
	metrics      interfaces.LedgerMetrics
}

// NewLedgerQueries creates the read side of the ledger. It shares locks with the
// engine so a job view never mixes states from before and after a mutation.
// metrics may be nil.
func NewLedgerQueries(
	txm interfaces.TransactionManager,
	locks *JobLocks,
	escrowHolder common.Address,
	metrics interfaces.LedgerMetrics,
) interfaces.LedgerQueries {
	return &ledgerQueries{
		txm:          txm,
		locks:        locks,
		escrowHolder: escrowHolder,
		metrics:      metrics,
	}
}

// GetJob returns a job.
func (q *ledgerQueries) GetJob(ctx context.Context, jobID uint64) (*entities.Job, error) {
	var job *entities.Job
	err := q.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		var err error
		job, err = uow.Jobs().FindByID(ctx, jobID)
		return err
	})
	return job, err
}

// GetJobView returns a job and its referrals read under the job's shared lock.
func (q *ledgerQueries) GetJobView(ctx context.Context, jobID uint64) (*dto.JobView, error) {
	unlock := q.locks.RLock(jobID)
	defer unlock()

	var view *dto.JobView
	err := q.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		var err error
		view, err = loadJobView(ctx, uow, jobID)
		return err
	})
	return view, err
}

func loadJobView(ctx context.Context, uow interfaces.UnitOfWork, jobID uint64) (*dto.JobView, error) {
	job, err := uow.Jobs().FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	referrals, err := uow.Referrals().FindByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	pot, err := job.TotalPot()
	if err != nil {
		return nil, err
	}
	return &dto.JobView{
		Job:       job,
		TotalPot:  pot,
		Referrals: referrals,
		Summary:   dto.NewReferralSummary(referrals),
	}, nil
}

// GetReferral returns a referral.
func (q *ledgerQueries) GetReferral(ctx context.Context, referralID uint64) (*entities.Referral, error) {
	var referral *entities.Referral
	err := q.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		var err error
		referral, err = uow.Referrals().FindByID(ctx, referralID)
		return err
	})
	return referral, err
}

// TotalPot returns initial bounty plus accumulated spam of a job.
func (q *ledgerQueries) TotalPot(ctx context.Context, jobID uint64) (entities.Amount, error) {
	job, err := q.GetJob(ctx, jobID)
	if err != nil {
		return entities.Amount{}, err
	}
	return job.TotalPot()
}

// IsReferralClaimable reports whether claimHash still opens a pending referral.
func (q *ledgerQueries) IsReferralClaimable(ctx context.Context, claimHash common.Hash) (bool, error) {
	referral, err := q.findByClaimHash(ctx, claimHash)
	if err != nil {
		if stderrors.Is(err, errors.ErrClaimNotFound) {
			return false, nil
		}
		return false, err
	}
	return referral.State == entities.ReferralStatePendingClaim, nil
}

func (q *ledgerQueries) findByClaimHash(ctx context.Context, claimHash common.Hash) (*entities.Referral, error) {
	var referral *entities.Referral
	err := q.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		var err error
		referral, err = uow.Referrals().FindByClaimHash(ctx, claimHash)
		return err
	})
	return referral, err
}

// ListJobs lists jobs matching the filter.
func (q *ledgerQueries) ListJobs(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error) {
	var jobs []entities.Job
	err := q.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		var err error
		jobs, err = uow.Jobs().FindByFilter(ctx, filter)
		return err
	})
	return jobs, err
}

// ListReferralsByReferrer lists the referrals a principal staked.
func (q *ledgerQueries) ListReferralsByReferrer(ctx context.Context, referrer common.Address) ([]entities.Referral, error) {
	var referrals []entities.Referral
	err := q.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		var err error
		referrals, err = uow.Referrals().FindByReferrer(ctx, referrer)
		return err
	})
	return referrals, err
}

// JobHistory returns the ledger events of a job in commit order.
func (q *ledgerQueries) JobHistory(ctx context.Context, jobID uint64) ([]entities.LedgerEvent, error) {
	var events []entities.LedgerEvent
	err := q.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		if _, err := uow.Jobs().FindByID(ctx, jobID); err != nil {
			return err
		}
		var err error
		events, err = uow.Events().FindByJob(ctx, jobID)
		return err
	})
	return events, err
}

// EscrowBalance returns the funds held by the escrow holder.
func (q *ledgerQueries) EscrowBalance(ctx context.Context) (entities.Amount, error) {
	var balance entities.Amount
	err := q.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		var err error
		balance, err = uow.Settlement().BalanceOf(ctx, q.escrowHolder)
		return err
	})
	if err != nil {
		return entities.Amount{}, err
	}
	if q.metrics != nil {
		q.metrics.SetEscrowBalance(balance)
	}
	return balance, nil
}
