package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// AdjudicateReferral applies the creator's decision to a submitted referral.
// A hire pays out the pot, closes the job and settles every other referral in flight.
func (e *escrowEngine) AdjudicateReferral(ctx context.Context, params interfaces.AdjudicateReferralParams) (*interfaces.AdjudicationResult, error) {
	start := time.Now()
	result, err := e.adjudicateReferral(ctx, params)
	e.finish("adjudicate_referral", start, err,
		"referral_id", params.ReferralID,
		"decision", string(params.Decision),
		"caller", params.Caller.Hex())
	return result, err
}

func (e *escrowEngine) adjudicateReferral(ctx context.Context, params interfaces.AdjudicateReferralParams) (*interfaces.AdjudicationResult, error) {
	target, ok := params.Decision.TargetState()
	if !ok {
		return nil, errors.NewDomainError(errors.ErrInvalidDecision, fmt.Sprintf("%q", params.Decision))
	}
	if params.Caller == (common.Address{}) {
		verr := &errors.ValidationError{}
		verr.AddFieldError("caller", "required")
		return nil, verr
	}

	jobID, err := e.resolveReferralJob(ctx, params.ReferralID)
	if err != nil {
		return nil, err
	}

	unlock := e.locks.Lock(jobID)
	defer unlock()

	result := &interfaces.AdjudicationResult{}
	rec := newRecorder(params.Caller, e.cfg.Now())
	err = e.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		txCtx := context.WithoutCancel(ctx)
		job, err := uow.Jobs().FindByIDForUpdate(txCtx, jobID)
		if err != nil {
			return err
		}
		referral, err := uow.Referrals().FindByID(txCtx, params.ReferralID)
		if err != nil {
			return err
		}

		if !job.IsOwnedBy(params.Caller) {
			return errors.NewDomainError(errors.ErrNotJobOwner,
				fmt.Sprintf("%s does not own job %d", params.Caller.Hex(), job.ID))
		}
		if !job.IsOpen() {
			return errors.NewDomainError(errors.ErrJobClosed, fmt.Sprintf("job %d", job.ID))
		}
		if referral.State != entities.ReferralStateSubmitted {
			return errors.NewDomainError(errors.ErrReferralNotSubmitted,
				fmt.Sprintf("referral %d is %s", referral.ID, referral.State))
		}

		if err := referral.TransitionTo(target, rec.now); err != nil {
			return err
		}
		if err := uow.Referrals().Update(txCtx, referral); err != nil {
			return err
		}

		switch params.Decision {
		case entities.DecisionPass:
			err = e.rejectWithRefund(txCtx, uow, rec, job, referral)
		case entities.DecisionSpam:
			err = e.forfeitStake(txCtx, uow, rec, job, referral)
		case entities.DecisionHire:
			result.Payout, result.Settled, err = e.hire(txCtx, uow, rec, job, referral)
		}
		if err != nil {
			return err
		}

		result.Job = job
		result.Referral = referral
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.committed(rec.events)
	e.logger.Info("Referral adjudicated",
		"job_id", result.Job.ID,
		"referral_id", result.Referral.ID,
		"state", string(result.Referral.State),
		"settled", len(result.Settled))
	if result.Payout != nil {
		if e.metrics != nil {
			e.metrics.RecordPayout(*result.Payout)
		}
		e.logger.Info("Funds distributed",
			"job_id", result.Job.ID,
			"referrer_amount", result.Payout.ReferrerAmount.String(),
			"candidate_amount", result.Payout.CandidateAmount.String())
	}
	return result, nil
}

// rejectWithRefund returns the stake of a passed referral.
func (e *escrowEngine) rejectWithRefund(ctx context.Context, uow interfaces.UnitOfWork, rec *recorder, job *entities.Job, referral *entities.Referral) error {
	if err := e.pay(ctx, uow.Settlement(), referral.Referrer, referral.StakeAmount); err != nil {
		return err
	}
	refunded := referral.StakeAmount
	return rec.emit(ctx, uow, entities.EventReferralAdjudicated, job.ID, referral.ID, entities.EventPayload{
		Referral:      referral.Clone(),
		StakeRefunded: &refunded,
		Reason:        entities.ReasonDecision,
	})
}

// forfeitStake moves a spam referral's stake into the job pot.
func (e *escrowEngine) forfeitStake(ctx context.Context, uow interfaces.UnitOfWork, rec *recorder, job *entities.Job, referral *entities.Referral) error {
	spam, err := job.AccumulatedSpam.Add(referral.StakeAmount)
	if err != nil {
		return errors.NewDomainError(errors.ErrInvalidAmount, fmt.Sprintf("job %d pot overflows", job.ID))
	}
	job.AccumulatedSpam = spam
	job.Version++
	if err := uow.Jobs().Update(ctx, job); err != nil {
		return err
	}

	forfeited := referral.StakeAmount
	return rec.emit(ctx, uow, entities.EventReferralAdjudicated, job.ID, referral.ID, entities.EventPayload{
		Job:            job.Clone(),
		Referral:       referral.Clone(),
		StakeForfeited: &forfeited,
		Reason:         entities.ReasonDecision,
	})
}

// hire splits the pot, refunds the hired referral's stake, closes the job and
// rejects the remaining referrals in flight.
func (e *escrowEngine) hire(
	ctx context.Context,
	uow interfaces.UnitOfWork,
	rec *recorder,
	job *entities.Job,
	referral *entities.Referral,
) (*entities.Payout, []entities.Referral, error) {
	if referral.Candidate == nil {
		return nil, nil, errors.NewDomainError(errors.ErrInternal,
			fmt.Sprintf("submitted referral %d has no candidate", referral.ID))
	}

	pot, err := job.TotalPot()
	if err != nil {
		return nil, nil, errors.NewDomainError(errors.ErrInvalidAmount, fmt.Sprintf("job %d pot overflows", job.ID))
	}
	referrerAmount, candidateAmount, err := SplitPot(pot, e.cfg.ReferrerSharePercent)
	if err != nil {
		return nil, nil, err
	}

	asset := uow.Settlement()
	if err := e.pay(ctx, asset, referral.Referrer, referrerAmount); err != nil {
		return nil, nil, err
	}
	if err := e.pay(ctx, asset, *referral.Candidate, candidateAmount); err != nil {
		return nil, nil, err
	}
	if err := e.pay(ctx, asset, referral.Referrer, referral.StakeAmount); err != nil {
		return nil, nil, err
	}

	refunded := referral.StakeAmount
	err = rec.emit(ctx, uow, entities.EventReferralAdjudicated, job.ID, referral.ID, entities.EventPayload{
		Referral:      referral.Clone(),
		StakeRefunded: &refunded,
		Reason:        entities.ReasonDecision,
	})
	if err != nil {
		return nil, nil, err
	}

	settled, err := e.settleInFlight(ctx, uow, rec, job, entities.ReasonJobFilled)
	if err != nil {
		return nil, nil, err
	}

	job.Close(rec.now)
	if err := uow.Jobs().Update(ctx, job); err != nil {
		return nil, nil, err
	}

	payout := &entities.Payout{
		Referrer:        referral.Referrer,
		Candidate:       *referral.Candidate,
		TotalPot:        pot,
		ReferrerAmount:  referrerAmount,
		CandidateAmount: candidateAmount,
	}
	err = rec.emit(ctx, uow, entities.EventFundsDistributed, job.ID, referral.ID, entities.EventPayload{
		Job:    job.Clone(),
		Payout: payout,
	})
	if err != nil {
		return nil, nil, err
	}
	return payout, settled, nil
}

// WithdrawJob returns the whole pot to the creator, closes the job and refunds every
// referral still in flight.
func (e *escrowEngine) WithdrawJob(ctx context.Context, params interfaces.WithdrawJobParams) (*interfaces.WithdrawalResult, error) {
	start := time.Now()
	result, err := e.withdrawJob(ctx, params)
	e.finish("withdraw_job", start, err, "job_id", params.JobID, "caller", params.Caller.Hex())
	return result, err
}

func (e *escrowEngine) withdrawJob(ctx context.Context, params interfaces.WithdrawJobParams) (*interfaces.WithdrawalResult, error) {
	if params.Caller == (common.Address{}) {
		verr := &errors.ValidationError{}
		verr.AddFieldError("caller", "required")
		return nil, verr
	}

	unlock := e.locks.Lock(params.JobID)
	defer unlock()

	result := &interfaces.WithdrawalResult{}
	rec := newRecorder(params.Caller, e.cfg.Now())
	err := e.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		txCtx := context.WithoutCancel(ctx)
		job, err := uow.Jobs().FindByIDForUpdate(txCtx, params.JobID)
		if err != nil {
			return err
		}
		if !job.IsOwnedBy(params.Caller) {
			return errors.NewDomainError(errors.ErrNotJobOwner,
				fmt.Sprintf("%s does not own job %d", params.Caller.Hex(), job.ID))
		}
		if !job.IsOpen() {
			return errors.NewDomainError(errors.ErrJobClosed, fmt.Sprintf("job %d", job.ID))
		}

		pot, err := job.TotalPot()
		if err != nil {
			return errors.NewDomainError(errors.ErrInvalidAmount, fmt.Sprintf("job %d pot overflows", job.ID))
		}

		settled, err := e.settleInFlight(txCtx, uow, rec, job, entities.ReasonWithdrawal)
		if err != nil {
			return err
		}
		if err := e.pay(txCtx, uow.Settlement(), job.Creator, pot); err != nil {
			return err
		}

		job.Close(rec.now)
		if err := uow.Jobs().Update(txCtx, job); err != nil {
			return err
		}

		returned := pot
		err = rec.emit(txCtx, uow, entities.EventJobWithdrawn, job.ID, 0, entities.EventPayload{
			Job:            job.Clone(),
			ReturnedAmount: &returned,
		})
		if err != nil {
			return err
		}

		result.Job = job
		result.Returned = pot
		result.Settled = settled
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.committed(rec.events)
	e.logger.Info("Job withdrawn",
		"job_id", result.Job.ID,
		"returned", result.Returned.String(),
		"settled", len(result.Settled))
	return result, nil
}

// settleInFlight rejects every pending or submitted referral of the job and refunds
// its stake.
func (e *escrowEngine) settleInFlight(
	ctx context.Context,
	uow interfaces.UnitOfWork,
	rec *recorder,
	job *entities.Job,
	reason entities.SettlementReason,
) ([]entities.Referral, error) {
	inFlight, err := uow.Referrals().FindInFlightByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}

	settled := make([]entities.Referral, 0, len(inFlight))
	for i := range inFlight {
		referral := &inFlight[i]
		if err := referral.TransitionTo(entities.ReferralStateRejected, rec.now); err != nil {
			return nil, err
		}
		if err := uow.Referrals().Update(ctx, referral); err != nil {
			return nil, err
		}
		if err := e.pay(ctx, uow.Settlement(), referral.Referrer, referral.StakeAmount); err != nil {
			return nil, err
		}

		refunded := referral.StakeAmount
		err := rec.emit(ctx, uow, entities.EventReferralAdjudicated, job.ID, referral.ID, entities.EventPayload{
			Referral:      referral.Clone(),
			StakeRefunded: &refunded,
			Reason:        reason,
		})
		if err != nil {
			return nil, err
		}
		settled = append(settled, *referral)
	}
	return settled, nil
}

// resolveReferralJob finds the job a referral belongs to, outside any job lock.
func (e *escrowEngine) resolveReferralJob(ctx context.Context, referralID uint64) (uint64, error) {
	var jobID uint64
	err := e.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		referral, err := uow.Referrals().FindByID(ctx, referralID)
		if err != nil {
			return err
		}
		jobID = referral.JobID
		return nil
	})
	return jobID, err
}
