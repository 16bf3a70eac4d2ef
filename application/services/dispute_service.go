package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

const maxDisputeReasonLength = 2000

// disputeService implements the DisputeService interface.
type disputeService struct {
	txm      interfaces.TransactionManager
	notifier interfaces.Notifier
	logger   interfaces.Logger
	nowFn    func() time.Time
}

// NewDisputeService creates a dispute service. notifier may be nil.
func NewDisputeService(txm interfaces.TransactionManager, notifier interfaces.Notifier, logger interfaces.Logger) interfaces.DisputeService {
	return &disputeService{
		txm:      txm,
		notifier: notifier,
		logger:   logger,
		nowFn:    time.Now,
	}
}

// RecordDispute stores an open dispute between two participants of a job.
func (s *disputeService) RecordDispute(ctx context.Context, params interfaces.RecordDisputeParams) (*entities.Dispute, error) {
	verr := &errors.ValidationError{}
	if params.Reporter == (common.Address{}) {
		verr.AddFieldError("reporter", "required")
	}
	if params.Target == (common.Address{}) {
		verr.AddFieldError("target", "required")
	}
	if params.Reporter == params.Target {
		verr.AddFieldError("target", "must differ from reporter")
	}
	reason := strings.TrimSpace(params.Reason)
	if reason == "" {
		verr.AddFieldError("reason", "required")
	}
	if len(reason) > maxDisputeReasonLength {
		verr.AddFieldError("reason", fmt.Sprintf("must be at most %d characters", maxDisputeReasonLength))
	}
	if verr.HasErrors() {
		return nil, verr
	}

	var (
		dispute *entities.Dispute
		job     *entities.Job
	)
	err := s.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		var err error
		job, err = uow.Jobs().FindByID(ctx, params.JobID)
		if err != nil {
			return err
		}
		referrals, err := uow.Referrals().FindByJob(ctx, job.ID)
		if err != nil {
			return err
		}

		participants := jobParticipants(job, referrals)
		if !participants[params.Reporter] {
			return errors.NewDomainError(errors.ErrUnauthorized,
				fmt.Sprintf("%s is not a participant of job %d", params.Reporter.Hex(), job.ID))
		}
		if !participants[params.Target] {
			verr := &errors.ValidationError{}
			verr.AddFieldError("target", "not a participant of this job")
			return verr
		}

		dispute = &entities.Dispute{
			ID:        uuid.NewString(),
			JobID:     job.ID,
			Reporter:  params.Reporter,
			Target:    params.Target,
			Reason:    reason,
			Evidence:  strings.TrimSpace(params.Evidence),
			Status:    entities.DisputeStatusOpen,
			CreatedAt: s.nowFn(),
		}
		return uow.Disputes().Create(ctx, dispute)
	})
	if err != nil {
		s.logger.Warn("Dispute rejected", "job_id", params.JobID, "reporter", params.Reporter.Hex(), "error", err)
		return nil, err
	}

	s.logger.Info("Dispute recorded",
		"dispute_id", dispute.ID,
		"job_id", dispute.JobID,
		"reporter", dispute.Reporter.Hex(),
		"target", dispute.Target.Hex())

	if s.notifier != nil && s.notifier.IsConfigured() {
		if err := s.notifier.NotifyDispute(ctx, dispute, job); err != nil {
			s.logger.Warn("Failed to send dispute alert", "dispute_id", dispute.ID, "error", err)
		}
	}
	return dispute, nil
}

// ListDisputes lists the disputes of a job.
func (s *disputeService) ListDisputes(ctx context.Context, jobID uint64) ([]entities.Dispute, error) {
	var disputes []entities.Dispute
	err := s.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		if _, err := uow.Jobs().FindByID(ctx, jobID); err != nil {
			return err
		}
		var err error
		disputes, err = uow.Disputes().FindByJob(ctx, jobID)
		return err
	})
	return disputes, err
}

// jobParticipants returns the creator plus every referrer and candidate of the job.
func jobParticipants(job *entities.Job, referrals []entities.Referral) map[common.Address]bool {
	participants := map[common.Address]bool{job.Creator: true}
	for _, r := range referrals {
		participants[r.Referrer] = true
		if r.Candidate != nil {
			participants[*r.Candidate] = true
		}
	}
	return participants
}
