// Package services implements the escrow ledger: the stake and claim engine, the
// adjudication state machine, consistent queries and the mirror projector.
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

const (
	maxTitleLength       = 200
	maxPitchLength       = 2000
	maxClaimHashAttempts = 3
)

// EngineConfig holds the escrow rules.
type EngineConfig struct {
	// EscrowHolder is the principal that holds bounties and stakes.
	EscrowHolder common.Address
	// StakeAmount is the commitment fee pulled from every referrer.
	StakeAmount entities.Amount
	// ReferrerSharePercent is the referrer's share of the pot on hire.
	ReferrerSharePercent uint64
	// OneReferralPerReferrer rejects a second referral by the same referrer on a job.
	OneReferralPerReferrer bool
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

// escrowEngine implements the EscrowEngine interface.
type escrowEngine struct {
	txm      interfaces.TransactionManager
	claims   interfaces.ClaimTokenGenerator
	locks    *JobLocks
	cfg      EngineConfig
	logger   interfaces.Logger
	metrics  interfaces.LedgerMetrics
	listener interfaces.CommitListener
}

// NewEscrowEngine creates the escrow engine. metrics and listener may be nil.
func NewEscrowEngine(
	txm interfaces.TransactionManager,
	claims interfaces.ClaimTokenGenerator,
	locks *JobLocks,
	cfg EngineConfig,
	logger interfaces.Logger,
	metrics interfaces.LedgerMetrics,
	listener interfaces.CommitListener,
) interfaces.EscrowEngine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &escrowEngine{
		txm:      txm,
		claims:   claims,
		locks:    locks,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		listener: listener,
	}
}

// CreateJob pulls the bounty from the creator into escrow and opens a job.
func (e *escrowEngine) CreateJob(ctx context.Context, params interfaces.CreateJobParams) (*entities.Job, error) {
	start := time.Now()
	job, err := e.createJob(ctx, params)
	e.finish("create_job", start, err, "creator", params.Creator.Hex())
	return job, err
}

func (e *escrowEngine) createJob(ctx context.Context, params interfaces.CreateJobParams) (*entities.Job, error) {
	if err := e.validateCreateJob(params); err != nil {
		return nil, err
	}

	var job *entities.Job
	rec := newRecorder(params.Creator, e.cfg.Now())
	err := e.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		txCtx := context.WithoutCancel(ctx)
		if err := e.pull(txCtx, uow.Settlement(), params.Creator, params.Bounty); err != nil {
			return err
		}

		id, err := uow.Jobs().NextID(txCtx)
		if err != nil {
			return err
		}
		job = &entities.Job{
			ID:              id,
			Creator:         params.Creator,
			Title:           strings.TrimSpace(params.Title),
			Description:     strings.TrimSpace(params.Description),
			InitialBounty:   params.Bounty,
			AccumulatedSpam: entities.ZeroAmount(),
			State:           entities.JobStateOpen,
			Version:         1,
			CreatedAt:       rec.now,
		}
		if err := uow.Jobs().Create(txCtx, job); err != nil {
			return err
		}
		return rec.emit(txCtx, uow, entities.EventJobCreated, job.ID, 0, entities.EventPayload{Job: job.Clone()})
	})
	if err != nil {
		return nil, err
	}

	e.committed(rec.events)
	e.logger.Info("Job created",
		"job_id", job.ID,
		"creator", job.Creator.Hex(),
		"bounty", job.InitialBounty.String())
	return job, nil
}

// StakeReferral pulls the stake from the referrer and creates a pending referral
// with a fresh claim hash.
func (e *escrowEngine) StakeReferral(ctx context.Context, params interfaces.StakeReferralParams) (*entities.Referral, error) {
	start := time.Now()
	referral, err := e.stakeReferral(ctx, params)
	e.finish("stake_referral", start, err, "job_id", params.JobID, "referrer", params.Referrer.Hex())
	return referral, err
}

func (e *escrowEngine) stakeReferral(ctx context.Context, params interfaces.StakeReferralParams) (*entities.Referral, error) {
	if err := e.validateStake(params); err != nil {
		return nil, err
	}

	unlock := e.locks.Lock(params.JobID)
	defer unlock()

	var referral *entities.Referral
	rec := newRecorder(params.Referrer, e.cfg.Now())
	err := e.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		txCtx := context.WithoutCancel(ctx)
		job, err := uow.Jobs().FindByIDForUpdate(txCtx, params.JobID)
		if err != nil {
			if stderrors.Is(err, errors.ErrJobNotFound) {
				return errors.NewDomainError(
					fmt.Errorf("%w: %w", errors.ErrJobNotOpen, errors.ErrJobNotFound),
					fmt.Sprintf("job %d does not exist", params.JobID))
			}
			return err
		}
		if !job.IsOpen() {
			return errors.NewDomainError(errors.ErrJobNotOpen, fmt.Sprintf("job %d is %s", job.ID, job.State)).
				WithDetails("job_id", job.ID)
		}
		if job.IsOwnedBy(params.Referrer) {
			return errors.NewDomainError(errors.ErrSelfReferral, fmt.Sprintf("job %d", job.ID))
		}
		if e.cfg.OneReferralPerReferrer {
			exists, err := uow.Referrals().ExistsForReferrer(txCtx, job.ID, params.Referrer)
			if err != nil {
				return err
			}
			if exists {
				return errors.NewDomainError(errors.ErrDuplicateReferral,
					fmt.Sprintf("%s on job %d", params.Referrer.Hex(), job.ID))
			}
		}

		if err := e.pull(txCtx, uow.Settlement(), params.Referrer, e.cfg.StakeAmount); err != nil {
			return err
		}

		id, err := uow.Referrals().NextID(txCtx)
		if err != nil {
			return err
		}
		hash, err := e.issueClaimHash(txCtx, uow.Referrals(), id, rec.now)
		if err != nil {
			return err
		}

		referral = &entities.Referral{
			ID:          id,
			JobID:       job.ID,
			Referrer:    params.Referrer,
			Pitch:       strings.TrimSpace(params.Pitch),
			StakeAmount: e.cfg.StakeAmount,
			State:       entities.ReferralStatePendingClaim,
			ClaimHash:   hash,
			Version:     1,
			CreatedAt:   rec.now,
		}
		if err := uow.Referrals().Create(txCtx, referral); err != nil {
			return err
		}
		return rec.emit(txCtx, uow, entities.EventReferralStaked, job.ID, referral.ID,
			entities.EventPayload{Referral: referral.Clone()})
	})
	if err != nil {
		return nil, err
	}

	e.committed(rec.events)
	e.logger.Info("Referral staked",
		"job_id", referral.JobID,
		"referral_id", referral.ID,
		"referrer", referral.Referrer.Hex(),
		"stake", referral.StakeAmount.String())
	return referral, nil
}

// ClaimReferral binds the candidate to the referral behind claimHash. The hash is
// consumed: any later claim with it fails with ErrClaimNotFound.
func (e *escrowEngine) ClaimReferral(ctx context.Context, params interfaces.ClaimReferralParams) (*entities.Referral, error) {
	start := time.Now()
	referral, err := e.claimReferral(ctx, params)
	e.finish("claim_referral", start, err, "candidate", params.Candidate.Hex())
	return referral, err
}

func (e *escrowEngine) claimReferral(ctx context.Context, params interfaces.ClaimReferralParams) (*entities.Referral, error) {
	verr := &errors.ValidationError{}
	checkPrincipal(verr, "candidate", params.Candidate, e.cfg.EscrowHolder)
	if verr.HasErrors() {
		return nil, verr
	}
	if params.ClaimHash == (common.Hash{}) {
		return nil, errors.NewDomainError(errors.ErrClaimNotFound, "empty claim link")
	}

	jobID, err := e.resolveClaim(ctx, params.ClaimHash)
	if err != nil {
		return nil, err
	}

	unlock := e.locks.Lock(jobID)
	defer unlock()

	var referral *entities.Referral
	rec := newRecorder(params.Candidate, e.cfg.Now())
	err = e.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		txCtx := context.WithoutCancel(ctx)
		if _, err := uow.Jobs().FindByIDForUpdate(txCtx, jobID); err != nil {
			return err
		}
		found, err := uow.Referrals().FindByClaimHash(txCtx, params.ClaimHash)
		if err != nil {
			return err
		}
		if found.State != entities.ReferralStatePendingClaim {
			if found.Candidate != nil {
				return errors.NewDomainError(errors.ErrClaimNotFound, "claim link already used")
			}
			return errors.NewDomainError(errors.ErrReferralNotClaimable,
				fmt.Sprintf("referral %d is %s", found.ID, found.State))
		}

		candidate := params.Candidate
		found.Candidate = &candidate
		if err := found.TransitionTo(entities.ReferralStateSubmitted, rec.now); err != nil {
			return err
		}
		if err := uow.Referrals().Update(txCtx, found); err != nil {
			return err
		}
		referral = found
		return rec.emit(txCtx, uow, entities.EventReferralClaimed, found.JobID, found.ID,
			entities.EventPayload{Referral: found.Clone()})
	})
	if err != nil {
		return nil, err
	}

	e.committed(rec.events)
	e.logger.Info("Referral claimed",
		"job_id", referral.JobID,
		"referral_id", referral.ID,
		"candidate", params.Candidate.Hex())
	return referral, nil
}

// resolveClaim finds the job a claim hash belongs to, outside any job lock.
func (e *escrowEngine) resolveClaim(ctx context.Context, hash common.Hash) (uint64, error) {
	var jobID uint64
	err := e.txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		referral, err := uow.Referrals().FindByClaimHash(ctx, hash)
		if err != nil {
			return err
		}
		jobID = referral.JobID
		return nil
	})
	return jobID, err
}

// pull moves amount from owner into escrow after checking balance and allowance,
// so a shortfall always surfaces as ErrInsufficientFunds.
func (e *escrowEngine) pull(ctx context.Context, asset interfaces.SettlementAsset, owner common.Address, amount entities.Amount) error {
	balance, err := asset.BalanceOf(ctx, owner)
	if err != nil {
		return err
	}
	if balance.LessThan(amount) {
		return errors.NewDomainError(errors.ErrInsufficientFunds,
			fmt.Sprintf("balance %s is below %s", balance, amount)).
			WithDetails("required", amount.String())
	}

	allowance, err := asset.Allowance(ctx, owner, e.cfg.EscrowHolder)
	if err != nil {
		return err
	}
	if allowance.LessThan(amount) {
		return errors.NewDomainError(errors.ErrInsufficientFunds,
			fmt.Sprintf("escrow allowance %s is below %s", allowance, amount)).
			WithDetails("required", amount.String())
	}

	if err := asset.TransferFrom(ctx, e.cfg.EscrowHolder, owner, e.cfg.EscrowHolder, amount); err != nil {
		return transferError(err)
	}
	return nil
}

// pay moves amount out of escrow to recipient.
func (e *escrowEngine) pay(ctx context.Context, asset interfaces.SettlementAsset, recipient common.Address, amount entities.Amount) error {
	if err := asset.Transfer(ctx, e.cfg.EscrowHolder, recipient, amount); err != nil {
		return transferError(err)
	}
	return nil
}

func transferError(err error) error {
	if stderrors.Is(err, errors.ErrInsufficientFunds) {
		return err
	}
	return errors.NewDomainError(errors.ErrTransferFailed, err.Error())
}

func (e *escrowEngine) issueClaimHash(
	ctx context.Context,
	referrals interfaces.ReferralRepository,
	referralID uint64,
	at time.Time,
) (common.Hash, error) {
	for attempt := 0; attempt < maxClaimHashAttempts; attempt++ {
		hash, err := e.claims.Generate(referralID, at)
		if err != nil {
			return common.Hash{}, err
		}
		exists, err := referrals.ExistsByClaimHash(ctx, hash)
		if err != nil {
			return common.Hash{}, err
		}
		if !exists {
			return hash, nil
		}
		e.logger.Warn("Claim hash collision, regenerating", "referral_id", referralID, "attempt", attempt+1)
	}
	return common.Hash{}, errors.NewDomainError(errors.ErrInternal, "could not issue a unique claim hash")
}

func (e *escrowEngine) validateCreateJob(params interfaces.CreateJobParams) error {
	if params.Bounty.IsZero() {
		return errors.NewDomainError(errors.ErrInvalidAmount, "bounty must be greater than zero")
	}

	verr := &errors.ValidationError{}
	checkPrincipal(verr, "creator", params.Creator, e.cfg.EscrowHolder)
	title := strings.TrimSpace(params.Title)
	if title == "" {
		verr.AddFieldError("title", "required")
	}
	if len(title) > maxTitleLength {
		verr.AddFieldError("title", fmt.Sprintf("must be at most %d characters", maxTitleLength))
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (e *escrowEngine) validateStake(params interfaces.StakeReferralParams) error {
	verr := &errors.ValidationError{}
	checkPrincipal(verr, "referrer", params.Referrer, e.cfg.EscrowHolder)
	pitch := strings.TrimSpace(params.Pitch)
	if pitch == "" {
		verr.AddFieldError("pitch", "required")
	}
	if len(pitch) > maxPitchLength {
		verr.AddFieldError("pitch", fmt.Sprintf("must be at most %d characters", maxPitchLength))
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

func checkPrincipal(verr *errors.ValidationError, field string, principal, escrowHolder common.Address) {
	switch principal {
	case common.Address{}:
		verr.AddFieldError(field, "required")
	case escrowHolder:
		verr.AddFieldError(field, "escrow holder cannot take part in jobs")
	}
}

// committed hands the events of a committed transaction to the listener.
func (e *escrowEngine) committed(events []entities.LedgerEvent) {
	if e.listener != nil && len(events) > 0 {
		e.listener.OnCommit(events)
	}
}

// finish records metrics and logs a failed operation.
func (e *escrowEngine) finish(operation string, start time.Time, err error, fields ...interface{}) {
	outcome := interfaces.OutcomeSuccess
	if err != nil {
		fields = append(fields, "operation", operation, "error", err)
		if errors.Classify(err) == errors.ClassInternal {
			outcome = interfaces.OutcomeError
			e.logger.Error("Ledger operation failed", fields...)
		} else {
			outcome = interfaces.OutcomeRejected
			e.logger.Warn("Ledger operation rejected", fields...)
		}
	}
	if e.metrics != nil {
		e.metrics.ObserveOperation(operation, outcome, time.Since(start))
	}
}

// recorder collects the outbox events appended inside one transaction.
type recorder struct {
	actor  common.Address
	now    time.Time
	events []entities.LedgerEvent
}

func newRecorder(actor common.Address, now time.Time) *recorder {
	return &recorder{actor: actor, now: now}
}

func (r *recorder) emit(
	ctx context.Context,
	uow interfaces.UnitOfWork,
	eventType entities.EventType,
	jobID, referralID uint64,
	payload entities.EventPayload,
) error {
	event := entities.LedgerEvent{
		Type:       eventType,
		JobID:      jobID,
		ReferralID: referralID,
		Actor:      r.actor,
		Payload:    payload,
		OccurredAt: r.now,
	}
	if err := uow.Events().Append(ctx, &event); err != nil {
		return err
	}
	r.events = append(r.events, event)
	return nil
}
