package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

const defaultReconcilePageSize = 200

// reconcileMirrorUseCase implements the ReconcileMirrorUseCase interface.
type reconcileMirrorUseCase struct {
	jobs      interfaces.JobRepository
	referrals interfaces.ReferralRepository
	store     interfaces.ReadStore
	logger    interfaces.Logger
	nowFn     func() time.Time
}

// NewReconcileMirrorUseCase creates a new reconcile use case.
func NewReconcileMirrorUseCase(
	jobs interfaces.JobRepository,
	referrals interfaces.ReferralRepository,
	store interfaces.ReadStore,
	logger interfaces.Logger,
) interfaces.ReconcileMirrorUseCase {
	return &reconcileMirrorUseCase{
		jobs:      jobs,
		referrals: referrals,
		store:     store,
		logger:    logger,
		nowFn:     time.Now,
	}
}

// Execute walks every ledger job and referral and overwrites projections that
// differ from the ledger. The ledger always wins. A mismatch is confirmed against
// a fresh read of the ledger row before anything is written, so a projection that
// sync advanced after the page was read is left alone.
func (uc *reconcileMirrorUseCase) Execute(
	ctx context.Context,
	params interfaces.ReconcileMirrorParams,
) (*interfaces.ReconcileMirrorResult, error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultReconcilePageSize
	}

	result := &interfaces.ReconcileMirrorResult{}
	if err := uc.reconcileJobs(ctx, pageSize, result); err != nil {
		return result, err
	}
	if err := uc.reconcileReferrals(ctx, pageSize, result); err != nil {
		return result, err
	}

	if result.JobsRepaired > 0 || result.ReferralsRepaired > 0 {
		uc.logger.Warn("Mirror drift repaired",
			"jobs_repaired", result.JobsRepaired,
			"referrals_repaired", result.ReferralsRepaired)
	}
	uc.logger.Info("Mirror reconciled",
		"jobs_checked", result.JobsChecked,
		"referrals_checked", result.ReferralsChecked)
	return result, nil
}

func (uc *reconcileMirrorUseCase) reconcileJobs(
	ctx context.Context,
	pageSize int,
	result *interfaces.ReconcileMirrorResult,
) error {
	var afterID uint64
	for {
		jobs, err := uc.jobs.FindPage(ctx, afterID, pageSize)
		if err != nil {
			return err
		}
		for i := range jobs {
			job := &jobs[i]
			afterID = job.ID
			result.JobsChecked++

			want, err := entities.NewJobProjection(job, uc.nowFn())
			if err != nil {
				return err
			}
			current, err := uc.store.GetJob(ctx, job.ID)
			if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
				return err
			}
			if current != nil && current.Matches(want) {
				continue
			}

			// The page may predate a commit that sync has already projected.
			// Only the current ledger row may overwrite the projection.
			fresh, err := uc.jobs.FindByID(ctx, job.ID)
			if err != nil {
				return err
			}
			if want, err = entities.NewJobProjection(fresh, uc.nowFn()); err != nil {
				return err
			}
			if current != nil && current.Matches(want) {
				continue
			}
			if err := uc.store.OverwriteJob(ctx, want); err != nil {
				return err
			}
			result.JobsRepaired++
		}
		if len(jobs) < pageSize {
			return nil
		}
	}
}

func (uc *reconcileMirrorUseCase) reconcileReferrals(
	ctx context.Context,
	pageSize int,
	result *interfaces.ReconcileMirrorResult,
) error {
	var afterID uint64
	for {
		referrals, err := uc.referrals.FindPage(ctx, afterID, pageSize)
		if err != nil {
			return err
		}
		for i := range referrals {
			referral := &referrals[i]
			afterID = referral.ID
			result.ReferralsChecked++

			want := entities.NewReferralProjection(referral, uc.nowFn())
			current, err := uc.store.GetReferral(ctx, referral.ID)
			if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
				return err
			}
			if current != nil && current.Matches(want) {
				continue
			}

			fresh, err := uc.referrals.FindByID(ctx, referral.ID)
			if err != nil {
				return err
			}
			want = entities.NewReferralProjection(fresh, uc.nowFn())
			if current != nil && current.Matches(want) {
				continue
			}
			if err := uc.store.OverwriteReferral(ctx, want); err != nil {
				return err
			}
			result.ReferralsRepaired++
		}
		if len(referrals) < pageSize {
			return nil
		}
	}
}
