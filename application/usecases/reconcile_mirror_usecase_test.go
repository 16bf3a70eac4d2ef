package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
	"talent-stake/test/helpers"
	"talent-stake/test/mocks"
)

func ledgerJob(id uint64) entities.Job {
	return entities.Job{
		ID:            id,
		Creator:       helpers.RandomAddress(),
		Title:         "Platform engineer",
		InitialBounty: entities.NewAmount(5_000_000),
		State:         entities.JobStateOpen,
		Version:       1,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestReconcileMirrorUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	mockReferrals := mocks.NewMockReferralRepository(ctrl)
	mockStore := mocks.NewMockReadStore(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	useCase := NewReconcileMirrorUseCase(mockJobs, mockReferrals, mockStore, mockLogger)
	ctx := context.Background()

	t.Run("overwrites drifted and missing projections", func(t *testing.T) {
		inSync := ledgerJob(1)
		missing := ledgerJob(2)
		referral := entities.Referral{
			ID:          1,
			JobID:       1,
			Referrer:    helpers.RandomAddress(),
			StakeAmount: entities.NewAmount(500_000),
			State:       entities.ReferralStateSubmitted,
			ClaimHash:   helpers.RandomHash(),
			Version:     2,
			CreatedAt:   time.Now().UTC(),
		}

		current, err := entities.NewJobProjection(&inSync, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		stale := entities.NewReferralProjection(&referral, time.Now().Add(-time.Hour))
		stale.Version = 1
		stale.State = entities.ReferralStatePendingClaim

		mockJobs.EXPECT().FindPage(ctx, uint64(0), 2).Return([]entities.Job{inSync, missing}, nil)
		mockJobs.EXPECT().FindPage(ctx, uint64(2), 2).Return(nil, nil)
		mockStore.EXPECT().GetJob(ctx, uint64(1)).Return(&current, nil)
		mockStore.EXPECT().GetJob(ctx, uint64(2)).Return(nil, errors.ErrNotFound)
		mockJobs.EXPECT().FindByID(ctx, uint64(2)).Return(&missing, nil)
		mockStore.EXPECT().OverwriteJob(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.JobProjection) error {
				assert.Equal(t, uint64(2), p.JobID)
				assert.Equal(t, entities.NewAmount(5_000_000), p.TotalPot)
				return nil
			})

		mockReferrals.EXPECT().FindPage(ctx, uint64(0), 2).Return([]entities.Referral{referral}, nil)
		mockStore.EXPECT().GetReferral(ctx, uint64(1)).Return(&stale, nil)
		mockReferrals.EXPECT().FindByID(ctx, uint64(1)).Return(&referral, nil)
		mockStore.EXPECT().OverwriteReferral(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ReferralProjection) error {
				assert.Equal(t, uint64(2), p.Version)
				assert.Equal(t, entities.ReferralStateSubmitted, p.State)
				return nil
			})

		result, err := useCase.Execute(ctx, interfaces.ReconcileMirrorParams{PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, &interfaces.ReconcileMirrorResult{
			JobsChecked:       2,
			JobsRepaired:      1,
			ReferralsChecked:  1,
			ReferralsRepaired: 1,
		}, result)
	})

	t.Run("projection advanced after the page was read is kept", func(t *testing.T) {
		pageJob := ledgerJob(4)
		closedAt := time.Now().UTC()
		ledgerNow := pageJob
		ledgerNow.State = entities.JobStateClosed
		ledgerNow.Version = 2
		ledgerNow.ClosedAt = &closedAt

		advanced, err := entities.NewJobProjection(&ledgerNow, time.Now())
		require.NoError(t, err)

		mockJobs.EXPECT().FindPage(ctx, uint64(0), defaultReconcilePageSize).Return([]entities.Job{pageJob}, nil)
		mockStore.EXPECT().GetJob(ctx, uint64(4)).Return(&advanced, nil)
		mockJobs.EXPECT().FindByID(ctx, uint64(4)).Return(&ledgerNow, nil)
		mockReferrals.EXPECT().FindPage(ctx, uint64(0), defaultReconcilePageSize).Return(nil, nil)

		result, err := useCase.Execute(ctx, interfaces.ReconcileMirrorParams{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.JobsChecked)
		assert.Equal(t, 0, result.JobsRepaired)
	})

	t.Run("ledger read failure aborts before overwriting", func(t *testing.T) {
		job := ledgerJob(5)
		dbErr := stderrors.New("database is locked")

		mockJobs.EXPECT().FindPage(ctx, uint64(0), defaultReconcilePageSize).Return([]entities.Job{job}, nil)
		mockStore.EXPECT().GetJob(ctx, uint64(5)).Return(nil, errors.ErrNotFound)
		mockJobs.EXPECT().FindByID(ctx, uint64(5)).Return(nil, dbErr)

		_, err := useCase.Execute(ctx, interfaces.ReconcileMirrorParams{})
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("read store failure aborts", func(t *testing.T) {
		job := ledgerJob(3)
		storeErr := stderrors.New("connection reset")

		mockJobs.EXPECT().FindPage(ctx, uint64(0), defaultReconcilePageSize).Return([]entities.Job{job}, nil)
		mockStore.EXPECT().GetJob(ctx, uint64(3)).Return(nil, storeErr)

		result, err := useCase.Execute(ctx, interfaces.ReconcileMirrorParams{})
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, 1, result.JobsChecked)
		assert.Equal(t, 0, result.JobsRepaired)
	})
}
