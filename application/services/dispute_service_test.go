package services

import (
	stderrors "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
	"talent-stake/infrastructure/logger"
	"talent-stake/test/helpers"
	"talent-stake/test/mocks"
)

func TestDisputeService_RecordDispute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLedgerFixture(t)
	creator := helpers.RandomAddress()
	referrer := helpers.RandomAddress()
	candidate := helpers.RandomAddress()
	job := f.openJob(creator)
	referral := f.stake(job.ID, referrer)
	f.claim(referral.ClaimHash, candidate)

	notifier := mocks.NewMockNotifier(ctrl)
	service := NewDisputeService(f.txm, notifier, logger.NewNopLogger())

	t.Run("participant opens a dispute", func(t *testing.T) {
		notifier.EXPECT().IsConfigured().Return(true)
		notifier.EXPECT().
			NotifyDispute(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, d *entities.Dispute, j *entities.Job) error {
				assert.Equal(t, job.ID, j.ID)
				assert.Equal(t, referrer, d.Target)
				return nil
			})

		dispute, err := service.RecordDispute(f.ctx, interfaces.RecordDisputeParams{
			JobID:    job.ID,
			Reporter: candidate,
			Target:   referrer,
			Reason:   "  referral was never discussed with me ",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, dispute.ID)
		assert.Equal(t, entities.DisputeStatusOpen, dispute.Status)
		assert.Equal(t, "referral was never discussed with me", dispute.Reason)

		disputes, err := service.ListDisputes(f.ctx, job.ID)
		require.NoError(t, err)
		require.Len(t, disputes, 1)
		assert.Equal(t, dispute.ID, disputes[0].ID)
	})

	t.Run("alert failure does not fail the dispute", func(t *testing.T) {
		notifier.EXPECT().IsConfigured().Return(true)
		notifier.EXPECT().
			NotifyDispute(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(stderrors.New("slack down"))

		_, err := service.RecordDispute(f.ctx, interfaces.RecordDisputeParams{
			JobID:    job.ID,
			Reporter: creator,
			Target:   candidate,
			Reason:   "no show",
		})
		require.NoError(t, err)
	})

	t.Run("outsider cannot open a dispute", func(t *testing.T) {
		_, err := service.RecordDispute(f.ctx, interfaces.RecordDisputeParams{
			JobID:    job.ID,
			Reporter: helpers.RandomAddress(),
			Target:   creator,
			Reason:   "spam",
		})
		assert.ErrorIs(t, err, errors.ErrUnauthorized)
	})

	t.Run("target must take part in the job", func(t *testing.T) {
		_, err := service.RecordDispute(f.ctx, interfaces.RecordDisputeParams{
			JobID:    job.ID,
			Reporter: creator,
			Target:   helpers.RandomAddress(),
			Reason:   "spam",
		})
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("reporter and target differ", func(t *testing.T) {
		_, err := service.RecordDispute(f.ctx, interfaces.RecordDisputeParams{
			JobID:    job.ID,
			Reporter: creator,
			Target:   creator,
			Reason:   "spam",
		})
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := service.ListDisputes(f.ctx, job.ID+10)
		assert.ErrorIs(t, err, errors.ErrJobNotFound)
	})
}
