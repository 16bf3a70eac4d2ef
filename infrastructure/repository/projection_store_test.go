package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/infrastructure/repository"
	"talent-stake/test/helpers"
)

func jobProjection(version uint64, state entities.JobState) entities.JobProjection {
	return entities.JobProjection{
		JobID:           1,
		Creator:         helpers.RandomAddress(),
		Title:           "Mobile engineer",
		InitialBounty:   helpers.Amount(1_000),
		AccumulatedSpam: helpers.Amount(100 * version),
		TotalPot:        helpers.Amount(1_000 + 100*version),
		State:           state,
		Version:         version,
		CreatedAt:       time.Now().UTC(),
		SyncedAt:        time.Now().UTC(),
	}
}

func TestProjectionStore_UpsertJobKeepsNewest(t *testing.T) {
	ctx := helpers.TestContext(t)
	store := repository.NewProjectionStore(helpers.OpenTestDB(t))

	_, err := store.GetJob(ctx, 1)
	assert.ErrorIs(t, err, errors.ErrNotFound)

	v2 := jobProjection(2, entities.JobStateOpen)
	changed, err := store.UpsertJob(ctx, v2)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = store.UpsertJob(ctx, v2)
	require.NoError(t, err)
	assert.False(t, changed, "identical projection")

	changed, err = store.UpsertJob(ctx, jobProjection(1, entities.JobStateOpen))
	require.NoError(t, err)
	assert.False(t, changed, "older version")

	stored, err := store.GetJob(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stored.Version)
	assert.Equal(t, helpers.Amount(1_200), stored.TotalPot)

	v3 := jobProjection(3, entities.JobStateClosed)
	closedAt := time.Now().UTC()
	v3.ClosedAt = &closedAt
	changed, err = store.UpsertJob(ctx, v3)
	require.NoError(t, err)
	assert.True(t, changed)

	stored, err = store.GetJob(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.JobStateClosed, stored.State)
	require.NotNil(t, stored.ClosedAt)
}

func TestProjectionStore_OverwriteIgnoresVersion(t *testing.T) {
	ctx := helpers.TestContext(t)
	store := repository.NewProjectionStore(helpers.OpenTestDB(t))

	_, err := store.UpsertJob(ctx, jobProjection(5, entities.JobStateClosed))
	require.NoError(t, err)

	require.NoError(t, store.OverwriteJob(ctx, jobProjection(2, entities.JobStateOpen)))

	stored, err := store.GetJob(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stored.Version)
	assert.Equal(t, entities.JobStateOpen, stored.State)
}

func TestProjectionStore_Referrals(t *testing.T) {
	ctx := helpers.TestContext(t)
	store := repository.NewProjectionStore(helpers.OpenTestDB(t))
	candidate := helpers.RandomAddress()

	for id := uint64(1); id <= 2; id++ {
		changed, err := store.UpsertReferral(ctx, entities.ReferralProjection{
			ReferralID:  id,
			JobID:       7,
			Referrer:    helpers.RandomAddress(),
			StakeAmount: helpers.Amount(500),
			State:       entities.ReferralStatePendingClaim,
			ClaimHash:   helpers.RandomHash(),
			Version:     1,
			CreatedAt:   time.Now().UTC(),
			SyncedAt:    time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.True(t, changed)
	}

	first, err := store.GetReferral(ctx, 1)
	require.NoError(t, err)
	first.Candidate = &candidate
	first.State = entities.ReferralStateSubmitted
	first.Version = 2
	changed, err := store.UpsertReferral(ctx, *first)
	require.NoError(t, err)
	assert.True(t, changed)

	referrals, err := store.ListReferralsByJob(ctx, 7)
	require.NoError(t, err)
	require.Len(t, referrals, 2)
	assert.Equal(t, uint64(1), referrals[0].ReferralID)
	require.NotNil(t, referrals[0].Candidate)
	assert.Equal(t, candidate, *referrals[0].Candidate)
	assert.Nil(t, referrals[1].Candidate)

	_, err = store.GetReferral(ctx, 3)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
