package repository_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
	"talent-stake/infrastructure/repository"
	"talent-stake/test/helpers"
)

func newReferral(t *testing.T, ctx context.Context, repo interfaces.ReferralRepository, jobID uint64) *entities.Referral {
	t.Helper()
	id, err := repo.NextID(ctx)
	require.NoError(t, err)

	referral := &entities.Referral{
		ID:          id,
		JobID:       jobID,
		Referrer:    helpers.RandomAddress(),
		Pitch:       "Led the payments team",
		StakeAmount: helpers.Amount(500_000),
		State:       entities.ReferralStatePendingClaim,
		ClaimHash:   helpers.RandomHash(),
		Version:     1,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, referral))
	return referral
}

func TestReferralRepository_Lifecycle(t *testing.T) {
	ctx := helpers.TestContext(t)
	repo := repository.NewReferralRepository(helpers.OpenTestDB(t))

	first := newReferral(t, ctx, repo, 1)
	second := newReferral(t, ctx, repo, 1)
	other := newReferral(t, ctx, repo, 2)
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)
	assert.Equal(t, uint64(3), other.ID)

	found, err := repo.FindByClaimHash(ctx, second.ClaimHash)
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
	assert.Nil(t, found.Candidate)

	_, err = repo.FindByClaimHash(ctx, helpers.RandomHash())
	assert.ErrorIs(t, err, errors.ErrClaimNotFound)

	exists, err := repo.ExistsByClaimHash(ctx, first.ClaimHash)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForReferrer(ctx, 1, first.Referrer)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsForReferrer(ctx, 2, first.Referrer)
	require.NoError(t, err)
	assert.False(t, exists)

	candidate := helpers.RandomAddress()
	require.NoError(t, first.TransitionTo(entities.ReferralStateSubmitted, time.Now()))
	first.Candidate = &candidate
	require.NoError(t, repo.Update(ctx, first))

	require.NoError(t, second.TransitionTo(entities.ReferralStateSubmitted, time.Now()))
	require.NoError(t, second.TransitionTo(entities.ReferralStateSpam, time.Now()))
	require.NoError(t, repo.Update(ctx, second))

	inFlight, err := repo.FindInFlightByJob(ctx, 1)
	require.NoError(t, err)
	require.Len(t, inFlight, 1)
	assert.Equal(t, first.ID, inFlight[0].ID)
	require.NotNil(t, inFlight[0].Candidate)
	assert.Equal(t, candidate, *inFlight[0].Candidate)
	assert.Equal(t, entities.ReferralStateSubmitted, inFlight[0].State)

	reloaded, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ReferralStateSpam, reloaded.State)
	assert.NotNil(t, reloaded.DecidedAt)

	page, err := repo.FindPage(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint64(2), page[0].ID)

	byReferrer, err := repo.FindByReferrer(ctx, other.Referrer)
	require.NoError(t, err)
	require.Len(t, byReferrer, 1)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, errors.ErrReferralNotFound)
}

func TestReferralRepository_ClaimHashIsUnique(t *testing.T) {
	ctx := helpers.TestContext(t)
	repo := repository.NewReferralRepository(helpers.OpenTestDB(t))

	existing := newReferral(t, ctx, repo, 1)
	duplicate := &entities.Referral{
		ID:          42,
		JobID:       1,
		Referrer:    helpers.RandomAddress(),
		StakeAmount: helpers.Amount(1),
		State:       entities.ReferralStatePendingClaim,
		ClaimHash:   existing.ClaimHash,
		Version:     1,
		CreatedAt:   time.Now(),
	}

	err := repo.Create(ctx, duplicate)
	var repoErr *errors.RepositoryError
	require.True(t, stderrors.As(err, &repoErr))
	assert.Equal(t, "Create", repoErr.Operation)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := helpers.TestContext(t)
	db := helpers.OpenTestDB(t)
	txm := repository.NewTransactionManager(db)
	owner := helpers.RandomAddress()
	boom := stderrors.New("boom")

	err := txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		if err := uow.Settlement().Mint(ctx, owner, helpers.Amount(10)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = txm.WithinTransaction(ctx, func(uow interfaces.UnitOfWork) error {
		return uow.Settlement().Mint(ctx, owner, helpers.Amount(7))
	})
	require.NoError(t, err)

	balance, err := repository.NewSettlementLedger(db).BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, helpers.Amount(7), balance)
}
