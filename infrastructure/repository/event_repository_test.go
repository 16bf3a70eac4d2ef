package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
	"talent-stake/infrastructure/repository"
	"talent-stake/test/helpers"
)

func TestEventRepository_Outbox(t *testing.T) {
	ctx := helpers.TestContext(t)
	repo := repository.NewEventRepository(helpers.OpenTestDB(t))
	actor := helpers.RandomAddress()

	job := &entities.Job{ID: 1, Creator: actor, Title: "SRE", InitialBounty: helpers.Amount(900), State: entities.JobStateOpen, Version: 1}
	events := []*entities.LedgerEvent{
		{Type: entities.EventJobCreated, JobID: 1, Actor: actor, Payload: entities.EventPayload{Job: job}, OccurredAt: time.Now()},
		{Type: entities.EventReferralStaked, JobID: 1, ReferralID: 1, Actor: actor, OccurredAt: time.Now()},
		{Type: entities.EventJobCreated, JobID: 2, Actor: actor, OccurredAt: time.Now()},
	}
	for _, e := range events {
		require.NoError(t, repo.Append(ctx, e))
		assert.NotEmpty(t, e.EventID)
	}
	assert.Less(t, events[0].Sequence, events[1].Sequence)
	assert.Less(t, events[1].Sequence, events[2].Sequence)

	pending, err := repo.ListPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, events[0].Sequence, pending[0].Sequence)
	assert.Equal(t, entities.EventJobCreated, pending[0].Type)
	assert.Equal(t, actor, pending[0].Actor)
	require.NotNil(t, pending[0].Payload.Job)
	assert.Equal(t, helpers.Amount(900), pending[0].Payload.Job.InitialBounty)

	require.NoError(t, repo.MarkProjected(ctx, []uint64{pending[0].Sequence, pending[1].Sequence}, time.Now()))

	count, err := repo.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, uint64(2), pending[0].JobID)

	history, err := repo.FindByJob(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.NotNil(t, history[0].ProjectedAt)
	assert.Equal(t, entities.EventReferralStaked, history[1].Type)
}
