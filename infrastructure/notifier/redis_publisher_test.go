package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
)

type fakePublisherClient struct {
	channel string
	message []byte
	err     error
}

func (f *fakePublisherClient) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message, _ = message.([]byte)
	return redis.NewIntResult(1, f.err)
}

func TestRedisPublisher_Publish(t *testing.T) {
	client := &fakePublisherClient{}
	publisher := NewRedisPublisher(client, "")

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err := publisher.Publish(context.Background(), entities.LedgerEvent{
		Sequence:   12,
		Type:       entities.EventFundsDistributed,
		JobID:      4,
		ReferralID: 9,
		OccurredAt: at,
		Payload: entities.EventPayload{
			Job: &entities.Job{ID: 4, State: entities.JobStateClosed},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultProjectionChannel, client.channel)

	var change map[string]interface{}
	require.NoError(t, json.Unmarshal(client.message, &change))
	assert.Equal(t, "funds.distributed", change["type"])
	assert.Equal(t, float64(12), change["sequence"])
	assert.Equal(t, float64(9), change["referral_id"])
	assert.Equal(t, "closed", change["job_state"])
}

func TestRedisPublisher_Error(t *testing.T) {
	client := &fakePublisherClient{err: errors.New("connection refused")}
	publisher := NewRedisPublisher(client, "ledger")

	err := publisher.Publish(context.Background(), entities.LedgerEvent{Type: entities.EventJobCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis publish ledger")
	assert.Equal(t, "ledger", client.channel)
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-url")
	assert.Error(t, err)
}
