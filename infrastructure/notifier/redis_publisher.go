package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"talent-stake/domain/entities"
	"talent-stake/domain/interfaces"
)

// DefaultProjectionChannel is the Redis channel projection changes are published on.
const DefaultProjectionChannel = "talent-stake.projections"

// PublisherClient is the part of a Redis client the publisher needs.
type PublisherClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// projectionChange is the message UI subscribers receive.
type projectionChange struct {
	Type       entities.EventType `json:"type"`
	Sequence   uint64             `json:"sequence"`
	JobID      uint64             `json:"job_id"`
	ReferralID uint64             `json:"referral_id,omitempty"`
	JobState   entities.JobState  `json:"job_state,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// redisPublisher implements the ProjectionPublisher interface over Redis pub/sub.
type redisPublisher struct {
	client  PublisherClient
	channel string
}

// NewRedisPublisher creates a publisher on channel. An empty channel uses the default.
func NewRedisPublisher(client PublisherClient, channel string) interfaces.ProjectionPublisher {
	if channel == "" {
		channel = DefaultProjectionChannel
	}
	return &redisPublisher{client: client, channel: channel}
}

// Publish announces a projected ledger event.
func (p *redisPublisher) Publish(ctx context.Context, event entities.LedgerEvent) error {
	change := projectionChange{
		Type:       event.Type,
		Sequence:   event.Sequence,
		JobID:      event.JobID,
		ReferralID: event.ReferralID,
		OccurredAt: event.OccurredAt,
	}
	if event.Payload.Job != nil {
		change.JobState = event.Payload.Job.State
	}

	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal projection change: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	return nil
}

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}
