package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher publishes events onto a redis pub/sub channel so other
// processes (workers, audit consumers) can observe back-office mutations.
// Fire-and-forget: redis pub/sub delivers to currently connected subscribers
// only, which matches the "published once, after local success" contract.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher writing to the given channel.
func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: channel}
}

// Publish marshals the event to JSON and publishes it.
func (p *RedisPublisher) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
