package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nuamx/internal/config"
	"nuamx/internal/domain"
	"nuamx/internal/port"
)

// RedisPublisher publishes rating events to a Redis channel. The client
// reconnects on its own; a broker outage only costs the events published
// while it lasts.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher and verifies broker connectivity.
func NewRedisPublisher(cfg *config.EventsConfig) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("events.NewRedisPublisher: connecting to %s: %w", cfg.Addr(), err)
	}

	return &RedisPublisher{client: client, channel: cfg.Channel}, nil
}

// NewRedisPublisherWithClient wraps an existing client, for tests and for
// sharing a connection across components.
func NewRedisPublisherWithClient(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event domain.RatingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events.RedisPublisher: marshaling event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("events.RedisPublisher: publishing to %s: %w", p.channel, err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

var _ port.EventPublisher = (*RedisPublisher)(nil)
