// Package realtime pushes site updates over redis pub/sub so UI clients can
// refresh without polling. Delivery is best-effort; a failed publish never
// affects the monitoring pipeline.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/model"
)

type Publisher interface {
	Publish(ctx context.Context, ev model.SiteUpdatedEvent) error
}

type redisPublisher struct {
	client  *redis.Client
	channel string
}

func (p *redisPublisher) Publish(ctx context.Context, ev model.SiteUpdatedEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("RedisPublisher.Publish: %w", err)
	}
	if err = p.client.Publish(ctx, p.channel, b).Err(); err != nil {
		return fmt.Errorf("RedisPublisher.Publish: %w", err)
	}
	return nil
}

func NewRedisPublisher(client *redis.Client, channel string) Publisher {
	return &redisPublisher{
		client:  client,
		channel: channel,
	}
}
