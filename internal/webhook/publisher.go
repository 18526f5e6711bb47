package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/election_monitoring/internal/models"
)

const (
	eventQueueKey = "store_events"
)

// RedisPublisher - реализация store.Notifier, складывающая события в очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
	queueKey    string
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
		queueKey:    eventQueueKey,
	}
}

// Notify публикует событие в очередь Redis
func (p *RedisPublisher) Notify(ctx context.Context, event models.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, p.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event to Redis: %w", err)
	}
	return nil
}
