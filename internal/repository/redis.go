package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/election_monitoring/internal/store"
)

// RedisStorage хранит значения в Redis без срока жизни
type RedisStorage struct {
	redisClient *redis.Client
	prefix      string
}

func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{
		redisClient: client,
		prefix:      prefix,
	}
}

func (r *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := r.redisClient.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return val, nil
}

func (r *RedisStorage) Save(ctx context.Context, key string, value []byte) error {
	if err := r.redisClient.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}
