package caching

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisEngine struct {
	client redis.UniversalClient
}

func (e *RedisEngine) Store(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return e.client.Set(ctx, key, value, ttl).Err()
}

func (e *RedisEngine) Fetch(ctx context.Context, key string) ([]byte, error) {
	value, err := e.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}

	return value, err
}
