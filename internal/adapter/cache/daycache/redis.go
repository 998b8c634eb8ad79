package daycache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/postcal-backend/internal/config"
)

// RedisKV stores day snapshots in one Redis hash per user.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV connects to Redis and pings it.
func NewRedisKV(ctx context.Context, cfg config.CacheConfig) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return &RedisKV{client: client}, nil
}

// HSet writes fields and refreshes the key TTL in one round trip.
func (r *RedisKV) HSet(ctx context.Context, key string, fields map[string][]byte, ttl time.Duration) error {
	values := make([]any, 0, len(fields)*2)
	for f, v := range fields {
		values = append(values, f, v)
	}
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, values...)
		if ttl > 0 {
			p.Expire(ctx, key, ttl)
		}
		return nil
	})
	return err
}

// HGet returns errMiss when the field is absent.
func (r *RedisKV) HGet(ctx context.Context, key, field string) ([]byte, error) {
	b, err := r.client.HGet(ctx, key, field).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errMiss
	}
	return b, err
}

// HGetAll returns every field of the hash; an absent key yields an empty map.
func (r *RedisKV) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return r.client.HGetAll(ctx, key).Result()
}

// Ping checks the connection; used by the health endpoint.
func (r *RedisKV) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (r *RedisKV) Close() error {
	return r.client.Close()
}
