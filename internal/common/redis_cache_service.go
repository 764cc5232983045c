package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"odr-lab/platform/internal/logging"
)

// RedisCacheService implements CacheInterface on Redis, for deployments
// running more than one instance of the API.
type RedisCacheService struct {
	client *redis.Client
	ctx    context.Context
}

var _ CacheInterface = (*RedisCacheService)(nil)

// NewRedisCacheService connects to the Redis instance named by url
// (redis://... form) and verifies the connection before returning.
func NewRedisCacheService(url string) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCacheService{client: client, ctx: ctx}, nil
}

func (r *RedisCacheService) Set(key string, value []byte, duration time.Duration) {
	if err := r.client.Set(r.ctx, key, value, duration).Err(); err != nil {
		logging.Warn("Redis cache set failed", "key", key, "error", err.Error())
	}
}

func (r *RedisCacheService) Get(key string) ([]byte, bool) {
	data, err := r.client.Get(r.ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logging.Warn("Redis cache get failed", "key", key, "error", err.Error())
		return nil, false
	}
	return data, true
}

func (r *RedisCacheService) Delete(key string) {
	if err := r.client.Del(r.ctx, key).Err(); err != nil {
		logging.Warn("Redis cache delete failed", "key", key, "error", err.Error())
	}
}

func (r *RedisCacheService) Close() error {
	return r.client.Close()
}
