package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the shared Redis cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Prefix   string
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedis connects to Redis and verifies the connection with PING.
func NewRedis(ctx context.Context, cfg RedisConfig) (Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisCache{client: rdb, ttl: cfg.TTL, prefix: cfg.Prefix}, nil
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Set stores value with the configured TTL plus up to ±10% jitter so entries
// written together do not expire together.
func (r *redisCache) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefix+key, value, jitter(r.ttl)).Err()
}

func (r *redisCache) Close() error {
	return r.client.Close()
}

func jitter(base time.Duration) time.Duration {
	if base < 10 {
		return base
	}
	j := time.Duration(rand.Int63n(int64(base/5)) - int64(base/10))
	if d := base + j; d > 0 {
		return d
	}
	return base
}
