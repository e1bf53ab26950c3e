package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache shares cached values across instances. Backend errors degrade to misses.
type RedisCache struct {
	client    *redis.Client
	logger    *slog.Logger
	keyPrefix string
	ttl       time.Duration
}

func NewRedisCache(ctx context.Context, logger *slog.Logger, cfg RedisConfig, keyPrefix string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisCacheWithClient(logger, client, keyPrefix, ttl), nil
}

func NewRedisCacheWithClient(logger *slog.Logger, client *redis.Client, keyPrefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client:    client,
		logger:    logger.With(slog.String("cache", "redis")),
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("failed to read from cache", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write to cache", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
