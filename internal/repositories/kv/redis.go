package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis store
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix is prepended to every key, e.g. "dutch:"
	KeyPrefix string
}

// redisStore implements the Store interface using Redis
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a new Redis-backed store
func NewRedis(cfg *Config) (*redisStore, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
		prefix: cfg.KeyPrefix,
	}, nil
}

// Get returns the value stored under key
func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("key cannot be empty")
	}

	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

// Set stores value under key with no expiration
func (r *redisStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

// Remove deletes key
func (r *redisStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	return nil
}
