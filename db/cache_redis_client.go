package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bike-dashboard/util/log"

	"github.com/go-redis/redis/v8"
)

// CacheRedisClient struct holds the Redis client and context
type CacheRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewCacheRedisClient wraps client and checks the connection.
func NewCacheRedisClient(ctx context.Context, client *redis.Client) (*CacheRedisClient, error) {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	log.Infof("[CacheRedisClient] Connected to Redis at %s", client.Options().Addr)

	return &CacheRedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

// Set sets a key-value pair in Redis; a zero ttl never expires.
func (r *CacheRedisClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *CacheRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

func (r *CacheRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *CacheRedisClient) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(r.ctx, keys...).Err()
}

func (r *CacheRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *CacheRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *CacheRedisClient) Close() error {
	return r.client.Close()
}
