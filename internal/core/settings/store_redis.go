// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// RedisCache implements [Cache] on go-redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed settings cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get implements [Cache]. A redis.Nil reply is a miss, not an error.
func (cache *RedisCache) Get(context context.Context, key string) ([]byte, bool, error) {
	value, err := cache.client.Get(context, constants.RedisPrefixSettings+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_settings_get_failed: %w", err)
	}
	return value, true, nil
}

// Set implements [Cache].
func (cache *RedisCache) Set(context context.Context, key string, value []byte, ttl time.Duration) error {
	if err := cache.client.Set(context, constants.RedisPrefixSettings+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis_settings_set_failed: %w", err)
	}
	return nil
}

// Delete implements [Cache].
func (cache *RedisCache) Delete(context context.Context, key string) error {
	if err := cache.client.Del(context, constants.RedisPrefixSettings+key).Err(); err != nil {
		return fmt.Errorf("redis_settings_delete_failed: %w", err)
	}
	return nil
}
