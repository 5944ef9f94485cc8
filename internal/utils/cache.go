package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // Entries are stored as JSON
	"errors"        // Sentinel comparison
	"fmt"           // Error wrapping
	"time"          // Entry lifetimes

	"github.com/redis/go-redis/v9" // Redis client
)

// CacheGet loads the JSON entry at key into a T. ok is false when the key is absent.
func CacheGet[T any](ctx context.Context, rdb redis.Cmdable, key string) (v T, ok bool, err error) {
	b, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil // Miss
	}
	if err != nil {
		return v, false, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	return v, true, nil
}

// CacheSet stores v as JSON under key for ttl
func CacheSet[T any](ctx context.Context, rdb redis.Cmdable, key string, v T, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

// Counter reads an integer key bumped with INCR. A missing key reads as zero.
func Counter(ctx context.Context, rdb redis.Cmdable, key string) (int64, error) {
	n, err := rdb.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
