// Package cache holds the Redis-backed cache for type-filtered wallet item lookups.
//
// Entries are namespaced by a generation number stored in Redis. InvalidateAll bumps
// the generation with a single INCR, which makes every existing entry unreachable at
// once; stale entries then age out through their TTL. A reader that loaded rows before
// a write but stores them after the bump writes under the old generation, so the stale
// result is never served.
package cache

import (
	"context"
	"fmt"
	"time"

	"wallet_ledger/internal/domain"
	"wallet_ledger/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	keyPrefix     = "wallet-item:type"
	generationKey = keyPrefix + ":generation"
	defaultTTL    = 10 * time.Minute
)

// ItemsFunc loads the items to cache on a miss
type ItemsFunc func(ctx context.Context) ([]domain.WalletItem, error)

// TypeCache caches wallet items per (wallet, type) pair
type TypeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTypeCache creates a TypeCache; a non-positive ttl falls back to ten minutes
func NewTypeCache(rdb *redis.Client, ttl time.Duration) *TypeCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &TypeCache{rdb: rdb, ttl: ttl}
}

// GetOrCompute returns the cached items for the pair, calling compute and storing its
// result on a miss. Redis failures on this path degrade to an uncached read.
func (c *TypeCache) GetOrCompute(ctx context.Context, walletID uint, t domain.ItemType, compute ItemsFunc) ([]domain.WalletItem, error) {
	gen, err := utils.Counter(ctx, c.rdb, generationKey)
	if err != nil {
		logrus.WithError(err).Warn("type cache unavailable, reading from storage")
		return compute(ctx)
	}

	key := entryKey(gen, walletID, t)
	items, found, err := utils.CacheGet[[]domain.WalletItem](ctx, c.rdb, key)
	if err == nil && found {
		return items, nil
	}

	items, err = compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := utils.CacheSet(ctx, c.rdb, key, items, c.ttl); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("failed to populate type cache")
	}
	return items, nil
}

// InvalidateAll drops every cached entry for every wallet and type
func (c *TypeCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("invalidate type cache: %w", err)
	}
	return nil
}

func entryKey(gen int64, walletID uint, t domain.ItemType) string {
	return fmt.Sprintf("%s:%d:%d:%s", keyPrefix, gen, walletID, t)
}
