package levelstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Reforge_Go/internal/domain"
)

// CachedStore fronts a database-backed Store with an expiring LRU of
// single-record lookups. Writes go through to the backing store first and
// only update the cache once they succeed.
type CachedStore struct {
	next Store
	lru  *expirable.LRU[string, int]
}

// NewCached wraps next. Non-positive size or ttl fall back to the defaults.
func NewCached(next Store, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		next: next,
		lru:  expirable.NewLRU[string, int](size, nil, ttl),
	}
}

func cacheKey(player uuid.UUID, itemID string) string {
	return player.String() + CacheKeySep + domain.CanonicalItemID(itemID)
}

func (c *CachedStore) Get(ctx context.Context, player uuid.UUID, itemID string) (int, error) {
	key := cacheKey(player, itemID)
	if level, ok := c.lru.Get(key); ok {
		return level, nil
	}

	level, err := c.next.Get(ctx, player, itemID)
	if err != nil {
		return 0, err
	}
	c.lru.Add(key, level)
	return level, nil
}

func (c *CachedStore) Set(ctx context.Context, player uuid.UUID, itemID string, level int) error {
	key := cacheKey(player, itemID)
	if err := c.next.Set(ctx, player, itemID, level); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, level)
	return nil
}

func (c *CachedStore) Remove(ctx context.Context, player uuid.UUID, itemID string) error {
	key := cacheKey(player, itemID)
	c.lru.Remove(key)
	return c.next.Remove(ctx, player, itemID)
}

// GetAll always reads through; the cache only holds single records.
func (c *CachedStore) GetAll(ctx context.Context, player uuid.UUID) (map[string]int, error) {
	return c.next.GetAll(ctx, player)
}

func (c *CachedStore) Close() error {
	c.lru.Purge()
	return c.next.Close()
}
