package crafting

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
)

// cachedSourcesEntry wraps located sources with version metadata for cache invalidation
type cachedSourcesEntry struct {
	Version  string
	Sources  []domain.MonsterSources
	CachedAt time.Time
}

// sourceCache is shared by every expansion so that an ingredient needed by several
// wish-list items is located once.
type sourceCache struct {
	lru *expirable.LRU[domain.ItemID, *cachedSourcesEntry]
}

func newSourceCache(size int, ttl time.Duration) *sourceCache {
	return &sourceCache{
		lru: expirable.NewLRU[domain.ItemID, *cachedSourcesEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached sources when present and written with the current schema version.
func (c *sourceCache) Get(itemID domain.ItemID) ([]domain.MonsterSources, bool) {
	entry, found := c.lru.Get(itemID)
	if !found {
		return nil, false
	}
	if entry.Version != SourceCacheSchemaVersion {
		c.lru.Remove(itemID)
		return nil, false
	}
	return cloneSources(entry.Sources), true
}

func (c *sourceCache) Set(itemID domain.ItemID, sources []domain.MonsterSources) {
	c.lru.Add(itemID, &cachedSourcesEntry{
		Version:  SourceCacheSchemaVersion,
		Sources:  cloneSources(sources),
		CachedAt: time.Now(),
	})
}

func (c *sourceCache) Len() int {
	return c.lru.Len()
}

func (c *sourceCache) Clear() {
	c.lru.Purge()
}
