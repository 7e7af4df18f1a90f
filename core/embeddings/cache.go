package embeddings

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the token-vector cache. Stemmed debate corpora
// repeat a small vocabulary heavily, so even a modest cache absorbs most
// lookups.
const DefaultCacheSize = 8192

// cacheEntry memoizes misses as well as hits so out-of-vocabulary tokens
// don't hit the model on every occurrence.
type cacheEntry struct {
	vec []float32
	ok  bool
}

// CachedLookup wraps a Lookup with an LRU cache.
type CachedLookup struct {
	inner Lookup
	cache *lru.Cache[string, cacheEntry]
}

// NewCachedLookup returns a caching wrapper around inner. size <= 0 uses
// DefaultCacheSize.
func NewCachedLookup(inner Lookup, size int) (*CachedLookup, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &CachedLookup{inner: inner, cache: cache}, nil
}

func (c *CachedLookup) Vector(token string) ([]float32, bool) {
	if entry, hit := c.cache.Get(token); hit {
		return entry.vec, entry.ok
	}
	vec, ok := c.inner.Vector(token)
	c.cache.Add(token, cacheEntry{vec: vec, ok: ok})
	return vec, ok
}

func (c *CachedLookup) Dim() int {
	return c.inner.Dim()
}
