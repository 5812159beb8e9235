package material

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
)

// textureCacheCapacity caps the entries held by a cache. A full cache is
// cleared wholesale before the next insert; entries carry no recency.
const textureCacheCapacity = 4096

// TextureCache memoizes color source lookups. It holds at most
// textureCacheCapacity entries. It is not safe for concurrent use; each
// worker thread owns its own cache.
type TextureCache struct {
	entries map[textureCacheKey]core.Spectrum
	hits    int64
	misses  int64
}

type textureCacheKey struct {
	source ColorSource
	uv     core.Vec2
	point  core.Vec3
}

// NewTextureCache creates an empty texture cache
func NewTextureCache() *TextureCache {
	return &TextureCache{entries: make(map[textureCacheKey]core.Spectrum)}
}

// Evaluate returns the source color at (uv, point), memoized
func (tc *TextureCache) Evaluate(source ColorSource, uv core.Vec2, point core.Vec3) core.Spectrum {
	if source == nil {
		return core.Spectrum{}
	}

	key := textureCacheKey{source: source, uv: uv, point: point}
	if value, ok := tc.entries[key]; ok {
		tc.hits++
		return value
	}

	value := source.Evaluate(uv, point)
	if len(tc.entries) >= textureCacheCapacity {
		clear(tc.entries)
	}
	tc.entries[key] = value
	tc.misses++
	return value
}

// Clear drops all cached entries but keeps the cache usable
func (tc *TextureCache) Clear() {
	clear(tc.entries)
	tc.hits = 0
	tc.misses = 0
}

// Hits returns the number of lookups served from the cache
func (tc *TextureCache) Hits() int64 {
	return tc.hits
}

// Misses returns the number of lookups that evaluated the source
func (tc *TextureCache) Misses() int64 {
	return tc.misses
}
