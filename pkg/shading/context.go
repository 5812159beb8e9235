package shading

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/material"
)

// Intersector finds ray/surface intersections. Implementations live outside
// the lighting kernel; acceleration strategy is up to them.
type Intersector interface {
	// Trace returns the closest hit along the ray within (tMin, tMax)
	Trace(ray core.Ray, tMin, tMax float64) (Point, bool)

	// TraceProbe reports whether anything intersects the ray within
	// (tMin, tMax). Cheaper than Trace for shadow and occlusion tests.
	TraceProbe(ray core.Ray, tMin, tMax float64) bool
}

// Context bundles the per-thread services shading code needs. Not safe for
// concurrent use; each worker owns one.
type Context struct {
	intersector  Intersector
	textureCache *material.TextureCache
}

// NewContext creates a shading context. A nil texture cache gets a fresh one.
func NewContext(intersector Intersector, textureCache *material.TextureCache) *Context {
	if textureCache == nil {
		textureCache = material.NewTextureCache()
	}
	return &Context{intersector: intersector, textureCache: textureCache}
}

// Intersector returns the context's intersector
func (c *Context) Intersector() Intersector {
	return c.intersector
}

// TextureCache returns the context's texture cache
func (c *Context) TextureCache() *material.TextureCache {
	return c.textureCache
}
