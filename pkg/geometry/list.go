package geometry

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// List is a linear intersector over a set of shapes, implementing
// shading.Intersector. It suits the small scenes the kernel ships with;
// callers with heavy geometry plug in their own accelerated intersector.
type List struct {
	shapes []Shape
	scene  shading.Scene
}

// NewList creates an intersector over the given shapes. The scene reference
// (may be nil) is stamped into every shading point the list produces.
func NewList(scene shading.Scene, shapes ...Shape) *List {
	return &List{shapes: shapes, scene: scene}
}

// Add appends more shapes to the list
func (l *List) Add(shapes ...Shape) {
	l.shapes = append(l.shapes, shapes...)
}

// Trace implements shading.Intersector with a closest-hit scan
func (l *List) Trace(ray core.Ray, tMin, tMax float64) (shading.Point, bool) {
	var closest Hit
	found := false
	closestT := tMax

	for _, shape := range l.shapes {
		if hit, ok := shape.Hit(ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
			found = true
		}
	}

	if !found {
		return shading.Point{}, false
	}

	distance := closest.T * ray.Direction.Length()
	outgoing := ray.Direction.Normalize().Negate()
	return shading.NewPoint(closest.Position, closest.Normal, closest.Normal,
		outgoing, closest.UV, distance, closest.Material, l.scene), true
}

// TraceProbe implements shading.Intersector; any hit suffices
func (l *List) TraceProbe(ray core.Ray, tMin, tMax float64) bool {
	for _, shape := range l.shapes {
		if _, ok := shape.Hit(ray, tMin, tMax); ok {
			return true
		}
	}
	return false
}
