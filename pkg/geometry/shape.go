package geometry

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/material"
)

// Hit records a ray/shape intersection
type Hit struct {
	T        float64
	Position core.Vec3
	Normal   core.Vec3 // outward geometric normal
	UV       core.Vec2
	Material *material.Material
}

// Shape is anything a ray can intersect
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (Hit, bool)
}
