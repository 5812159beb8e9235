package shading

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/material"
)

// RayEpsilon is the minimum parametric distance for spawned rays, keeping
// them from re-hitting the surface they start on
const RayEpsilon = 0.001

// Scene is the back-reference a shading point carries to scene-wide data
type Scene interface {
	// EnvironmentEDF returns the scene environment, or nil when there is none
	EnvironmentEDF() material.EnvironmentEDF
}

// Point is an immutable snapshot of a ray/surface intersection. Normals are
// the true outward surface normals; sidedness is resolved by the consumers.
type Point struct {
	Position        core.Vec3
	GeometricNormal core.Vec3
	ShadingNormal   core.Vec3
	Basis           core.Basis // orthonormal frame around the shading normal
	Outgoing        core.Vec3  // unit direction back along the arriving ray
	UV              core.Vec2
	Distance        float64 // distance traveled by the ray to reach the point
	Material        *material.Material
	Scene           Scene
}

// NewPoint builds a shading point, deriving the basis from the shading normal
func NewPoint(position, geometricNormal, shadingNormal, outgoing core.Vec3, uv core.Vec2, distance float64, mat *material.Material, scene Scene) Point {
	return Point{
		Position:        position,
		GeometricNormal: geometricNormal,
		ShadingNormal:   shadingNormal,
		Basis:           core.NewBasis(shadingNormal),
		Outgoing:        outgoing,
		UV:              uv,
		Distance:        distance,
		Material:        mat,
		Scene:           scene,
	}
}

// EnvironmentEDF returns the scene environment reachable from this point,
// or nil without a scene back-reference
func (p *Point) EnvironmentEDF() material.EnvironmentEDF {
	if p.Scene == nil {
		return nil
	}
	return p.Scene.EnvironmentEDF()
}
