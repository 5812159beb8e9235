package lights

import (
	"math"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/geometry"
	"github.com/df07/go-lighting-kernel/pkg/material"
)

// QuadLight represents a rectangular area light
type QuadLight struct {
	*geometry.Quad               // Embed quad for hit testing
	Radiance       core.Spectrum // Emitted radiance from the front face
	area           float64       // Cached area for PDF calculations
}

// NewQuadLight creates a new quad light. The quad carries an emissive
// material so path hits on it see the same radiance the sampler reports.
func NewQuadLight(corner, u, v core.Vec3, radiance core.Spectrum) *QuadLight {
	quad := geometry.NewQuad(corner, u, v, material.NewEmissive(radiance))

	return &QuadLight{
		Quad:     quad,
		Radiance: radiance,
		area:     quad.Area(),
	}
}

// Sample implements the Light interface - samples a point on the quad for direct lighting
func (ql *QuadLight) Sample(point core.Vec3, normal core.Vec3, sample core.Vec2) Sample {
	// Sample uniformly on the quad surface
	samplePoint := ql.Corner.Add(ql.U.Multiply(sample.X)).Add(ql.V.Multiply(sample.Y))

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	if distance < 1e-8 {
		// Receiver sits on the light itself
		return Sample{Light: ql}
	}
	direction := toLight.Multiply(1.0 / distance)

	// Emission leaves the front face only; behind or edge-on the candidate
	// carries no radiance and no density
	cosTheta := ql.Normal.Dot(direction.Negate())
	if cosTheta < 1e-8 {
		return Sample{
			Point:     samplePoint,
			Normal:    ql.Normal,
			Direction: direction,
			Distance:  distance,
			Light:     ql,
		}
	}

	// Convert the uniform area density to solid angle at the receiver:
	// PDF_solid_angle = PDF_area * distance² / cos(θ)
	solidAnglePDF := distance * distance / (cosTheta * ql.area)

	return Sample{
		Point:       samplePoint,
		Normal:      ql.Normal,
		Direction:   direction,
		Distance:    distance,
		Radiance:    ql.Radiance,
		Probability: solidAnglePDF,
		Light:       ql,
	}
}

// EvaluatePDF implements the Light interface - returns the area density of
// sampling the given world position on the quad
func (ql *QuadLight) EvaluatePDF(position core.Vec3) float64 {
	// Solve position = corner + alpha*u + beta*v for the parametric coordinates
	toPoint := position.Subtract(ql.Corner)

	uDotU := ql.U.Dot(ql.U)
	vDotV := ql.V.Dot(ql.V)
	uDotV := ql.U.Dot(ql.V)

	det := uDotU*vDotV - uDotV*uDotV
	if math.Abs(det) < 1e-8 {
		return 0.0 // Degenerate quad
	}

	toDotU := toPoint.Dot(ql.U)
	toDotV := toPoint.Dot(ql.V)

	alpha := (vDotV*toDotU - uDotV*toDotV) / det
	beta := (uDotU*toDotV - uDotV*toDotU) / det

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0.0 // Outside the quad bounds
	}

	// Reject points off the quad plane
	reconstructed := ql.Corner.Add(ql.U.Multiply(alpha)).Add(ql.V.Multiply(beta))
	if reconstructed.Subtract(position).Length() > 0.001 {
		return 0.0
	}

	return 1.0 / ql.area
}
