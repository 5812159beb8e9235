package lights

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// Sample is one direct-lighting candidate drawn from a light
type Sample struct {
	Point       core.Vec3     // Point on the light source
	Normal      core.Vec3     // Normal at the light sample point, zero for point lights
	Direction   core.Vec3     // Unit direction from receiver to light
	Distance    float64       // Distance from receiver to light
	Radiance    core.Spectrum // Radiance arriving along Direction
	Probability float64       // Solid-angle density times selection probability
	Dirac       bool          // True for lights with no sampleable solid angle
	Light       Light         // Light the candidate came from
}

// Light interface for finite light sources that can be sampled for direct lighting
type Light interface {
	// Sample draws a candidate toward a receiver position.
	// Returns a Sample with direction FROM receiver TO light; a candidate
	// with zero probability and Dirac false carries no contribution.
	Sample(point core.Vec3, normal core.Vec3, sample core.Vec2) Sample

	// EvaluatePDF returns the surface-area density of producing a sample at
	// the given world position, zero when the position lies off the light
	EvaluatePDF(position core.Vec3) float64
}

// Sampler draws direct-lighting candidates across a set of lights
type Sampler interface {
	// Sample appends up to count candidates for the receiver into dst and
	// returns it. Callers reuse dst across receivers, clearing with dst[:0]
	// to keep its capacity. No lights means nothing is appended.
	Sample(sampler core.Sampler, point core.Vec3, normal core.Vec3, count int, dst []Sample) []Sample

	// EvaluatePDF returns the surface-area density of generating a light
	// sample at the surface location sp, selection probability included.
	// Zero when sp lies on no sampled light.
	EvaluatePDF(sp *shading.Point) float64
}
