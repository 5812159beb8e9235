package lights

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
)

// PointLight represents an isotropic point light with no physical extent
type PointLight struct {
	Position  core.Vec3
	Intensity core.Spectrum // Radiant intensity, power per unit solid angle
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity core.Spectrum) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Sample implements the Light interface. The light occupies a single
// direction from any receiver, so candidates are marked Dirac and carry
// probability 1 before light selection.
func (pl *PointLight) Sample(point core.Vec3, normal core.Vec3, sample core.Vec2) Sample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()
	if distance < 1e-8 {
		return Sample{Light: pl}
	}
	direction := toLight.Multiply(1.0 / distance)

	return Sample{
		Point:       pl.Position,
		Direction:   direction,
		Distance:    distance,
		Radiance:    pl.Intensity.Scale(1.0 / (distance * distance)),
		Probability: 1.0,
		Dirac:       true,
		Light:       pl,
	}
}

// EvaluatePDF implements the Light interface. BSDF sampling never lands on
// a point light, so the area density is always zero.
func (pl *PointLight) EvaluatePDF(position core.Vec3) float64 {
	return 0.0
}
