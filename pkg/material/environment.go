package material

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
)

// EnvironmentEDF describes radiance arriving from infinitely far away.
// Directions point from the scene toward the environment.
type EnvironmentEDF interface {
	// Sample draws a world-space direction toward the environment
	Sample(sample core.Vec2) (direction core.Vec3, value core.Spectrum, probability float64)

	// Evaluate returns environment radiance for a direction
	Evaluate(direction core.Vec3) core.Spectrum

	// EvaluatePDF returns the solid-angle density Sample would have produced
	// the direction with
	EvaluatePDF(direction core.Vec3) float64
}

// UniformEnvironmentEDF emits constant radiance in every direction
type UniformEnvironmentEDF struct {
	radiance core.Spectrum
}

// NewUniformEnvironmentEDF creates a constant environment
func NewUniformEnvironmentEDF(radiance core.Spectrum) *UniformEnvironmentEDF {
	return &UniformEnvironmentEDF{radiance: radiance}
}

// Sample implements the EnvironmentEDF interface with uniform sphere sampling
func (u *UniformEnvironmentEDF) Sample(sample core.Vec2) (core.Vec3, core.Spectrum, float64) {
	return core.SampleSphereUniform(sample), u.radiance, core.UniformSpherePDF()
}

// Evaluate implements the EnvironmentEDF interface
func (u *UniformEnvironmentEDF) Evaluate(direction core.Vec3) core.Spectrum {
	return u.radiance
}

// EvaluatePDF implements the EnvironmentEDF interface
func (u *UniformEnvironmentEDF) EvaluatePDF(direction core.Vec3) float64 {
	return core.UniformSpherePDF()
}

// GradientEnvironmentEDF blends two colors by direction elevation, the
// classic sky gradient background
type GradientEnvironmentEDF struct {
	topColor    core.Spectrum
	bottomColor core.Spectrum
}

// NewGradientEnvironmentEDF creates a vertical gradient environment
func NewGradientEnvironmentEDF(topColor, bottomColor core.Spectrum) *GradientEnvironmentEDF {
	return &GradientEnvironmentEDF{topColor: topColor, bottomColor: bottomColor}
}

// Sample implements the EnvironmentEDF interface with uniform sphere sampling
func (g *GradientEnvironmentEDF) Sample(sample core.Vec2) (core.Vec3, core.Spectrum, float64) {
	direction := core.SampleSphereUniform(sample)
	return direction, g.Evaluate(direction), core.UniformSpherePDF()
}

// Evaluate implements the EnvironmentEDF interface
func (g *GradientEnvironmentEDF) Evaluate(direction core.Vec3) core.Spectrum {
	t := 0.5 * (direction.Y + 1.0) // Map Y from [-1,1] to [0,1]
	return g.bottomColor.Lerp(g.topColor, t)
}

// EvaluatePDF implements the EnvironmentEDF interface
func (g *GradientEnvironmentEDF) EvaluatePDF(direction core.Vec3) float64 {
	return core.UniformSpherePDF()
}
