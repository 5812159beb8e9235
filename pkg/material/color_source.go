package material

import (
	"math"

	"github.com/df07/go-lighting-kernel/pkg/core"
)

// ColorSource provides spatially-varying colors for material inputs
type ColorSource interface {
	// Evaluate returns the color at given UV coordinates and 3D point.
	// UV drives surface-parameterized patterns, point drives solid patterns.
	Evaluate(uv core.Vec2, point core.Vec3) core.Spectrum
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Spectrum
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Spectrum) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Spectrum {
	return s.Color
}

// CheckerColor provides a procedural checkerboard pattern in UV space
type CheckerColor struct {
	Color1 core.Spectrum
	Color2 core.Spectrum
	Scale  float64 // checks per unit of UV
}

// NewCheckerColor creates a checkerboard color source
func NewCheckerColor(color1, color2 core.Spectrum, scale float64) *CheckerColor {
	return &CheckerColor{Color1: color1, Color2: color2, Scale: scale}
}

// Evaluate alternates the two colors based on the UV check position
func (c *CheckerColor) Evaluate(uv core.Vec2, point core.Vec3) core.Spectrum {
	checkU := int(math.Floor(uv.X * c.Scale))
	checkV := int(math.Floor(uv.Y * c.Scale))
	if (checkU+checkV)%2 == 0 {
		return c.Color1
	}
	return c.Color2
}
