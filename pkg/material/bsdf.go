package material

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
)

// Inputs carries material input values evaluated at a single shading point.
// Each model reads the fields it cares about.
type Inputs struct {
	Reflectance core.Spectrum // surface reflectance / tint
	Radiance    core.Spectrum // emitted radiance (EDF models)
	IOR         float64       // index of refraction (refractive models)
	Exponent    float64       // lobe sharpness (glossy models)
}

// BSDFSample is the result of sampling a BSDF for a scattering direction
type BSDFSample struct {
	Incoming    core.Vec3      // sampled direction, unit length, pointing away from the surface
	Value       core.Spectrum  // BSDF value for the direction pair
	Probability float64        // solid-angle density of the sample; 0 for delta components
	Mode        ScatteringMode // component that produced the sample; ScatteringNone means absorbed
}

// BSDF models scattering at a surface. Directions point away from the
// surface: outgoing toward the viewer, incoming toward the light.
// Delta components report zero probability; callers branch on Mode instead
// of dividing.
type BSDF interface {
	// Sample draws an incoming direction for the given outgoing direction
	Sample(sampler core.Sampler, inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) BSDFSample

	// Evaluate returns the BSDF value and sampling density for a direction
	// pair. Both are zero for delta components.
	Evaluate(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Spectrum, float64)

	// PDF returns the solid-angle density Sample would have for the pair
	PDF(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) float64

	// Modes returns the scattering components the BSDF can produce
	Modes() ScatteringMode
}
