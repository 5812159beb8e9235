package material

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
)

// MirrorBRDF is a perfect specular reflector
type MirrorBRDF struct{}

// Sample implements the BSDF interface with the single mirror direction
func (m *MirrorBRDF) Sample(sampler core.Sampler, inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) BSDFSample {
	if outgoing.Dot(basis.Normal) <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}

	incident := outgoing.Negate()
	incoming := incident.Reflect(basis.Normal)

	// Delta component: value carries the full reflectance, density is zero
	return BSDFSample{
		Incoming:    incoming,
		Value:       inputs.Reflectance,
		Probability: 0,
		Mode:        ScatteringSpecular,
	}
}

// Evaluate implements the BSDF interface; delta components evaluate to zero
func (m *MirrorBRDF) Evaluate(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Spectrum, float64) {
	return core.Spectrum{}, 0
}

// PDF implements the BSDF interface; delta components have zero density
func (m *MirrorBRDF) PDF(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) float64 {
	return 0
}

// Modes implements the BSDF interface
func (m *MirrorBRDF) Modes() ScatteringMode {
	return ScatteringSpecular
}
