package material

import (
	"math"

	"github.com/df07/go-lighting-kernel/pkg/core"
)

// LambertianBRDF is a perfectly diffuse reflector
type LambertianBRDF struct{}

// Sample implements the BSDF interface with cosine-weighted hemisphere sampling
func (l *LambertianBRDF) Sample(sampler core.Sampler, inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) BSDFSample {
	if outgoing.Dot(basis.Normal) <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}

	incoming := basis.ToWorld(core.SampleHemisphereCosine(sampler.Get2D()))

	cosTheta := incoming.Dot(basis.Normal)
	pdf := core.CosineHemispherePDF(cosTheta)
	if pdf <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}

	// BRDF: reflectance / pi (proper energy conservation)
	return BSDFSample{
		Incoming:    incoming,
		Value:       inputs.Reflectance.Scale(1.0 / math.Pi),
		Probability: pdf,
		Mode:        ScatteringDiffuse,
	}
}

// Evaluate implements the BSDF interface for specific direction pairs
func (l *LambertianBRDF) Evaluate(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Spectrum, float64) {
	if outgoing.Dot(basis.Normal) <= 0 || incoming.Dot(basis.Normal) <= 0 {
		return core.Spectrum{}, 0
	}

	pdf := core.CosineHemispherePDF(incoming.Dot(basis.Normal))
	return inputs.Reflectance.Scale(1.0 / math.Pi), pdf
}

// PDF implements the BSDF interface
func (l *LambertianBRDF) PDF(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) float64 {
	if outgoing.Dot(basis.Normal) <= 0 {
		return 0
	}
	return core.CosineHemispherePDF(incoming.Dot(basis.Normal))
}

// Modes implements the BSDF interface
func (l *LambertianBRDF) Modes() ScatteringMode {
	return ScatteringDiffuse
}
