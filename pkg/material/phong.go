package material

import (
	"math"

	"github.com/df07/go-lighting-kernel/pkg/core"
)

// PhongBRDF is a normalized modified-Phong glossy lobe around the mirror
// direction. Exponent controls sharpness; higher is shinier.
type PhongBRDF struct{}

// Sample implements the BSDF interface with power-cosine lobe sampling
func (p *PhongBRDF) Sample(sampler core.Sampler, inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) BSDFSample {
	if outgoing.Dot(basis.Normal) <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}

	reflected := outgoing.Negate().Reflect(basis.Normal)
	lobe := core.NewBasis(reflected)
	incoming := lobe.ToWorld(core.SampleHemispherePower(sampler.Get2D(), inputs.Exponent))

	// The lobe can dip below the surface; treat those samples as absorbed
	if incoming.Dot(basis.Normal) <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}

	cosAlpha := incoming.Dot(reflected)
	pdf := core.PowerHemispherePDF(cosAlpha, inputs.Exponent)
	if pdf <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}

	return BSDFSample{
		Incoming:    incoming,
		Value:       phongValue(inputs, cosAlpha),
		Probability: pdf,
		Mode:        ScatteringGlossy,
	}
}

// Evaluate implements the BSDF interface for specific direction pairs
func (p *PhongBRDF) Evaluate(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Spectrum, float64) {
	if outgoing.Dot(basis.Normal) <= 0 || incoming.Dot(basis.Normal) <= 0 {
		return core.Spectrum{}, 0
	}

	reflected := outgoing.Negate().Reflect(basis.Normal)
	cosAlpha := incoming.Dot(reflected)
	if cosAlpha <= 0 {
		return core.Spectrum{}, 0
	}

	return phongValue(inputs, cosAlpha), core.PowerHemispherePDF(cosAlpha, inputs.Exponent)
}

// PDF implements the BSDF interface
func (p *PhongBRDF) PDF(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) float64 {
	if outgoing.Dot(basis.Normal) <= 0 || incoming.Dot(basis.Normal) <= 0 {
		return 0
	}

	reflected := outgoing.Negate().Reflect(basis.Normal)
	cosAlpha := incoming.Dot(reflected)
	if cosAlpha <= 0 {
		return 0
	}
	return core.PowerHemispherePDF(cosAlpha, inputs.Exponent)
}

// Modes implements the BSDF interface
func (p *PhongBRDF) Modes() ScatteringMode {
	return ScatteringGlossy
}

// phongValue evaluates the normalized lobe: reflectance * (n+2)/(2pi) * cos^n(alpha)
func phongValue(inputs Inputs, cosAlpha float64) core.Spectrum {
	norm := (inputs.Exponent + 2.0) / (2.0 * math.Pi)
	return inputs.Reflectance.Scale(norm * math.Pow(cosAlpha, inputs.Exponent))
}
