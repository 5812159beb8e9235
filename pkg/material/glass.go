package material

import (
	"math"

	"github.com/df07/go-lighting-kernel/pkg/core"
)

// GlassBSDF is a clear dielectric that reflects or refracts according to
// Fresnel, with total internal reflection handled
type GlassBSDF struct{}

// Sample implements the BSDF interface for dielectric scattering
func (g *GlassBSDF) Sample(sampler core.Sampler, inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) BSDFSample {
	// Which side of the surface are we on?
	normal := basis.Normal
	refractionRatio := 1.0 / inputs.IOR // entering the material
	if outgoing.Dot(geometricNormal) < 0 {
		normal = normal.Negate() // exiting: flip to the inside
		refractionRatio = inputs.IOR
	}

	incident := outgoing.Negate()
	cosTheta := math.Min(-incident.Dot(normal), 1.0)
	if cosTheta <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Total internal reflection forces the mirror branch
	cannotRefract := refractionRatio*sinTheta > 1.0

	var incoming core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		incoming = incident.Reflect(normal)
	} else {
		incoming = refract(incident, normal, refractionRatio)
	}

	return BSDFSample{
		Incoming:    incoming,
		Value:       inputs.Reflectance,
		Probability: 0,
		Mode:        ScatteringSpecular,
	}
}

// Evaluate implements the BSDF interface; delta components evaluate to zero
func (g *GlassBSDF) Evaluate(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Spectrum, float64) {
	return core.Spectrum{}, 0
}

// PDF implements the BSDF interface; delta components have zero density
func (g *GlassBSDF) PDF(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) float64 {
	return 0
}

// Modes implements the BSDF interface
func (g *GlassBSDF) Modes() ScatteringMode {
	return ScatteringSpecular
}

// refract calculates the refraction of a vector using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// schlickReflectance calculates the Fresnel reflectance using Schlick's approximation
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
