package material

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
)

// Material pairs scattering and emission models with their input sources.
// Either model may be nil: pure emitters have no BSDF, plain surfaces no EDF.
type Material struct {
	BSDF BSDF
	EDF  EDF

	Reflectance ColorSource
	Radiance    ColorSource
	IOR         float64
	Exponent    float64
}

// EvaluateInputs resolves the material's input sources at a shading location
func (m *Material) EvaluateInputs(tc *TextureCache, uv core.Vec2, point core.Vec3) Inputs {
	inputs := Inputs{
		IOR:      m.IOR,
		Exponent: m.Exponent,
	}
	if m.Reflectance != nil {
		inputs.Reflectance = tc.Evaluate(m.Reflectance, uv, point)
	}
	if m.Radiance != nil {
		inputs.Radiance = tc.Evaluate(m.Radiance, uv, point)
	}
	return inputs
}

// NewLambertian creates a diffuse material with a solid reflectance
func NewLambertian(reflectance core.Spectrum) *Material {
	return &Material{
		BSDF:        &LambertianBRDF{},
		Reflectance: NewSolidColor(reflectance),
	}
}

// NewTexturedLambertian creates a diffuse material with a textured reflectance
func NewTexturedLambertian(reflectance ColorSource) *Material {
	return &Material{
		BSDF:        &LambertianBRDF{},
		Reflectance: reflectance,
	}
}

// NewMirror creates a perfect specular reflector
func NewMirror(reflectance core.Spectrum) *Material {
	return &Material{
		BSDF:        &MirrorBRDF{},
		Reflectance: NewSolidColor(reflectance),
	}
}

// NewGlass creates a clear dielectric with the given index of refraction
func NewGlass(ior float64) *Material {
	return &Material{
		BSDF:        &GlassBSDF{},
		Reflectance: NewSolidColor(core.GraySpectrum(1.0)),
		IOR:         ior,
	}
}

// NewGlossy creates a Phong-lobe glossy material
func NewGlossy(reflectance core.Spectrum, exponent float64) *Material {
	return &Material{
		BSDF:        &PhongBRDF{},
		Reflectance: NewSolidColor(reflectance),
		Exponent:    exponent,
	}
}

// NewEmissive creates a pure emitter with constant radiance
func NewEmissive(radiance core.Spectrum) *Material {
	return &Material{
		EDF:      &DiffuseEDF{},
		Radiance: NewSolidColor(radiance),
	}
}
