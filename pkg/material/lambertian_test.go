package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambertianBRDF_SampleDensity(t *testing.T) {
	brdf := &LambertianBRDF{}
	inputs := Inputs{Reflectance: core.GraySpectrum(0.8)}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	basis := core.NewBasis(normal)
	outgoing := core.NewVec3(0, 0, 1)

	for i := 0; i < 100; i++ {
		s := brdf.Sample(sampler, inputs, normal, basis, outgoing)
		require.Equal(t, ScatteringDiffuse, s.Mode)

		// Density must match the cosine-weighted formula
		cosTheta := s.Incoming.Dot(normal)
		assert.InDelta(t, cosTheta/math.Pi, s.Probability, 1e-10)
		assert.Greater(t, cosTheta, 0.0)
	}
}

func TestLambertianBRDF_EnergyConservation(t *testing.T) {
	brdf := &LambertianBRDF{}
	reflectance := core.NewSpectrum(0.5, 0.7, 0.9)
	inputs := Inputs{Reflectance: reflectance}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	basis := core.NewBasis(normal)
	s := brdf.Sample(sampler, inputs, normal, basis, normal)

	// BRDF should be reflectance/pi
	expected := reflectance.Scale(1.0 / math.Pi)
	for band := 0; band < core.SpectrumBands; band++ {
		assert.InDelta(t, expected[band], s.Value[band], 1e-10)
		assert.LessOrEqual(t, s.Value[band], reflectance[band], "BRDF exceeds reflectance (energy violation)")
	}
}

func TestLambertianBRDF_EvaluateMatchesSample(t *testing.T) {
	brdf := &LambertianBRDF{}
	inputs := Inputs{Reflectance: core.GraySpectrum(0.6)}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	normal := core.NewVec3(0, 1, 0)
	basis := core.NewBasis(normal)
	outgoing := core.NewVec3(0, 1, 1).Normalize()

	s := brdf.Sample(sampler, inputs, normal, basis, outgoing)
	require.Equal(t, ScatteringDiffuse, s.Mode)

	value, pdf := brdf.Evaluate(inputs, normal, basis, outgoing, s.Incoming)
	assert.InDelta(t, s.Probability, pdf, 1e-12)
	assert.Equal(t, s.Value, value)
	assert.InDelta(t, pdf, brdf.PDF(inputs, normal, basis, outgoing, s.Incoming), 1e-12)
}

func TestLambertianBRDF_BelowSurface(t *testing.T) {
	brdf := &LambertianBRDF{}
	inputs := Inputs{Reflectance: core.GraySpectrum(0.8)}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	basis := core.NewBasis(normal)

	// Outgoing below the surface is absorbed
	below := core.NewVec3(0, 0, -1)
	s := brdf.Sample(sampler, inputs, normal, basis, below)
	assert.Equal(t, ScatteringNone, s.Mode)

	// Incoming below the surface evaluates to zero
	value, pdf := brdf.Evaluate(inputs, normal, basis, normal, below)
	assert.True(t, value.IsBlack())
	assert.Equal(t, 0.0, pdf)
}
