package lights

import (
	"testing"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 2, 0), core.NewSpectrum(8, 8, 8))

	s := light.Sample(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec2(0.5, 0.5))

	assert.InDelta(t, 0, s.Direction.Subtract(core.NewVec3(0, 1, 0)).Length(), 1e-9)
	assert.InDelta(t, 2.0, s.Distance, 1e-9)
	assert.True(t, s.Dirac)
	assert.Equal(t, 1.0, s.Probability)

	// Inverse-square falloff: 8 / 2² = 2
	assert.InDelta(t, 2.0, s.Radiance[0], 1e-9)
}

func TestPointLight_InverseSquare(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 0, 0), core.NewSpectrum(16, 16, 16))

	near := light.Sample(core.NewVec3(2, 0, 0), core.NewVec3(-1, 0, 0), core.NewVec2(0, 0))
	far := light.Sample(core.NewVec3(4, 0, 0), core.NewVec3(-1, 0, 0), core.NewVec2(0, 0))

	// Doubling the distance quarters the arriving radiance
	assert.InDelta(t, 4.0, near.Radiance[0]/far.Radiance[0], 1e-9)
}

func TestPointLight_Sample_CoincidentReceiver(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 1, 1), core.NewSpectrum(8, 8, 8))

	s := light.Sample(core.NewVec3(1, 1, 1), core.NewVec3(0, 1, 0), core.NewVec2(0, 0))

	assert.Equal(t, 0.0, s.Probability)
	assert.True(t, s.Radiance.IsBlack())
}

func TestPointLight_EvaluatePDF(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 2, 0), core.NewSpectrum(8, 8, 8))

	// Direction sampling can never land on a point, so the density is zero
	// even at the light's own position
	assert.Equal(t, 0.0, light.EvaluatePDF(core.NewVec3(0, 2, 0)))
	assert.Equal(t, 0.0, light.EvaluatePDF(core.NewVec3(5, 5, 5)))
}
