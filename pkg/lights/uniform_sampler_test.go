package lights

import (
	"math/rand"
	"testing"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformSampler_SelectionProbability(t *testing.T) {
	// Two copies of the same light: per-candidate probability halves
	single := NewUniformSampler(testQuadLight())
	double := NewUniformSampler(testQuadLight(), testQuadLight())

	sampler := &fixedSampler{
		values1D: []float64{0.0},
		values2D: []core.Vec2{{X: 0.5, Y: 0.5}},
	}

	receiver := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	one := single.Sample(sampler, receiver, normal, 1, nil)
	two := double.Sample(sampler, receiver, normal, 1, nil)
	require.Len(t, one, 1)
	require.Len(t, two, 1)

	assert.InDelta(t, 6.25, one[0].Probability, 1e-9)
	assert.InDelta(t, 3.125, two[0].Probability, 1e-9)
}

func TestUniformSampler_DiracSelection(t *testing.T) {
	us := NewUniformSampler(
		NewPointLight(core.NewVec3(0, 2, 0), core.NewSpectrum(8, 8, 8)),
		testQuadLight(),
	)

	sampler := &fixedSampler{
		values1D: []float64{0.0}, // always selects the point light
		values2D: []core.Vec2{{X: 0.5, Y: 0.5}},
	}

	candidates := us.Sample(sampler, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 1, nil)
	require.Len(t, candidates, 1)

	// Dirac candidates carry just the selection probability
	assert.True(t, candidates[0].Dirac)
	assert.InDelta(t, 0.5, candidates[0].Probability, 1e-9)
}

func TestUniformSampler_BufferReuse(t *testing.T) {
	us := NewUniformSampler(testQuadLight())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	buffer := make([]Sample, 0, 8)
	receiver := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	buffer = us.Sample(sampler, receiver, normal, 4, buffer)
	require.Len(t, buffer, 4)
	assert.Equal(t, 8, cap(buffer))

	// Clearing with [:0] keeps the capacity across receivers
	buffer = us.Sample(sampler, receiver, normal, 4, buffer[:0])
	require.Len(t, buffer, 4)
	assert.Equal(t, 8, cap(buffer))
}

func TestUniformSampler_NoLights(t *testing.T) {
	us := NewUniformSampler()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	buffer := us.Sample(sampler, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 4, nil)
	assert.Empty(t, buffer)
	assert.Equal(t, 0, us.LightCount())
}

func TestUniformSampler_EvaluatePDF(t *testing.T) {
	us := NewUniformSampler(
		testQuadLight(),
		NewPointLight(core.NewVec3(9, 9, 9), core.NewSpectrum(1, 1, 1)),
	)

	onLight := &shading.Point{Position: core.NewVec3(0, 5, 0)}
	offLight := &shading.Point{Position: core.NewVec3(0, 1, 0)}

	// Selection probability 1/2 times area density 1/4
	assert.InDelta(t, 0.125, us.EvaluatePDF(onLight), 1e-9)
	assert.Equal(t, 0.0, us.EvaluatePDF(offLight))
}

func TestUniformSampler_EvaluatePDF_NoLights(t *testing.T) {
	us := NewUniformSampler()
	assert.Equal(t, 0.0, us.EvaluatePDF(&shading.Point{}))
}
