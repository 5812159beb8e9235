package shading

import (
	"math/rand"
	"testing"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/stretchr/testify/assert"
)

// probeFunc adapts a predicate into an Intersector for occlusion tests
type probeFunc func(ray core.Ray, tMin, tMax float64) bool

func (f probeFunc) Trace(ray core.Ray, tMin, tMax float64) (Point, bool) {
	return Point{}, false
}

func (f probeFunc) TraceProbe(ray core.Ray, tMin, tMax float64) bool {
	return f(ray, tMin, tMax)
}

func TestSampleOcclusion_FullyEnclosed(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	everything := probeFunc(func(core.Ray, float64, float64) bool { return true })

	basis := core.NewBasis(core.NewVec3(0, 1, 0))
	occlusion := SampleOcclusion(sampler, everything, core.NewVec3(0, 0, 0), basis, 1.0, 16)

	assert.Equal(t, 1.0, occlusion)
}

func TestSampleOcclusion_OpenSky(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	nothing := probeFunc(func(core.Ray, float64, float64) bool { return false })

	basis := core.NewBasis(core.NewVec3(0, 1, 0))
	occlusion := SampleOcclusion(sampler, nothing, core.NewVec3(0, 0, 0), basis, 1.0, 16)

	assert.Equal(t, 0.0, occlusion)
}

func TestSampleOcclusion_HalfBlocked(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// A wall blocking the +X half of the hemisphere
	wall := probeFunc(func(ray core.Ray, tMin, tMax float64) bool {
		return ray.Direction.X > 0
	})

	basis := core.NewBasis(core.NewVec3(0, 1, 0))
	occlusion := SampleOcclusion(sampler, wall, core.NewVec3(0, 0, 0), basis, 1.0, 10000)

	assert.InDelta(t, 0.5, occlusion, 0.02)
}

func TestSampleOcclusion_DegenerateConfig(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	everything := probeFunc(func(core.Ray, float64, float64) bool { return true })
	basis := core.NewBasis(core.NewVec3(0, 1, 0))

	assert.Equal(t, 0.0, SampleOcclusion(sampler, everything, core.Vec3{}, basis, 1.0, 0))
	assert.Equal(t, 0.0, SampleOcclusion(sampler, everything, core.Vec3{}, basis, 0, 16))
}
