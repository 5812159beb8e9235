package lights

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// UniformSampler selects among its lights with equal probability
type UniformSampler struct {
	lights []Light
}

// NewUniformSampler creates a sampler over the given lights
func NewUniformSampler(lights ...Light) *UniformSampler {
	return &UniformSampler{lights: lights}
}

// LightCount returns the number of registered lights
func (us *UniformSampler) LightCount() int {
	return len(us.lights)
}

// Sample implements the Sampler interface - draws count candidates,
// each from an independently selected light
func (us *UniformSampler) Sample(sampler core.Sampler, point core.Vec3, normal core.Vec3, count int, dst []Sample) []Sample {
	if len(us.lights) == 0 {
		return dst
	}
	selectionProb := 1.0 / float64(len(us.lights))

	for i := 0; i < count; i++ {
		index := int(sampler.Get1D() * float64(len(us.lights)))
		if index >= len(us.lights) {
			index = len(us.lights) - 1
		}

		candidate := us.lights[index].Sample(point, normal, sampler.Get2D())
		candidate.Probability *= selectionProb
		dst = append(dst, candidate)
	}

	return dst
}

// EvaluatePDF implements the Sampler interface - the density of landing a
// light sample on sp, summed over every light that contains its position
func (us *UniformSampler) EvaluatePDF(sp *shading.Point) float64 {
	if len(us.lights) == 0 {
		return 0.0
	}
	selectionProb := 1.0 / float64(len(us.lights))

	totalPDF := 0.0
	for _, light := range us.lights {
		totalPDF += selectionProb * light.EvaluatePDF(sp.Position)
	}
	return totalPDF
}
