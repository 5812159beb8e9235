package shading

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
)

// SampleOcclusion estimates ambient occlusion at a surface position: the
// cosine-weighted fraction of the hemisphere blocked within maxDistance.
// Returns a value in [0, 1]; 1 means fully occluded.
func SampleOcclusion(sampler core.Sampler, intersector Intersector, position core.Vec3, basis core.Basis, maxDistance float64, sampleCount int) float64 {
	if sampleCount <= 0 || maxDistance <= 0 {
		return 0
	}

	occluded := 0
	for i := 0; i < sampleCount; i++ {
		direction := basis.ToWorld(core.SampleHemisphereCosine(sampler.Get2D()))
		ray := core.NewRay(position, direction)
		if intersector.TraceProbe(ray, RayEpsilon, maxDistance) {
			occluded++
		}
	}

	return float64(occluded) / float64(sampleCount)
}
