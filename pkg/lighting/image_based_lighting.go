package lighting

import (
	"math"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/material"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// computeImageBasedLighting estimates environment radiance at a vertex by
// combining scatter-sampled and environment-sampled directions with the
// power heuristic. Sample counts fold into the weights, balancing each
// technique against the other's full budget.
func computeImageBasedLighting(sampler core.Sampler, sctx *shading.Context, sp *shading.Point, bsdf material.BSDF, inputs material.Inputs, environment material.EnvironmentEDF, bsdfSampleCount, envSampleCount int) core.Spectrum {
	radiance := iblBSDFSampling(sampler, sctx, sp, bsdf, inputs, environment, bsdfSampleCount, envSampleCount)
	return radiance.Add(iblEnvironmentSampling(sampler, sctx, sp, bsdf, inputs, environment, bsdfSampleCount, envSampleCount))
}

// iblBSDFSampling draws directions from the BSDF and looks the environment
// up along the unoccluded ones
func iblBSDFSampling(sampler core.Sampler, sctx *shading.Context, sp *shading.Point, bsdf material.BSDF, inputs material.Inputs, environment material.EnvironmentEDF, bsdfSampleCount, envSampleCount int) core.Spectrum {
	var total core.Spectrum
	if bsdfSampleCount <= 0 {
		return total
	}

	for i := 0; i < bsdfSampleCount; i++ {
		sample := bsdf.Sample(sampler, inputs, sp.GeometricNormal, sp.Basis, sp.Outgoing)
		if sample.Mode == material.ScatteringNone {
			continue
		}

		// The environment must be visible along the sampled direction
		ray := core.NewRay(sp.Position, sample.Incoming)
		if sctx.Intersector().TraceProbe(ray, shading.RayEpsilon, math.Inf(1)) {
			continue
		}

		envValue := environment.Evaluate(sample.Incoming)

		if sample.Mode.Has(material.ScatteringSpecular) {
			// Delta samples carry their full weight and admit no balancing
			total = total.Add(sample.Value.Mul(envValue))
			continue
		}
		if sample.Probability <= 0 {
			continue
		}

		weight := core.MISPower2(
			float64(bsdfSampleCount)*sample.Probability,
			float64(envSampleCount)*environment.EvaluatePDF(sample.Incoming))

		cosIn := math.Abs(sample.Incoming.Dot(sp.ShadingNormal))
		total = total.Add(sample.Value.Mul(envValue).Scale(cosIn * weight / sample.Probability))
	}

	return total.Scale(1.0 / float64(bsdfSampleCount))
}

// iblEnvironmentSampling draws directions from the environment and evaluates
// the BSDF toward them
func iblEnvironmentSampling(sampler core.Sampler, sctx *shading.Context, sp *shading.Point, bsdf material.BSDF, inputs material.Inputs, environment material.EnvironmentEDF, bsdfSampleCount, envSampleCount int) core.Spectrum {
	var total core.Spectrum
	if envSampleCount <= 0 {
		return total
	}

	for i := 0; i < envSampleCount; i++ {
		direction, envValue, envProb := environment.Sample(sampler.Get2D())
		if envProb <= 0 || envValue.IsBlack() {
			continue
		}

		cosIn := direction.Dot(sp.ShadingNormal)
		if cosIn <= 0 {
			continue
		}

		value, scatterProb := bsdf.Evaluate(inputs, sp.GeometricNormal, sp.Basis, sp.Outgoing, direction)
		if value.IsBlack() {
			continue
		}

		ray := core.NewRay(sp.Position, direction)
		if sctx.Intersector().TraceProbe(ray, shading.RayEpsilon, math.Inf(1)) {
			continue
		}

		weight := core.MISPower2(
			float64(envSampleCount)*envProb,
			float64(bsdfSampleCount)*scatterProb)

		total = total.Add(value.Mul(envValue).Scale(cosIn * weight / envProb))
	}

	return total.Scale(1.0 / float64(envSampleCount))
}
