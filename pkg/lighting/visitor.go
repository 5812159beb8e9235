package lighting

import (
	"math"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/lights"
	"github.com/df07/go-lighting-kernel/pkg/material"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// pathVisitor gathers radiance at each vertex: direct lighting from sampled
// lights, image-based lighting from the environment, and surface emission.
// It holds a reusable light-sample buffer, so each engine owns its own
// visitor and never shares it across goroutines.
type pathVisitor struct {
	lightSampler lights.Sampler
	params       Params
	buffer       []lights.Sample
}

func newPathVisitor(lightSampler lights.Sampler, params Params) *pathVisitor {
	return &pathVisitor{
		lightSampler: lightSampler,
		params:       params,
		buffer:       make([]lights.Sample, 0, params.DLSampleCount),
	}
}

// Visit implements the VertexVisitor interface
func (v *pathVisitor) Visit(sampler core.Sampler, sctx *shading.Context, vertex *PathVertex) core.Spectrum {
	sp := vertex.Point
	mat := sp.Material

	var radiance core.Spectrum
	if mat == nil {
		return radiance
	}

	inputs := mat.EvaluateInputs(sctx.TextureCache(), sp.UV, sp.Position)

	if mat.BSDF != nil {
		// Refill the candidate buffer, clearing with [:0] to keep capacity
		v.buffer = v.lightSampler.Sample(sampler, sp.Position, sp.ShadingNormal,
			v.params.DLSampleCount, v.buffer[:0])
		radiance = radiance.Add(computeDirectLighting(sctx, sp, mat.BSDF, inputs, v.buffer))

		if environment := sp.EnvironmentEDF(); environment != nil {
			radiance = radiance.Add(computeImageBasedLighting(
				sampler, sctx, sp, mat.BSDF, inputs, environment,
				v.params.IBLBSDFSampleCount, v.params.IBLEnvSampleCount))
		}
	}

	if mat.EDF != nil {
		emitted := mat.EDF.Evaluate(inputs, sp.GeometricNormal, sp.Basis, sp.Outgoing)
		if !emitted.IsBlack() && !vertex.PrevMode.Has(material.ScatteringSpecular) {
			emitted = emitted.Scale(v.emissionWeight(vertex))
		}
		radiance = radiance.Add(emitted)
	}

	return radiance
}

// emissionWeight balances emission reached by scatter sampling against the
// chance light sampling would have produced the same point, both densities
// taken with respect to surface area
func (v *pathVisitor) emissionWeight(vertex *PathVertex) float64 {
	sp := vertex.Point

	distanceSquared := sp.Distance * sp.Distance
	if distanceSquared <= 0 {
		return 0
	}

	cosOn := math.Max(sp.Outgoing.Dot(sp.ShadingNormal), 0)
	scatterPointProb := vertex.PrevProbability * cosOn / distanceSquared
	lightPointProb := v.lightSampler.EvaluatePDF(sp)

	return core.MISPower2(scatterPointProb, lightPointProb)
}

// EnvironmentRadiance implements the VertexVisitor interface. Environment
// light is integrated at every vertex by the IBL estimator, so escaping
// rays report nothing here.
func (v *pathVisitor) EnvironmentRadiance(sctx *shading.Context, ray core.Ray) (core.Spectrum, bool) {
	return core.Spectrum{}, false
}
