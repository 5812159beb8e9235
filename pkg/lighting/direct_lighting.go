package lighting

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/lights"
	"github.com/df07/go-lighting-kernel/pkg/material"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// computeDirectLighting estimates radiance arriving from the candidate light
// samples, shadow-tested and balanced against scatter sampling with the
// power heuristic. The estimate averages over every candidate drawn, so
// degenerate candidates still count toward the divisor.
func computeDirectLighting(sctx *shading.Context, sp *shading.Point, bsdf material.BSDF, inputs material.Inputs, candidates []lights.Sample) core.Spectrum {
	var total core.Spectrum
	if len(candidates) == 0 {
		return total
	}

	for _, candidate := range candidates {
		if candidate.Probability <= 0 || candidate.Radiance.IsBlack() {
			continue
		}

		// Lights below the surface contribute nothing
		cosIn := candidate.Direction.Dot(sp.ShadingNormal)
		if cosIn <= 0 {
			continue
		}

		value, scatterProb := bsdf.Evaluate(inputs, sp.GeometricNormal, sp.Basis, sp.Outgoing, candidate.Direction)
		if value.IsBlack() {
			continue
		}

		// Shadow probe stops short of the light surface itself
		shadowRay := core.NewRay(sp.Position, candidate.Direction)
		if sctx.Intersector().TraceProbe(shadowRay, shading.RayEpsilon, candidate.Distance-shading.RayEpsilon) {
			continue
		}

		// Dirac candidates cannot be reached by scatter sampling, so they
		// skip the balance entirely
		weight := 1.0
		if !candidate.Dirac {
			weight = core.MISPower2(candidate.Probability, scatterProb)
		}

		contribution := value.Mul(candidate.Radiance).Scale(cosIn * weight / candidate.Probability)
		total = total.Add(contribution)
	}

	return total.Scale(1.0 / float64(len(candidates)))
}
