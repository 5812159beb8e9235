package lighting

import (
	"math"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/material"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// PathVertex carries the per-bounce state handed to a VertexVisitor
type PathVertex struct {
	Point           *shading.Point
	Throughput      core.Spectrum           // Path throughput up to this vertex
	PathLength      int                     // 1 at the first vertex
	PrevMode        material.ScatteringMode // Scattering mode that reached this vertex
	PrevProbability float64                 // Solid-angle density of the reaching sample
}

// VertexVisitor is the per-vertex policy a PathTracer walks with
type VertexVisitor interface {
	// Visit returns the radiance leaving the vertex toward its outgoing
	// direction. The tracer weights it by the path throughput.
	Visit(sampler core.Sampler, sctx *shading.Context, vertex *PathVertex) core.Spectrum

	// EnvironmentRadiance reports radiance for a ray escaping the scene;
	// ok false means escaping rays contribute nothing
	EnvironmentRadiance(sctx *shading.Context, ray core.Ray) (core.Spectrum, bool)
}

// PathTracerConfig bundles the walk limits for a PathTracer
type PathTracerConfig struct {
	AllowedModes       material.ScatteringMode // Modes allowed to extend the path
	Adjoint            bool                    // True when tracing from the lights instead of the eye
	MinPathLength      int                     // No Russian roulette below this vertex count
	MaxReflectionDepth int
	MaxRefractionDepth int
}

// PathTracer walks scatter paths through a scene, delegating per-vertex work
// to a visitor
type PathTracer struct {
	visitor VertexVisitor
	config  PathTracerConfig
}

// NewPathTracer creates a path tracer with the given visitor policy
func NewPathTracer(visitor VertexVisitor, config PathTracerConfig) *PathTracer {
	return &PathTracer{
		visitor: visitor,
		config:  config,
	}
}

// Trace walks a path starting at sp and returns the accumulated radiance
// along with the number of vertices visited. The first vertex counts as a
// specular arrival, so emissive surfaces seen directly report full emission.
func (pt *PathTracer) Trace(sampler core.Sampler, sctx *shading.Context, sp *shading.Point) (core.Spectrum, int) {
	vertex := PathVertex{
		Point:      sp,
		Throughput: core.GraySpectrum(1),
		PathLength: 1,
		PrevMode:   material.ScatteringSpecular,
	}

	reflections, refractions := 0, 0
	var radiance core.Spectrum

	for {
		vertexRadiance := pt.visitor.Visit(sampler, sctx, &vertex)
		radiance = radiance.Add(vertexRadiance.Mul(vertex.Throughput))

		mat := vertex.Point.Material
		if mat == nil || mat.BSDF == nil {
			break
		}

		inputs := mat.EvaluateInputs(sctx.TextureCache(), vertex.Point.UV, vertex.Point.Position)
		sample := mat.BSDF.Sample(sampler, inputs, vertex.Point.GeometricNormal, vertex.Point.Basis, vertex.Point.Outgoing)
		if sample.Mode == material.ScatteringNone || !pt.config.AllowedModes.Has(sample.Mode) {
			break
		}

		// A sign flip across the geometric normal means the path crossed the
		// surface: count it against the refraction cap, otherwise reflection
		cosOut := vertex.Point.Outgoing.Dot(vertex.Point.GeometricNormal)
		if sample.Incoming.Dot(vertex.Point.GeometricNormal)*cosOut < 0 {
			refractions++
			if refractions > pt.config.MaxRefractionDepth {
				break
			}
		} else {
			reflections++
			if reflections > pt.config.MaxReflectionDepth {
				break
			}
		}

		if sample.Mode.Has(material.ScatteringSpecular) {
			// Delta samples fold the cosine and density into their value
			vertex.Throughput = vertex.Throughput.Mul(sample.Value)
		} else {
			if sample.Probability <= 0 {
				break
			}
			cosIn := math.Abs(sample.Incoming.Dot(vertex.Point.ShadingNormal))
			if pt.config.Adjoint {
				cosIn = math.Abs(sample.Incoming.Dot(vertex.Point.GeometricNormal))
			}
			vertex.Throughput = vertex.Throughput.Mul(sample.Value).Scale(cosIn / sample.Probability)
		}

		// Russian roulette once the path is long enough; survivors carry the
		// inverse survival probability so the estimate stays unbiased
		if vertex.PathLength >= pt.config.MinPathLength {
			survival := math.Min(1.0, vertex.Throughput.Luminance())
			if sampler.Get1D() >= survival {
				break
			}
			vertex.Throughput = vertex.Throughput.Scale(1.0 / survival)
		}

		ray := core.NewRay(vertex.Point.Position, sample.Incoming)
		next, isHit := sctx.Intersector().Trace(ray, shading.RayEpsilon, math.Inf(1))
		if !isHit {
			if envRadiance, ok := pt.visitor.EnvironmentRadiance(sctx, ray); ok {
				radiance = radiance.Add(envRadiance.Mul(vertex.Throughput))
			}
			break
		}

		vertex.PathLength++
		vertex.Point = &next
		vertex.PrevMode = sample.Mode
		vertex.PrevProbability = sample.Probability
	}

	return radiance, vertex.PathLength
}
