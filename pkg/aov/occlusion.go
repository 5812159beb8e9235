package aov

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// Occlusion estimates ambient accessibility at each accumulated point. It
// casts its own hemisphere probes with its own sampler, independent of the
// sampler driving the main shading.
type Occlusion struct {
	accumulator
	intersector shading.Intersector
	sampler     core.Sampler
	sampleCount int
	maxDistance float64
	sum         float64
}

// NewOcclusion creates an occlusion accumulator probing up to maxDistance
// with sampleCount hemisphere samples per accumulated point
func NewOcclusion(intersector shading.Intersector, sampler core.Sampler, sampleCount int, maxDistance float64) *Occlusion {
	return &Occlusion{
		intersector: intersector,
		sampler:     sampler,
		sampleCount: sampleCount,
		maxDistance: maxDistance,
	}
}

// Name implements the Accumulator interface
func (o *Occlusion) Name() string { return "occlusion" }

// Reset implements the Accumulator interface
func (o *Occlusion) Reset() {
	o.accumulator.Reset()
	o.sum = 0
}

// Accumulate implements the Accumulator interface
func (o *Occlusion) Accumulate(sp *shading.Point, value core.Spectrum, alpha float64) {
	if sp == nil {
		return
	}

	occlusion := shading.SampleOcclusion(o.sampler, o.intersector, sp.Position, sp.Basis,
		o.maxDistance, o.sampleCount)
	o.sum += 1 - occlusion
	o.count++
}

// Flush implements the Accumulator interface
func (o *Occlusion) Flush(result *shading.Result) {
	if o.count == 0 {
		result.AOVs[o.slot] = shading.AOVValue{}
		return
	}

	accessibility := o.sum / float64(o.count)
	result.AOVs[o.slot] = shading.AOVValue{Color: core.GraySpectrum(accessibility), Alpha: 1}
}
