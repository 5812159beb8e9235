package aov

import (
	"math"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// Depth tracks the closest hit distance among the accumulated samples
type Depth struct {
	accumulator
	minDistance float64
}

// NewDepth creates a depth accumulator
func NewDepth() *Depth {
	d := &Depth{}
	d.Reset()
	return d
}

// Name implements the Accumulator interface
func (d *Depth) Name() string { return "depth" }

// Reset implements the Accumulator interface
func (d *Depth) Reset() {
	d.accumulator.Reset()
	d.minDistance = math.Inf(1)
}

// Accumulate implements the Accumulator interface
func (d *Depth) Accumulate(sp *shading.Point, value core.Spectrum, alpha float64) {
	if sp == nil {
		return
	}
	d.minDistance = math.Min(d.minDistance, sp.Distance)
	d.count++
}

// Flush implements the Accumulator interface. With no hits the slot keeps
// an infinite distance and zero alpha.
func (d *Depth) Flush(result *shading.Result) {
	if d.count == 0 {
		result.AOVs[d.slot] = shading.AOVValue{Color: core.GraySpectrum(math.Inf(1))}
		return
	}
	result.AOVs[d.slot] = shading.AOVValue{Color: core.GraySpectrum(d.minDistance), Alpha: 1}
}
