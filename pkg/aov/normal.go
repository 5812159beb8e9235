package aov

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// Normal averages the shading normals of the accumulated samples and remaps
// them into displayable color range on flush
type Normal struct {
	accumulator
	sum core.Vec3
}

// NewNormal creates a normal accumulator
func NewNormal() *Normal {
	return &Normal{}
}

// Name implements the Accumulator interface
func (n *Normal) Name() string { return "normal" }

// Reset implements the Accumulator interface
func (n *Normal) Reset() {
	n.accumulator.Reset()
	n.sum = core.Vec3{}
}

// Accumulate implements the Accumulator interface
func (n *Normal) Accumulate(sp *shading.Point, value core.Spectrum, alpha float64) {
	if sp == nil {
		return
	}
	n.sum = n.sum.Add(sp.ShadingNormal)
	n.count++
}

// Flush implements the Accumulator interface. The averaged normal is
// renormalized and remapped from [-1, 1] to [0, 1] per component.
func (n *Normal) Flush(result *shading.Result) {
	if n.count == 0 {
		result.AOVs[n.slot] = shading.AOVValue{}
		return
	}

	// Opposing normals can cancel; a zero sum stays a zero normal and
	// remaps to mid-gray
	normal := n.sum.Normalize()
	result.AOVs[n.slot] = shading.AOVValue{
		Color: core.NewSpectrum(
			0.5*(normal.X+1),
			0.5*(normal.Y+1),
			0.5*(normal.Z+1)),
		Alpha: 1,
	}
}
