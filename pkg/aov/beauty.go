package aov

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// Beauty averages the main radiance and alpha of the accumulated samples.
// Its flush writes the result's primary color rather than an AOV slot.
type Beauty struct {
	accumulator
}

// NewBeauty creates a beauty accumulator
func NewBeauty() *Beauty {
	return &Beauty{}
}

// Name implements the Accumulator interface
func (b *Beauty) Name() string { return "beauty" }

// Accumulate implements the Accumulator interface. Samples that hit nothing
// still count toward the average as transparent black.
func (b *Beauty) Accumulate(sp *shading.Point, value core.Spectrum, alpha float64) {
	b.color = b.color.Add(value)
	b.alpha += alpha
	b.count++
}

// Flush implements the Accumulator interface
func (b *Beauty) Flush(result *shading.Result) {
	if b.count == 0 {
		result.Color = core.Spectrum{}
		result.Alpha = 0
		return
	}

	scale := 1.0 / float64(b.count)
	result.Color = b.color.Scale(scale)
	result.Alpha = b.alpha * scale
}
