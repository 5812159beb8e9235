package aov

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// Accumulator collects one output channel across the samples of a pixel.
// Accumulators are stateful between Reset calls and not safe for concurrent
// use; each worker owns its own set.
type Accumulator interface {
	// Name identifies the channel, used for output file naming
	Name() string

	// Reset returns the accumulator to its initial state
	Reset()

	// Accumulate folds one shading sample into the channel. A nil shading
	// point marks a sample whose primary ray hit nothing.
	Accumulate(sp *shading.Point, value core.Spectrum, alpha float64)

	// Flush writes the accumulated channel into the result
	Flush(result *shading.Result)

	setSlot(index int)
}

// accumulator carries the state shared by every channel: the slot assigned
// by the owning container and the running sums
type accumulator struct {
	slot  int
	color core.Spectrum
	alpha float64
	count int
}

func (a *accumulator) setSlot(index int) {
	a.slot = index
}

// Reset clears the running sums
func (a *accumulator) Reset() {
	a.color = core.Spectrum{}
	a.alpha = 0
	a.count = 0
}

// Flush is a no-op for channels with no output sink
func (a *accumulator) Flush(result *shading.Result) {}
