package aov

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// Container holds the accumulators for one worker and forwards sample and
// lifecycle events to them in insertion order. Slot indices match insertion
// order, so the accumulator at position i flushes into AOV slot i.
type Container struct {
	accumulators [shading.MaxAOVCount]Accumulator
	size         int
}

// NewContainer creates a container with the given accumulators, then adds
// a default beauty accumulator if none was supplied
func NewContainer(accumulators ...Accumulator) *Container {
	c := &Container{}
	for _, acc := range accumulators {
		c.Insert(acc)
	}
	if !c.containsBeauty() {
		c.Insert(NewBeauty())
	}
	return c
}

// Insert registers an accumulator and assigns its slot. It reports false
// when the container is full or when a beauty accumulator is already
// registered.
func (c *Container) Insert(acc Accumulator) bool {
	if c.size == len(c.accumulators) {
		return false
	}
	if _, isBeauty := acc.(*Beauty); isBeauty && c.containsBeauty() {
		return false
	}

	acc.setSlot(c.size)
	c.accumulators[c.size] = acc
	c.size++
	return true
}

// Size returns the number of registered accumulators
func (c *Container) Size() int {
	return c.size
}

// Accumulators returns the registered accumulators in insertion order
func (c *Container) Accumulators() []Accumulator {
	return c.accumulators[:c.size]
}

// Reset returns every accumulator to its initial state
func (c *Container) Reset() {
	for i := 0; i < c.size; i++ {
		c.accumulators[i].Reset()
	}
}

// Accumulate folds one shading sample into every accumulator
func (c *Container) Accumulate(sp *shading.Point, value core.Spectrum, alpha float64) {
	for i := 0; i < c.size; i++ {
		c.accumulators[i].Accumulate(sp, value, alpha)
	}
}

// Flush writes every accumulated channel into the result
func (c *Container) Flush(result *shading.Result) {
	for i := 0; i < c.size; i++ {
		c.accumulators[i].Flush(result)
	}
}

func (c *Container) containsBeauty() bool {
	for i := 0; i < c.size; i++ {
		if _, ok := c.accumulators[i].(*Beauty); ok {
			return true
		}
	}
	return false
}
