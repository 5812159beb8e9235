package shading

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
)

// MaxAOVCount is the fixed number of AOV slots a shading result carries
const MaxAOVCount = 32

// AOVValue is one AOV slot of a shading result
type AOVValue struct {
	Color core.Spectrum
	Alpha float64
}

// Result is the per-sample shading output: the main (beauty) color and
// alpha, plus the AOV slots written by accumulator flushes. The zero value
// is a fully transparent black sample.
type Result struct {
	Color core.Spectrum
	Alpha float64
	AOVs  [MaxAOVCount]AOVValue
}
