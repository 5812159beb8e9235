package material

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
)

// EDF models emission at a surface
type EDF interface {
	// Evaluate returns radiance emitted toward outgoing. Directions behind
	// the surface receive nothing.
	Evaluate(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) core.Spectrum
}

// DiffuseEDF emits constant radiance over the front hemisphere
type DiffuseEDF struct{}

// Evaluate implements the EDF interface
func (e *DiffuseEDF) Evaluate(inputs Inputs, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) core.Spectrum {
	if outgoing.Dot(basis.Normal) <= 0 {
		return core.Spectrum{}
	}
	return inputs.Radiance
}
