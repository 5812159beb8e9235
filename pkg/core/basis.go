package core

import "math"

// Basis is an orthonormal coordinate frame around a unit normal.
// Local coordinates put the normal along +Z.
type Basis struct {
	Tangent   Vec3
	Bitangent Vec3
	Normal    Vec3
}

// NewBasis builds an orthonormal frame from a unit normal
func NewBasis(normal Vec3) Basis {
	// Pick a helper axis that is not parallel to the normal
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return Basis{Tangent: tangent, Bitangent: bitangent, Normal: normal}
}

// ToWorld transforms a local-frame vector (normal along +Z) to world space
func (b Basis) ToWorld(v Vec3) Vec3 {
	return b.Tangent.Multiply(v.X).
		Add(b.Bitangent.Multiply(v.Y)).
		Add(b.Normal.Multiply(v.Z))
}

// ToLocal transforms a world-space vector into the local frame
func (b Basis) ToLocal(v Vec3) Vec3 {
	return Vec3{
		X: v.Dot(b.Tangent),
		Y: v.Dot(b.Bitangent),
		Z: v.Dot(b.Normal),
	}
}
