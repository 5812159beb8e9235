package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "Head-on reflection",
			vector:   NewVec3(0, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "45 degree reflection",
			vector:   NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "Grazing reflection",
			vector:   NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Reflect(tt.normal)

			const tolerance = 1e-9
			assert.InDelta(t, 0, result.Subtract(tt.expected).Length(), tolerance)
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	assert.InDelta(t, 1.0, v.Length(), 1e-12)
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Y, 1e-12)

	// Zero vector stays zero instead of producing NaN
	zero := NewVec3(0, 0, 0).Normalize()
	assert.Equal(t, NewVec3(0, 0, 0), zero)
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	z := x.Cross(y)
	assert.Equal(t, NewVec3(0, 0, 1), z)

	// Anti-commutative
	assert.Equal(t, NewVec3(0, 0, -1), y.Cross(x))

	// Orthogonal to both operands
	assert.InDelta(t, 0, z.Dot(x), 1e-12)
	assert.InDelta(t, 0, z.Dot(y), 1e-12)
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 2))

	assert.Equal(t, NewVec3(1, 2, 3), r.At(0))
	assert.Equal(t, NewVec3(1, 2, 7), r.At(2))
}

func TestVec3_LengthSquared(t *testing.T) {
	v := NewVec3(1, 2, 2)
	assert.Equal(t, 9.0, v.LengthSquared())
	assert.InDelta(t, 3.0, v.Length(), 1e-12)
}
