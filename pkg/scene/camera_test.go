package scene

import (
	"testing"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestCamera_CenterRayPointsAtTarget(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, -4),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	})

	ray := camera.GetRay(0.5, 0.5)
	assert.Equal(t, core.NewVec3(0, 0, -4), ray.Origin)

	direction := ray.Direction.Normalize()
	assert.InDelta(t, 0.0, direction.X, 1e-12)
	assert.InDelta(t, 0.0, direction.Y, 1e-12)
	assert.InDelta(t, 1.0, direction.Z, 1e-12)
}

func TestCamera_ScreenEdgesMirror(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, -4),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60.0,
		AspectRatio: 2.0,
	})

	left := camera.GetRay(0, 0.5).Direction
	right := camera.GetRay(1, 0.5).Direction

	assert.InDelta(t, -right.X, left.X, 1e-12)
	assert.InDelta(t, right.Y, left.Y, 1e-12)
	assert.InDelta(t, right.Z, left.Z, 1e-12)
	assert.NotZero(t, left.X)
}
