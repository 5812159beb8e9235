package scene

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/geometry"
	"github.com/df07/go-lighting-kernel/pkg/material"
)

// NewCornellScene creates a classic Cornell box scene with quad walls, a
// ceiling area light, and mirror and glass spheres
func NewCornellScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0, // Square aspect ratio for Cornell box
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New(NewCamera(cameraConfig))

	white := material.NewLambertian(core.NewSpectrum(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewSpectrum(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewSpectrum(0.12, 0.45, 0.15))

	// Cornell box dimensions (standard 555x555x555 units).
	// Edge order puts each wall's U×V normal on the inside of the box;
	// the intersector reports raw quad normals and shading rejects
	// back-facing views.
	boxSize := 555.0

	// Floor (white) - XZ plane at y=0
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		white,
	))

	// Ceiling (white) - XZ plane at y=boxSize
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white,
	))

	// Back wall (white) - XY plane at z=boxSize
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		white,
	))

	// Left wall (red) - YZ plane at x=0
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
		red,
	))

	// Right wall (green) - YZ plane at x=boxSize
	s.AddShape(geometry.NewQuad(
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		green,
	))

	// Ceiling light, a smaller quad slightly below the ceiling emitting
	// downward into the box
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.AddQuadLight(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		core.GraySpectrum(15.0),
	)

	// Left sphere (mirror)
	s.AddShape(geometry.NewSphere(
		core.NewVec3(185, 82.5, 169),
		82.5,
		material.NewMirror(core.NewSpectrum(0.8, 0.8, 0.9)),
	))

	// Right sphere (glass)
	s.AddShape(geometry.NewSphere(
		core.NewVec3(370, 90, 351),
		90,
		material.NewGlass(1.5),
	))

	s.Preprocess()
	return s
}
