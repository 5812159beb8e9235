package scene

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/geometry"
	"github.com/df07/go-lighting-kernel/pkg/material"
)

// NewGroundQuad creates a large horizontal quad centered at the given point
// with its normal pointing up, a finite stand-in for an infinite ground
// plane
func NewGroundQuad(center core.Vec3, size float64, mat *material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}

// NewDefaultScene creates a sphere showcase on a checkered ground under a
// gradient sky
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 16.0 / 9.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New(NewCamera(cameraConfig))

	// Checks repeat in quad UV space, so the scale is sized to the ground
	// quad to give a few-unit check near the origin
	ground := material.NewTexturedLambertian(material.NewCheckerColor(
		core.NewSpectrum(0.2, 0.35, 0.2),
		core.NewSpectrum(0.9, 0.9, 0.9),
		4000.0,
	))
	blue := material.NewLambertian(core.NewSpectrum(0.1, 0.2, 0.5))
	silver := material.NewMirror(core.NewSpectrum(0.8, 0.8, 0.8))

	s.AddShape(NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0, ground))

	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, blue))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, silver))
	s.AddShape(geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, material.NewGlass(1.5)))

	// A distant key light; the sky gradient provides the fill
	s.AddPointLight(core.NewVec3(30, 30, 15), core.GraySpectrum(900))
	s.SetEnvironment(material.NewGradientEnvironmentEDF(
		core.NewSpectrum(0.5, 0.7, 1.0), // blue sky overhead
		core.GraySpectrum(1.0),          // white toward the horizon
	))

	s.Preprocess()
	return s
}
