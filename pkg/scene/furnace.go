package scene

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/geometry"
	"github.com/df07/go-lighting-kernel/pkg/material"
)

// NewFurnaceScene creates a gray sphere under a uniform white environment.
// The render has a closed-form answer: every sphere pixel converges to
// albedo times the environment radiance, which makes the scene a quick
// end-to-end sanity check.
func NewFurnaceScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Center:      core.NewVec3(0, 0, -4),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New(NewCamera(cameraConfig))

	s.AddShape(geometry.NewSphere(
		core.NewVec3(0, 0, 0),
		1.0,
		material.NewLambertian(core.GraySpectrum(0.5)),
	))
	s.SetEnvironment(material.NewUniformEnvironmentEDF(core.GraySpectrum(1.0)))

	s.Preprocess()
	return s
}
