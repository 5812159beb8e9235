package scene

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/geometry"
	"github.com/df07/go-lighting-kernel/pkg/lights"
	"github.com/df07/go-lighting-kernel/pkg/material"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera      *Camera
	Shapes      []geometry.Shape
	Lights      []lights.Light
	Environment material.EnvironmentEDF

	intersector  *geometry.List
	lightSampler *lights.UniformSampler
}

// New creates an empty scene with the given camera
func New(camera *Camera) *Scene {
	return &Scene{Camera: camera}
}

// AddShape adds an object to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddQuadLight adds a rectangular area light to the scene, registering its
// surface for ray intersection as well
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, radiance core.Spectrum) {
	light := lights.NewQuadLight(corner, u, v, radiance)
	s.Lights = append(s.Lights, light)
	s.Shapes = append(s.Shapes, light.Quad)
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position core.Vec3, intensity core.Spectrum) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
}

// SetEnvironment sets the scene environment
func (s *Scene) SetEnvironment(environment material.EnvironmentEDF) {
	s.Environment = environment
}

// Preprocess builds the intersector and light sampler once the scene is
// fully assembled. Call it before rendering; adding to the scene afterwards
// requires preprocessing again.
func (s *Scene) Preprocess() {
	s.intersector = geometry.NewList(s, s.Shapes...)
	s.lightSampler = lights.NewUniformSampler(s.Lights...)
}

// EnvironmentEDF implements the shading scene back-reference
func (s *Scene) EnvironmentEDF() material.EnvironmentEDF {
	return s.Environment
}

// Intersector returns the scene intersector, valid after Preprocess
func (s *Scene) Intersector() shading.Intersector {
	return s.intersector
}

// LightSampler returns the scene light sampler, valid after Preprocess
func (s *Scene) LightSampler() lights.Sampler {
	return s.lightSampler
}
