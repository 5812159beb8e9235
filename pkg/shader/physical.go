package shader

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/lighting"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// PhysicalSurfaceShader shades with a lighting engine: the sample color is
// the engine's computed radiance, fully opaque
type PhysicalSurfaceShader struct {
	engine lighting.Engine
}

// NewPhysicalSurfaceShader creates a shader around the given engine
func NewPhysicalSurfaceShader(engine lighting.Engine) *PhysicalSurfaceShader {
	return &PhysicalSurfaceShader{engine: engine}
}

// Shade implements the SurfaceShader interface
func (s *PhysicalSurfaceShader) Shade(sampler core.Sampler, sctx *shading.Context, sp *shading.Point, result *shading.Result) {
	result.Color = s.engine.ComputeLighting(sampler, sctx, sp)
	result.Alpha = 1
}
