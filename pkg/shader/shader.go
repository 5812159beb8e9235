package shader

import (
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// SurfaceShader turns a shading point into a per-sample shading result
type SurfaceShader interface {
	Shade(sampler core.Sampler, sctx *shading.Context, sp *shading.Point, result *shading.Result)
}
