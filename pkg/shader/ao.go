package shader

import (
	"fmt"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// Default ambient occlusion configuration
const (
	DefaultAOSampleCount = 16
	DefaultAOMaxDistance = 1.0
)

// AOSurfaceShader shades with ambient accessibility: white where the
// hemisphere is open, black where nearby geometry closes it off
type AOSurfaceShader struct {
	sampleCount int
	maxDistance float64
}

// NewAOSurfaceShader creates an ambient occlusion shader probing up to
// maxDistance with sampleCount hemisphere samples
func NewAOSurfaceShader(sampleCount int, maxDistance float64) (*AOSurfaceShader, error) {
	if sampleCount <= 0 {
		return nil, fmt.Errorf("ao sample count must be positive, got %d", sampleCount)
	}
	if maxDistance <= 0 {
		return nil, fmt.Errorf("ao max distance must be positive, got %g", maxDistance)
	}
	return &AOSurfaceShader{sampleCount: sampleCount, maxDistance: maxDistance}, nil
}

// Shade implements the SurfaceShader interface
func (s *AOSurfaceShader) Shade(sampler core.Sampler, sctx *shading.Context, sp *shading.Point, result *shading.Result) {
	occlusion := shading.SampleOcclusion(sampler, sctx.Intersector(), sp.Position, sp.Basis,
		s.maxDistance, s.sampleCount)
	result.Color = core.GraySpectrum(1 - occlusion)
	result.Alpha = 1
}
