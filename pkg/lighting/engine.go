package lighting

import (
	"fmt"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/lights"
	"github.com/df07/go-lighting-kernel/pkg/material"
	"github.com/df07/go-lighting-kernel/pkg/shading"
	"github.com/google/uuid"
)

// Engine computes the radiance leaving a shading point toward its outgoing
// direction
type Engine interface {
	// ComputeLighting returns accumulated radiance for the point. The result
	// is finite and non-negative; no contribution means zero radiance,
	// never an error.
	ComputeLighting(sampler core.Sampler, sctx *shading.Context, sp *shading.Point) core.Spectrum

	// Statistics returns a snapshot of the engine's counters
	Statistics() StatisticsSnapshot
}

// PathTracingEngine gathers direct lighting, image-based lighting and
// emission at every vertex of a glossy/specular scatter path. Engines hold
// per-instance mutable state; hand one to each worker.
type PathTracingEngine struct {
	id     uuid.UUID
	tracer *PathTracer
	stats  Statistics
}

func newPathTracingEngine(lightSampler lights.Sampler, params Params) *PathTracingEngine {
	visitor := newPathVisitor(lightSampler, params)
	tracer := NewPathTracer(visitor, PathTracerConfig{
		AllowedModes:       material.ScatteringGlossy | material.ScatteringSpecular,
		Adjoint:            false,
		MinPathLength:      params.MinPathLength,
		MaxReflectionDepth: params.MaxReflectionDepth,
		MaxRefractionDepth: params.MaxRefractionDepth,
	})

	return &PathTracingEngine{
		id:     uuid.New(),
		tracer: tracer,
	}
}

// ComputeLighting implements the Engine interface
func (e *PathTracingEngine) ComputeLighting(sampler core.Sampler, sctx *shading.Context, sp *shading.Point) core.Spectrum {
	radiance, depth := e.tracer.Trace(sampler, sctx, sp)
	e.stats.RecordPath(depth)

	if !radiance.IsValid() {
		Logger().Debug("discarding invalid radiance sample", "engine", e.id)
		return core.Spectrum{}
	}
	return radiance
}

// ID returns the engine identity carried by statistics snapshots
func (e *PathTracingEngine) ID() uuid.UUID {
	return e.id
}

// Statistics implements the Engine interface
func (e *PathTracingEngine) Statistics() StatisticsSnapshot {
	return e.stats.Snapshot(e.id)
}

// EngineFactory builds engines sharing one light sampler and configuration
type EngineFactory struct {
	lightSampler lights.Sampler
	params       Params
}

// NewEngineFactory validates the configuration once and returns a factory.
// Construction is the only place configuration errors surface.
func NewEngineFactory(lightSampler lights.Sampler, params Params) (*EngineFactory, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine params: %w", err)
	}
	return &EngineFactory{lightSampler: lightSampler, params: params}, nil
}

// Create returns a fresh engine with its own visitor and statistics.
// Engines from the same factory share nothing mutable.
func (f *EngineFactory) Create() *PathTracingEngine {
	engine := newPathTracingEngine(f.lightSampler, f.params)
	Logger().Debug("created path tracing engine", "engine", engine.id)
	return engine
}

// CreateWith builds an engine from an explicit sampler and configuration
// instead of the factory's own
func (f *EngineFactory) CreateWith(lightSampler lights.Sampler, params Params) (*PathTracingEngine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine params: %w", err)
	}
	return newPathTracingEngine(lightSampler, params), nil
}
