package lighting

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Params contains the engine configuration
type Params struct {
	MaxReflectionDepth int `yaml:"max_reflection_depth"` // Reflection bounce cap
	MaxRefractionDepth int `yaml:"max_refraction_depth"` // Refraction bounce cap
	MinPathLength      int `yaml:"minimum_path_length"`  // Russian roulette starts at this vertex count
	DLSampleCount      int `yaml:"dl_samples"`           // Light samples per vertex
	IBLBSDFSampleCount int `yaml:"ibl_bsdf_samples"`     // BSDF samples for image-based lighting
	IBLEnvSampleCount  int `yaml:"ibl_env_samples"`      // Environment samples for image-based lighting
}

// DefaultParams creates the default engine configuration
func DefaultParams() Params {
	return Params{
		MaxReflectionDepth: 8,
		MaxRefractionDepth: 8,
		MinPathLength:      3,
		DLSampleCount:      1,
		IBLBSDFSampleCount: 2,
		IBLEnvSampleCount:  2,
	}
}

// LoadParams overlays a YAML file onto the default configuration. Keys
// absent from the file keep their defaults. The result is not validated;
// validation happens when a factory is built from it.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("reading params file: %w", err)
	}

	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parsing params file: %w", err)
	}

	return params, nil
}

// Validate reports the first invalid parameter value
func (p Params) Validate() error {
	if p.MaxReflectionDepth < 0 {
		return fmt.Errorf("max_reflection_depth must be non-negative, got %d", p.MaxReflectionDepth)
	}
	if p.MaxRefractionDepth < 0 {
		return fmt.Errorf("max_refraction_depth must be non-negative, got %d", p.MaxRefractionDepth)
	}
	if p.MinPathLength < 1 {
		return fmt.Errorf("minimum_path_length must be at least 1, got %d", p.MinPathLength)
	}
	if p.DLSampleCount < 0 {
		return fmt.Errorf("dl_samples must be non-negative, got %d", p.DLSampleCount)
	}
	if p.IBLBSDFSampleCount < 0 {
		return fmt.Errorf("ibl_bsdf_samples must be non-negative, got %d", p.IBLBSDFSampleCount)
	}
	if p.IBLEnvSampleCount < 0 {
		return fmt.Errorf("ibl_env_samples must be non-negative, got %d", p.IBLEnvSampleCount)
	}
	return nil
}
