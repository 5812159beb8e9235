package lighting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()

	assert.Equal(t, 8, params.MaxReflectionDepth)
	assert.Equal(t, 8, params.MaxRefractionDepth)
	assert.Equal(t, 3, params.MinPathLength)
	assert.Equal(t, 1, params.DLSampleCount)
	assert.Equal(t, 2, params.IBLBSDFSampleCount)
	assert.Equal(t, 2, params.IBLEnvSampleCount)
}

func TestLoadParams_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	content := "max_reflection_depth: 4\ndl_samples: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	params, err := LoadParams(path)
	require.NoError(t, err)

	// Keys in the file replace defaults, keys absent from it keep them
	assert.Equal(t, 4, params.MaxReflectionDepth)
	assert.Equal(t, 3, params.DLSampleCount)
	assert.Equal(t, 8, params.MaxRefractionDepth)
	assert.Equal(t, 3, params.MinPathLength)
	assert.Equal(t, 2, params.IBLBSDFSampleCount)
	assert.Equal(t, 2, params.IBLEnvSampleCount)
}

func TestLoadParams_MissingFile(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading params file")
}

func TestLoadParams_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_reflection_depth: [4\n"), 0o644))

	_, err := LoadParams(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing params file")
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Params)
		wantErr string
	}{
		{
			name:   "Defaults",
			modify: func(p *Params) {},
		},
		{
			name:   "ZeroDepthsAllowed",
			modify: func(p *Params) { p.MaxReflectionDepth = 0; p.MaxRefractionDepth = 0 },
		},
		{
			name:   "ZeroSampleCountsAllowed",
			modify: func(p *Params) { p.DLSampleCount = 0; p.IBLBSDFSampleCount = 0; p.IBLEnvSampleCount = 0 },
		},
		{
			name:    "NegativeReflectionDepth",
			modify:  func(p *Params) { p.MaxReflectionDepth = -1 },
			wantErr: "max_reflection_depth",
		},
		{
			name:    "NegativeRefractionDepth",
			modify:  func(p *Params) { p.MaxRefractionDepth = -2 },
			wantErr: "max_refraction_depth",
		},
		{
			name:    "ZeroMinPathLength",
			modify:  func(p *Params) { p.MinPathLength = 0 },
			wantErr: "minimum_path_length must be at least 1, got 0",
		},
		{
			name:    "NegativeDLSamples",
			modify:  func(p *Params) { p.DLSampleCount = -1 },
			wantErr: "dl_samples",
		},
		{
			name:    "NegativeIBLBSDFSamples",
			modify:  func(p *Params) { p.IBLBSDFSampleCount = -1 },
			wantErr: "ibl_bsdf_samples",
		},
		{
			name:    "NegativeIBLEnvSamples",
			modify:  func(p *Params) { p.IBLEnvSampleCount = -3 },
			wantErr: "ibl_env_samples",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultParams()
			tt.modify(&params)

			err := params.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
