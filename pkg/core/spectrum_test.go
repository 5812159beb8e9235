package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpectrum_Arithmetic(t *testing.T) {
	a := NewSpectrum(0.1, 0.2, 0.3)
	b := NewSpectrum(0.4, 0.5, 0.6)

	sum := a.Add(b)
	assert.InDelta(t, 0.5, sum[0], 1e-12)
	assert.InDelta(t, 0.7, sum[1], 1e-12)
	assert.InDelta(t, 0.9, sum[2], 1e-12)

	prod := a.Mul(b)
	assert.InDelta(t, 0.04, prod[0], 1e-12)
	assert.InDelta(t, 0.10, prod[1], 1e-12)
	assert.InDelta(t, 0.18, prod[2], 1e-12)

	scaled := a.Scale(2)
	assert.InDelta(t, 0.2, scaled[0], 1e-12)
	assert.InDelta(t, 0.4, scaled[1], 1e-12)
	assert.InDelta(t, 0.6, scaled[2], 1e-12)
}

func TestSpectrum_Luminance(t *testing.T) {
	white := GraySpectrum(1.0)
	assert.InDelta(t, 1.0, white.Luminance(), 1e-12)

	green := NewSpectrum(0, 1, 0)
	assert.InDelta(t, 0.587, green.Luminance(), 1e-12)
}

func TestSpectrum_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		spectrum Spectrum
		valid    bool
	}{
		{name: "Zero (black)", spectrum: Spectrum{}, valid: true},
		{name: "Positive values", spectrum: NewSpectrum(0.5, 1.0, 2.0), valid: true},
		{name: "NaN band", spectrum: NewSpectrum(0.5, math.NaN(), 0.5), valid: false},
		{name: "Infinite band", spectrum: NewSpectrum(math.Inf(1), 0, 0), valid: false},
		{name: "Negative band", spectrum: NewSpectrum(-0.1, 0.5, 0.5), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.spectrum.IsValid())
		})
	}
}

func TestSpectrum_IsBlack(t *testing.T) {
	assert.True(t, Spectrum{}.IsBlack())
	assert.False(t, NewSpectrum(0, 0, 1e-9).IsBlack())
}

func TestSpectrum_ClampAndGamma(t *testing.T) {
	s := NewSpectrum(-0.5, 0.25, 2.0).Clamp(0, 1)
	assert.Equal(t, NewSpectrum(0, 0.25, 1), s)

	// Gamma 2.0 is a square root per band
	g := NewSpectrum(0.25, 1.0, 0.0).GammaCorrect(2.0)
	assert.InDelta(t, 0.5, g[0], 1e-12)
	assert.InDelta(t, 1.0, g[1], 1e-12)
	assert.InDelta(t, 0.0, g[2], 1e-12)
}

func TestSpectrum_MaxComponent(t *testing.T) {
	assert.Equal(t, 0.9, NewSpectrum(0.3, 0.9, 0.1).MaxComponent())
	assert.Equal(t, 0.0, Spectrum{}.MaxComponent())
}
