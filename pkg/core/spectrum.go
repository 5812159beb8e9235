package core

import "math"

// SpectrumBands is the number of wavelength bands carried by a Spectrum.
const SpectrumBands = 3

// Spectrum holds radiometric intensity as a fixed-length vector of
// wavelength-band values. With three bands the values map to linear RGB.
// The zero value is black.
type Spectrum [SpectrumBands]float64

// NewSpectrum creates a spectrum from per-band values
func NewSpectrum(r, g, b float64) Spectrum {
	return Spectrum{r, g, b}
}

// GraySpectrum creates a spectrum with the same value in every band
func GraySpectrum(value float64) Spectrum {
	return Spectrum{value, value, value}
}

// Add returns the band-wise sum of two spectra
func (s Spectrum) Add(other Spectrum) Spectrum {
	return Spectrum{s[0] + other[0], s[1] + other[1], s[2] + other[2]}
}

// Mul returns the band-wise product of two spectra
func (s Spectrum) Mul(other Spectrum) Spectrum {
	return Spectrum{s[0] * other[0], s[1] * other[1], s[2] * other[2]}
}

// Scale returns the spectrum scaled by a scalar
func (s Spectrum) Scale(scalar float64) Spectrum {
	return Spectrum{s[0] * scalar, s[1] * scalar, s[2] * scalar}
}

// Lerp linearly interpolates between two spectra
func (s Spectrum) Lerp(other Spectrum, t float64) Spectrum {
	return s.Scale(1 - t).Add(other.Scale(t))
}

// MaxComponent returns the largest band value
func (s Spectrum) MaxComponent() float64 {
	return math.Max(s[0], math.Max(s[1], s[2]))
}

// Luminance returns the perceptual luminance of an RGB spectrum
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (s Spectrum) Luminance() float64 {
	return 0.299*s[0] + 0.587*s[1] + 0.114*s[2]
}

// IsBlack reports whether every band is zero
func (s Spectrum) IsBlack() bool {
	return s[0] == 0 && s[1] == 0 && s[2] == 0
}

// IsValid reports whether every band is finite and non-negative
func (s Spectrum) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// Clamp returns a spectrum with every band clamped to [min, max]
func (s Spectrum) Clamp(minVal, maxVal float64) Spectrum {
	return Spectrum{
		max(minVal, min(maxVal, s[0])),
		max(minVal, min(maxVal, s[1])),
		max(minVal, min(maxVal, s[2])),
	}
}

// GammaCorrect applies gamma correction to color values
func (s Spectrum) GammaCorrect(gamma float64) Spectrum {
	invGamma := 1.0 / gamma
	return Spectrum{
		math.Pow(s[0], invGamma),
		math.Pow(s[1], invGamma),
		math.Pow(s[2], invGamma),
	}
}
