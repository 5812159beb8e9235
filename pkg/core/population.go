package core

import "math"

// Population tracks the running distribution of a stream of values without
// storing them: size, extrema, mean and standard deviation.
type Population struct {
	size int64
	min  float64
	max  float64
	mean float64
	m2   float64 // aggregated squared distance from the mean (Welford)
}

// Insert adds a value to the population
func (p *Population) Insert(value float64) {
	p.size++
	if p.size == 1 {
		p.min = value
		p.max = value
	} else {
		p.min = math.Min(p.min, value)
		p.max = math.Max(p.max, value)
	}

	delta := value - p.mean
	p.mean += delta / float64(p.size)
	p.m2 += delta * (value - p.mean)
}

// Size returns the number of inserted values
func (p *Population) Size() int64 {
	return p.size
}

// Min returns the smallest inserted value, or 0 for an empty population
func (p *Population) Min() float64 {
	if p.size == 0 {
		return 0
	}
	return p.min
}

// Max returns the largest inserted value, or 0 for an empty population
func (p *Population) Max() float64 {
	if p.size == 0 {
		return 0
	}
	return p.max
}

// Mean returns the running mean, or 0 for an empty population
func (p *Population) Mean() float64 {
	return p.mean
}

// StdDev returns the population standard deviation
func (p *Population) StdDev() float64 {
	if p.size == 0 {
		return 0
	}
	return math.Sqrt(p.m2 / float64(p.size))
}
