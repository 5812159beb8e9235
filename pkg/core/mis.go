package core

// MISPower2 computes the power heuristic (exponent 2) weight for combining
// two sampling strategies. q1 is the density of the strategy that produced
// the sample, q2 the density of the competing strategy.
// See Veach's thesis, section 9.2.
func MISPower2(q1, q2 float64) float64 {
	if q1 <= 0 {
		return 0
	}
	if q2 <= 0 {
		return 1
	}
	w1 := q1 * q1
	w2 := q2 * q2
	return w1 / (w1 + w2)
}

// MISBalance computes the balance heuristic weight for two strategies
func MISBalance(q1, q2 float64) float64 {
	if q1 <= 0 {
		return 0
	}
	if q2 <= 0 {
		return 1
	}
	return q1 / (q1 + q2)
}
