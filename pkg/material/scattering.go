package material

// ScatteringMode is a bitmask of scattering component types. BSDF sampling
// reports the component that produced a sample, and path tracing restricts
// continuation to an allowed set of modes.
type ScatteringMode int

const (
	// ScatteringNone marks an absorbed sample (no scattering)
	ScatteringNone ScatteringMode = 0
	// ScatteringDiffuse marks view-independent scattering (e.g. Lambertian)
	ScatteringDiffuse ScatteringMode = 1 << 0
	// ScatteringGlossy marks directional but non-singular scattering
	ScatteringGlossy ScatteringMode = 1 << 1
	// ScatteringSpecular marks singular (Dirac delta) scattering
	ScatteringSpecular ScatteringMode = 1 << 2

	// ScatteringAll combines every scattering component
	ScatteringAll = ScatteringDiffuse | ScatteringGlossy | ScatteringSpecular
)

// Has reports whether the mask contains all components of other
func (m ScatteringMode) Has(other ScatteringMode) bool {
	return m&other == other
}

// String returns a readable name for the mode
func (m ScatteringMode) String() string {
	switch m {
	case ScatteringNone:
		return "none"
	case ScatteringDiffuse:
		return "diffuse"
	case ScatteringGlossy:
		return "glossy"
	case ScatteringSpecular:
		return "specular"
	default:
		s := ""
		for _, c := range []struct {
			mode ScatteringMode
			name string
		}{
			{ScatteringDiffuse, "diffuse"},
			{ScatteringGlossy, "glossy"},
			{ScatteringSpecular, "specular"},
		} {
			if m.Has(c.mode) {
				if s != "" {
					s += "|"
				}
				s += c.name
			}
		}
		return s
	}
}
