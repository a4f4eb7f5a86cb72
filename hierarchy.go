package complexitydyn

// Separation is the outcome of a hierarchy-separation search.
// An exhausted window yields Found=false and Distance=0. K is always
// serialized; read it together with Found.
type Separation struct {
	Found    bool    `json:"found" yaml:"found"`
	K        int     `json:"k" yaml:"k"`
	Distance float64 `json:"distance" yaml:"distance"`
}

// FindHierarchySeparation finds the first iterate k ∈ [-m, m] at which the
// symmetrized distance d^s(ψ_α^k(f), ψ_α^k(g)) exceeds delta.
//
// For f·log f = o(g) the time hierarchy theorem separates the two classes;
// here that shows up as a symmetrized distance above delta. Both directions
// are taken so that a pair differing only by a constant factor, which can
// look far apart in one direction, is not reported as separated.
func FindHierarchySeparation(f, g GrowthFunction, alpha, delta float64, m, depth int) (Separation, error) {
	if err := validateBound("m", m); err != nil {
		return Separation{}, err
	}
	return findSeparation(f, g, alpha, delta, -m, m, depth)
}

// FindHierarchySeparationForward is FindHierarchySeparation restricted to the
// forward iterates k ∈ [0, m].
func FindHierarchySeparationForward(f, g GrowthFunction, alpha, delta float64, m, depth int) (Separation, error) {
	if err := validateBound("m", m); err != nil {
		return Separation{}, err
	}
	return findSeparation(f, g, alpha, delta, 0, m, depth)
}

func findSeparation(f, g GrowthFunction, alpha, delta float64, from, to, depth int) (Separation, error) {
	hit, err := ScanOrbit(ScanRequest{
		F:         f,
		G:         g,
		Alpha:     alpha,
		From:      from,
		To:        to,
		Depth:     depth,
		Direction: Symmetrized,
		Stop:      Exceeds(delta),
	})
	if err != nil {
		return Separation{}, err
	}
	if !hit.Found {
		return Separation{}, nil
	}
	return Separation{Found: true, K: hit.K, Distance: hit.Distance}, nil
}
