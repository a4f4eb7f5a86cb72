package complexitydyn

// Expansiveness is the outcome of CheckExpansive. K is the first separating
// iterate and is only meaningful when Separated is true. K is always
// serialized, since 0 is a valid separating iterate.
type Expansiveness struct {
	Separated bool `json:"separated" yaml:"separated"`
	K         int  `json:"k" yaml:"k"`
}

// CheckExpansive scans the symmetric window k ∈ [-m, m] in increasing order
// and reports the first iterate where d_C(ψ_α^k(f), ψ_α^k(g)) > delta.
//
// ψ_α is expansive with constant delta when every distinct pair of orbits
// separates by more than delta at some iterate. With alpha = 1 every iterate
// equals the unscaled pair, so the result reduces to d_C(f, g) > delta; that
// is the non-expansive boundary case.
//
// Not finding a separation inside the window is a normal outcome.
func CheckExpansive(f, g GrowthFunction, alpha, delta float64, m, depth int) (Expansiveness, error) {
	if err := validateBound("m", m); err != nil {
		return Expansiveness{}, err
	}

	hit, err := ScanOrbit(ScanRequest{
		F:         f,
		G:         g,
		Alpha:     alpha,
		From:      -m,
		To:        m,
		Depth:     depth,
		Direction: Forward,
		Stop:      Exceeds(delta),
	})
	if err != nil {
		return Expansiveness{}, err
	}

	return Expansiveness{Separated: hit.Found, K: hit.K}, nil
}
