package complexitydyn

import (
	"errors"
	"fmt"
	"math"
)

// Predicate decides whether a distance observed at iterate k ends a scan.
type Predicate func(distance float64) bool

// Exceeds returns a predicate that fires once the distance is strictly above threshold.
func Exceeds(threshold float64) Predicate {
	return func(d float64) bool { return d > threshold }
}

// ScanRequest describes one pass over the orbit of a pair (f, g) under ψ_α.
//
// For k = From..To (inclusive, increasing) both functions are scaled by α^k,
// the distance in the requested Direction is computed and Stop is consulted.
// The scan ends at the first k where Stop returns true.
type ScanRequest struct {
	F, G      GrowthFunction
	Alpha     float64
	From, To  int
	Depth     int
	Direction Direction
	Stop      Predicate
}

// ScanHit is the outcome of ScanOrbit. K and Distance are only meaningful
// when Found is true; an exhausted window is a normal result, not an error.
type ScanHit struct {
	Found    bool
	K        int
	Distance float64
}

// ScanOrbit runs the shared scan-compute-compare loop used by the
// expansiveness, hierarchy-separation and stable-set analyses.
func ScanOrbit(req ScanRequest) (ScanHit, error) {
	if err := validateAlpha(req.Alpha); err != nil {
		return ScanHit{}, err
	}
	if req.Stop == nil {
		return ScanHit{}, errors.New("complexitydyn: scan has no stop predicate")
	}

	for k := req.From; k <= req.To; k++ {
		fk := Scale(req.F, req.Alpha, k)
		gk := Scale(req.G, req.Alpha, k)

		d, err := DirectedDistance(req.Direction, fk, gk, req.Depth)
		if err != nil {
			return ScanHit{}, fmt.Errorf("iterate k=%d: %w", k, err)
		}

		if req.Stop(d) {
			return ScanHit{Found: true, K: k, Distance: d}, nil
		}
	}

	return ScanHit{}, nil
}

// OrbitPoint is one sample of an orbit trajectory.
type OrbitPoint struct {
	K        int     `json:"k" yaml:"k"`
	Distance float64 `json:"distance" yaml:"distance"`
}

// Orbit records d_C(ψ_α^k(f), g) for k = from..to: how the distance from the
// orbit of f to a fixed reference g evolves under iteration. Only f is scaled.
// A nil g defaults to the linear reference n.
func Orbit(f, g GrowthFunction, alpha float64, from, to, depth int) ([]OrbitPoint, error) {
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}
	if to < from {
		return nil, fmt.Errorf("%w: empty range [%d, %d]", ErrInvalidBound, from, to)
	}
	if g == nil {
		g = Linear
	}

	trajectory := make([]OrbitPoint, 0, to-from+1)
	for k := from; k <= to; k++ {
		d, err := Distance(Scale(f, alpha, k), g, depth)
		if err != nil {
			return nil, fmt.Errorf("iterate k=%d: %w", k, err)
		}
		trajectory = append(trajectory, OrbitPoint{K: k, Distance: d})
	}

	return trajectory, nil
}

func validateAlpha(alpha float64) error {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidAlpha, alpha)
	}
	return nil
}

func validateBound(name string, m int) error {
	if m < 0 {
		return fmt.Errorf("%w: %s=%d", ErrInvalidBound, name, m)
	}
	return nil
}
