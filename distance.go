package complexitydyn

import (
	"fmt"
	"math"
)

// DefaultDepth is the truncation depth N used when callers have no better choice.
const DefaultDepth = 80

// Distance computes the complexity quasi-metric truncated at depth terms:
//
//	d_C(f, g) = Σ_{n=1}^{N} 2^{-n} · max(0, 1/g(n) − 1/f(n))
//
// The result is zero whenever f(n) ≤ g(n) for every probed n, so moving from a
// faster function to a slower one is free while the reverse is not. The 2^{-n}
// weights make early indices dominate; a larger N only refines precision.
//
// A non-positive, NaN or infinite value of f or g returns a *DomainError.
func Distance(f, g GrowthFunction, depth int) (float64, error) {
	if depth < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}

	total := 0.0
	weight := 1.0
	for n := 1; n <= depth; n++ {
		weight *= 0.5

		fn := f.Evaluate(n)
		if !positive(fn) {
			return 0, &DomainError{Side: "f", Index: n, Value: fn}
		}
		gn := g.Evaluate(n)
		if !positive(gn) {
			return 0, &DomainError{Side: "g", Index: n, Value: gn}
		}

		if delta := 1.0/gn - 1.0/fn; delta > 0 {
			total += weight * delta
		}
	}

	return total, nil
}

// MustDistance is like Distance but panics on error.
// Use it only with functions known to be positive, e.g. in examples.
func MustDistance(f, g GrowthFunction, depth int) float64 {
	d, err := Distance(f, g, depth)
	if err != nil {
		panic(fmt.Sprintf("complexitydyn: distance failed: %v", err))
	}
	return d
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Direction selects which orientation of the quasi-metric a scan evaluates.
type Direction int

const (
	Forward     Direction = iota // d(f, g)
	Reverse                      // d(g, f)
	Symmetrized                  // max(d(f, g), d(g, f))
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Symmetrized:
		return "symmetrized"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DirectedDistance evaluates the quasi-metric in the requested orientation.
func DirectedDistance(dir Direction, f, g GrowthFunction, depth int) (float64, error) {
	switch dir {
	case Forward:
		return Distance(f, g, depth)
	case Reverse:
		return Distance(g, f, depth)
	case Symmetrized:
		return SymmetrizedDistance(f, g, depth)
	default:
		return 0, fmt.Errorf("complexitydyn: unknown direction %d", int(dir))
	}
}

// SymmetrizedDistance returns d^s(f, g) = max(d(f, g), d(g, f)).
func SymmetrizedDistance(f, g GrowthFunction, depth int) (float64, error) {
	fwd, err := Distance(f, g, depth)
	if err != nil {
		return 0, err
	}
	bwd, err := Distance(g, f, depth)
	if err != nil {
		return 0, err
	}
	return math.Max(fwd, bwd), nil
}
