package complexitydyn

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GrowthFunction models the resource usage of an algorithm as a function of
// input size: a mapping from a positive integer n to a positive real.
//
// Implementations must be strictly positive over every index a caller probes.
// A zero or negative value is a contract violation and surfaces as ErrDomain
// from the distance engine.
type GrowthFunction interface {
	Evaluate(n int) float64
}

// GrowthFunc adapts an ordinary function to GrowthFunction.
type GrowthFunc func(n int) float64

// Evaluate calls fn(n).
func (fn GrowthFunc) Evaluate(n int) float64 { return fn(n) }

// named is a catalog entry that also knows how to print itself.
type named struct {
	name string
	fn   func(n int) float64
}

func (g named) Evaluate(n int) float64 { return g.fn(n) }
func (g named) String() string         { return g.name }

// Linear is f(n) = n.
var Linear GrowthFunction = named{"n", func(n int) float64 { return float64(n) }}

// Quadratic is f(n) = n².
var Quadratic GrowthFunction = named{"n^2", func(n int) float64 { return float64(n) * float64(n) }}

// SquareRoot is f(n) = √n.
var SquareRoot GrowthFunction = named{"sqrt(n)", func(n int) float64 { return math.Sqrt(float64(n)) }}

// NLogN is f(n) = n·log(n+1). The +1 keeps f(1) positive.
var NLogN GrowthFunction = named{"nlogn", func(n int) float64 {
	x := float64(n)
	return x * math.Log(x+1)
}}

// NLogSquared is f(n) = n·log(n+1)², the canonical "just above n log n" class
// used for hierarchy separation.
var NLogSquared GrowthFunction = named{"nlog2n", func(n int) float64 {
	x := float64(n)
	l := math.Log(x + 1)
	return x * l * l
}}

// Power returns f(n) = n^p.
func Power(p float64) GrowthFunction {
	return named{fmt.Sprintf("n^%g", p), func(n int) float64 { return math.Pow(float64(n), p) }}
}

// Shifted returns f(n) = n + c.
func Shifted(c float64) GrowthFunction {
	return named{fmt.Sprintf("n+%g", c), func(n int) float64 { return float64(n) + c }}
}

// Multiple returns f(n) = c·n.
func Multiple(c float64) GrowthFunction {
	return named{fmt.Sprintf("%gn", c), func(n int) float64 { return c * float64(n) }}
}

// CappedExponential returns f(n) = 2^min(n, limit). The cap keeps the value
// finite for large truncation depths.
func CappedExponential(limit int) GrowthFunction {
	return named{"2^n", func(n int) float64 {
		if n > limit {
			n = limit
		}
		return math.Ldexp(1, n)
	}}
}

// DefaultExponentCap keeps 2^n finite for ParseGrowth("2^n").
const DefaultExponentCap = 50

// ParseGrowth maps a short textual expression to a catalog function.
//
// Recognized forms (spaces ignored, case-insensitive):
//
//	n          n^2        n^0.5       sqrt(n)
//	n+10       3n  3*n    nlogn       nlog2n
//	2^n
//
// Numeric forms that would leave the positive domain (a factor ≤ 0, a shift
// ≤ -1, NaN or ±Inf) return ErrDomain.
func ParseGrowth(expr string) (GrowthFunction, error) {
	s := strings.ToLower(strings.ReplaceAll(expr, " ", ""))

	switch s {
	case "n":
		return Linear, nil
	case "n^2", "n**2":
		return Quadratic, nil
	case "sqrt(n)", "n^0.5":
		return SquareRoot, nil
	case "nlogn", "n*log(n+1)":
		return NLogN, nil
	case "nlog2n", "nlog^2n", "n*log(n+1)^2":
		return NLogSquared, nil
	case "2^n", "2**n":
		return CappedExponential(DefaultExponentCap), nil
	}

	if rest, ok := strings.CutPrefix(s, "n^"); ok {
		p, err := strconv.ParseFloat(rest, 64)
		if err == nil {
			if !finite(p) {
				return nil, fmt.Errorf("%w: %q: exponent must be finite", ErrDomain, expr)
			}
			return Power(p), nil
		}
	}
	if rest, ok := strings.CutPrefix(s, "n+"); ok {
		c, err := strconv.ParseFloat(rest, 64)
		if err == nil {
			// n+c must already be positive at n = 1.
			if !finite(c) || c <= -1 {
				return nil, fmt.Errorf("%w: %q: shift must be finite and > -1", ErrDomain, expr)
			}
			return Shifted(c), nil
		}
	}
	if rest, ok := strings.CutSuffix(s, "n"); ok {
		rest = strings.TrimSuffix(rest, "*")
		c, err := strconv.ParseFloat(rest, 64)
		if err == nil {
			if !finite(c) || c <= 0 {
				return nil, fmt.Errorf("%w: %q: factor must be finite and > 0", ErrDomain, expr)
			}
			return Multiple(c), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownGrowth, expr)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Scaled is ψ_α^k(f): the base function multiplied pointwise by α^k.
//
// It is a plain value. Base, Alpha and K are copied at construction and the
// factor α^k is computed once, so scaled variants built inside a loop never
// share state with each other.
type Scaled struct {
	Base   GrowthFunction
	Alpha  float64
	K      int
	factor float64
}

// Scale applies the scaling transformation k times: n ↦ α^k·f(n).
// k may be negative; α = 1 yields the identity.
func Scale(f GrowthFunction, alpha float64, k int) Scaled {
	return Scaled{
		Base:   f,
		Alpha:  alpha,
		K:      k,
		factor: math.Pow(alpha, float64(k)),
	}
}

// Evaluate returns α^k·f(n).
func (s Scaled) Evaluate(n int) float64 {
	return s.factor * s.Base.Evaluate(n)
}

// Factor returns α^k.
func (s Scaled) Factor() float64 { return s.factor }

func (s Scaled) String() string {
	return fmt.Sprintf("%g^%d·%v", s.Alpha, s.K, s.Base)
}
