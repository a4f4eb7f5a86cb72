package complexitydyn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceFunctions = map[string]GrowthFunction{
	"n":       Linear,
	"n^2":     Quadratic,
	"sqrt(n)": SquareRoot,
	"n+0.5":   Shifted(0.5),
	"2n":      Multiple(2),
	"nlogn":   NLogN,
	"nlog2n":  NLogSquared,
	"2^n":     CappedExponential(DefaultExponentCap),
}

// TestDistance_SelfIsZero verifies d_C(f, f) = 0 for every depth.
func TestDistance_SelfIsZero(t *testing.T) {
	for name, f := range referenceFunctions {
		for _, depth := range []int{1, 10, 80, 100} {
			d, err := Distance(f, f, depth)
			require.NoError(t, err, "%s at N=%d", name, depth)
			assert.Equal(t, 0.0, d, "d_C(%s, %s) at N=%d", name, name, depth)
		}
	}
}

// TestDistance_DominatedIsZero verifies f ≤ g pointwise implies d_C(f, g) = 0.
func TestDistance_DominatedIsZero(t *testing.T) {
	cfg := DefaultAssertionConfig()
	cfg.Depth = 100

	AssertQuasiMetricZero(t, Linear, Quadratic, cfg)
	AssertQuasiMetricZero(t, Linear, Shifted(0.5), cfg)
	AssertQuasiMetricZero(t, SquareRoot, Linear, cfg)
	AssertQuasiMetricZero(t, Quadratic, Power(3), cfg)
}

// TestDistance_ExponentialNotDominating checks n² against 2^n. The two cross at
// n = 3 (9 > 8), so only that term contributes: 2^-3 · (1/8 − 1/9) = 1/576.
func TestDistance_ExponentialNotDominating(t *testing.T) {
	d, err := Distance(Quadratic, CappedExponential(DefaultExponentCap), 100)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/576, d, 1e-15)

	t.Logf("✓ d_C(n², 2^n) = %.10f (only n=3 contributes)", d)
}

// TestDistance_Asymmetric checks the reference values for n and n².
func TestDistance_Asymmetric(t *testing.T) {
	fwd, err := Distance(Linear, Quadratic, 100)
	require.NoError(t, err)
	bwd, err := Distance(Quadratic, Linear, 100)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, fwd, 1e-12)
	assert.InDelta(t, 0.11090665, bwd, 1e-8)

	t.Logf("✓ d_C(n, n²) = %.8f (fast → slow: free)", fwd)
	t.Logf("✓ d_C(n², n) = %.8f (slow → fast: costly)", bwd)
}

// TestDistance_MonotoneInDepth verifies adding terms never lowers the sum.
func TestDistance_MonotoneInDepth(t *testing.T) {
	pairs := [][2]GrowthFunction{
		{Quadratic, Linear},
		{Linear, SquareRoot},
		{Shifted(0.5), Linear},
		{NLogSquared, NLogN},
	}

	for i, p := range pairs {
		prev := 0.0
		for depth := 1; depth <= 100; depth++ {
			d, err := Distance(p[0], p[1], depth)
			require.NoError(t, err)
			require.GreaterOrEqual(t, d, prev, "pair %d: N=%d decreased", i, depth)
			prev = d
		}
	}
}

// TestDistance_ScalingIdentity verifies d_C(α^k f, α^k g) = α^{-k} d_C(f, g)
// for every pair and every k in [-20, 20] at α = 2.
func TestDistance_ScalingIdentity(t *testing.T) {
	const alpha = 2.0

	for nf, f := range referenceFunctions {
		for ng, g := range referenceFunctions {
			base, err := Distance(f, g, DefaultDepth)
			require.NoError(t, err)

			for k := -20; k <= 20; k++ {
				d, err := Distance(Scale(f, alpha, k), Scale(g, alpha, k), DefaultDepth)
				require.NoError(t, err)

				want := math.Pow(alpha, float64(-k)) * base
				assert.InDelta(t, want, d, 1e-9*math.Max(1, want),
					"d_C(%s, %s) at k=%d", nf, ng, k)
			}
		}
	}
}

// TestDistance_DomainViolation verifies non-positive values are reported, not swallowed.
func TestDistance_DomainViolation(t *testing.T) {
	zeroAtThree := GrowthFunc(func(n int) float64 { return float64(3 - n) })

	_, err := Distance(Linear, zeroAtThree, 10)
	require.ErrorIs(t, err, ErrDomain)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "g", de.Side)
	assert.Equal(t, 3, de.Index)
	assert.Equal(t, 0.0, de.Value)

	_, err = Distance(GrowthFunc(func(int) float64 { return math.NaN() }), Linear, 5)
	require.ErrorIs(t, err, ErrDomain)

	// Within depth 2 the function is still positive.
	_, err = Distance(Linear, zeroAtThree, 2)
	assert.NoError(t, err)
}

// TestDistance_InvalidDepth rejects N < 1.
func TestDistance_InvalidDepth(t *testing.T) {
	_, err := Distance(Linear, Quadratic, 0)
	assert.ErrorIs(t, err, ErrInvalidDepth)
}

func TestDirectedDistance(t *testing.T) {
	fwd, err := DirectedDistance(Forward, Quadratic, Linear, DefaultDepth)
	require.NoError(t, err)
	rev, err := DirectedDistance(Reverse, Quadratic, Linear, DefaultDepth)
	require.NoError(t, err)
	sym, err := DirectedDistance(Symmetrized, Quadratic, Linear, DefaultDepth)
	require.NoError(t, err)

	assert.Greater(t, fwd, 0.0)
	assert.Equal(t, 0.0, rev)
	assert.Equal(t, fwd, sym)

	_, err = DirectedDistance(Direction(42), Linear, Linear, DefaultDepth)
	assert.Error(t, err)
	assert.Equal(t, "symmetrized", Symmetrized.String())
}

func TestMustDistance_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustDistance(Linear, GrowthFunc(func(int) float64 { return -1 }), 3)
	})
	assert.InDelta(t, 0.11090665, MustDistance(Quadratic, Linear, 100), 1e-8)
}
