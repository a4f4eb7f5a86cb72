package complexitydyn

import (
	"fmt"
	"strings"
	"testing"
)

// AssertionConfig contains numeric tolerances for the quasi-metric properties.
type AssertionConfig struct {
	// Maximum |ratio − 1| accepted by AssertHyperbolic
	RatioTolerance float64

	// Distances at or below this value count as zero
	ZeroTolerance float64

	// Truncation depth used by assertions that evaluate distances themselves
	Depth int
}

// DefaultAssertionConfig returns tight floating-point tolerances.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RatioTolerance: 1e-9,
		ZeroTolerance:  1e-12,
		Depth:          DefaultDepth,
	}
}

// AssertHyperbolic verifies exact contraction at rate 1/α.
//
// Mathematical property:
//
//	d_C(ψ^n f, ψ^n g) / ((1/α)^n · d_C(f, g)) = 1 for every n
//
// Samples with an undefined ratio (d_C(f, g) = 0) are accepted only if the
// actual distance is zero as well.
func AssertHyperbolic(t *testing.T, report HyperbolicityReport, cfg AssertionConfig) {
	t.Helper()

	if msg := hyperbolicFailures(report, cfg); msg != "" {
		t.Error(msg)
		return
	}

	t.Logf("✓ Exact contraction at rate 1/%g over %d iterates (max deviation %.2e)",
		report.Alpha, len(report.Samples), report.MaxDeviation())
}

// hyperbolicFailures returns one line per offending sample under a header,
// or "" when the contraction is exact.
func hyperbolicFailures(report HyperbolicityReport, cfg AssertionConfig) string {
	var failures []string
	for _, s := range report.Samples {
		if s.Undefined() {
			if s.Actual > cfg.ZeroTolerance {
				failures = append(failures, fmt.Sprintf(
					"  n=%d: predicted 0 but actual=%.8g", s.N, s.Actual))
			}
			continue
		}
		if dev := s.Ratio - 1; dev > cfg.RatioTolerance || -dev > cfg.RatioTolerance {
			failures = append(failures, fmt.Sprintf(
				"  n=%d: actual=%.8g predicted=%.8g ratio=%.9f",
				s.N, s.Actual, s.Predicted, s.Ratio))
		}
	}
	if len(failures) == 0 {
		return ""
	}
	return fmt.Sprintf("Contraction is not exact (α=%g, d0=%.8g):\n%s",
		report.Alpha, report.D0, strings.Join(failures, "\n"))
}

// AssertQuasiMetricZero verifies d_C(f, g) = 0, i.e. f(n) ≤ g(n) up to cfg.Depth.
func AssertQuasiMetricZero(t *testing.T, f, g GrowthFunction, cfg AssertionConfig) {
	t.Helper()

	d, err := Distance(f, g, cfg.Depth)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if d > cfg.ZeroTolerance {
		t.Errorf("Expected d_C(f, g) = 0, got %.10f (f is not dominated by g)", d)
		return
	}

	t.Logf("✓ d_C(f, g) = 0 (moving to a slower class is free)")
}

// AssertSpanningMonotone verifies the two monotonicity properties of greedy
// spanning counts:
//
//   - non-increasing in eps at a fixed horizon (coarser never needs more)
//   - non-decreasing in horizon at a fixed eps
func AssertSpanningMonotone(t *testing.T, result SpanningResult) {
	t.Helper()

	if msg := spanningFailures(result); msg != "" {
		t.Error(msg)
		return
	}

	t.Logf("✓ Spanning counts monotone across %d thresholds", len(result))
}

func spanningFailures(result SpanningResult) string {
	var failures []string
	thresholds := result.Thresholds() // coarse → fine

	for _, eps := range thresholds {
		counts := result[eps]
		for i := 1; i < len(counts); i++ {
			if counts[i].Count < counts[i-1].Count {
				failures = append(failures, fmt.Sprintf(
					"  eps=%g: horizon %d→%d count %d→%d (decreased)",
					eps, counts[i-1].Horizon, counts[i].Horizon,
					counts[i-1].Count, counts[i].Count))
			}
		}
	}

	for i := 1; i < len(thresholds); i++ {
		coarse, fine := result[thresholds[i-1]], result[thresholds[i]]
		for h := 0; h < len(coarse) && h < len(fine); h++ {
			if coarse[h].Count > fine[h].Count {
				failures = append(failures, fmt.Sprintf(
					"  horizon %d: eps=%g needs %d > eps=%g needs %d",
					coarse[h].Horizon, thresholds[i-1], coarse[h].Count,
					thresholds[i], fine[h].Count))
			}
		}
	}

	if len(failures) == 0 {
		return ""
	}
	return "Spanning counts are not monotone:\n" + strings.Join(failures, "\n")
}

// PrintHyperbolicity outputs the contraction table to the test log.
func PrintHyperbolicity(t *testing.T, report HyperbolicityReport) {
	t.Helper()

	t.Logf("\n=== Hyperbolicity (α=%g) ===", report.Alpha)
	t.Logf("d_C(f,g) = %.6f", report.D0)
	for _, s := range report.Samples {
		t.Logf("  n=%2d  actual=%.8f  predicted=%.8f  ratio=%.6f",
			s.N, s.Actual, s.Predicted, s.Ratio)
	}
}

// PrintEntropyTable outputs spanning counts and entropy rates to the test log.
func PrintEntropyTable(t *testing.T, result SpanningResult) {
	t.Helper()

	t.Logf("\n=== Spanning Sets ===")
	for _, eps := range result.Thresholds() {
		t.Logf("eps = %g:", eps)
		for _, r := range EntropyRates(result[eps]) {
			t.Logf("  n=%2d, spanning count=%d, h_est=%.4f", r.Horizon, r.Count, r.Rate)
		}
	}
}
