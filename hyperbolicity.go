package complexitydyn

import (
	"fmt"
	"math"
)

// ContractionSample compares the observed distance at forward iterate N with
// the distance predicted by exact contraction at rate 1/α.
type ContractionSample struct {
	N         int     `json:"n" yaml:"n"`
	Actual    float64 `json:"actual" yaml:"actual"`
	Predicted float64 `json:"predicted" yaml:"predicted"`
	Ratio     float64 `json:"ratio" yaml:"ratio"` // +Inf when Predicted == 0
}

// Undefined reports whether the ratio is the +Inf sentinel used when the
// predicted distance is exactly zero (e.g. f == g).
func (s ContractionSample) Undefined() bool {
	return math.IsInf(s.Ratio, 1)
}

// HyperbolicityReport holds the diagnostics of VerifyHyperbolicity.
type HyperbolicityReport struct {
	Alpha   float64             `json:"alpha" yaml:"alpha"`
	D0      float64             `json:"d0" yaml:"d0"`
	Samples []ContractionSample `json:"samples" yaml:"samples"`
}

// MaxDeviation returns max |ratio − 1| over samples with a defined ratio,
// or 0 when no ratio is defined.
func (r HyperbolicityReport) MaxDeviation() float64 {
	worst := 0.0
	for _, s := range r.Samples {
		if s.Undefined() {
			continue
		}
		worst = math.Max(worst, math.Abs(s.Ratio-1))
	}
	return worst
}

// VerifyHyperbolicity checks exponential contraction along the stable direction:
//
//	d_C(ψ_α^n(f), ψ_α^n(g)) = (1/α)^n · d_C(f, g)
//
// For n = 1..maxN it records the actual distance, the predicted distance and
// their ratio. A ratio of 1 at every n confirms exact contraction. The report
// is diagnostic only; interpreting it is left to the caller.
func VerifyHyperbolicity(f, g GrowthFunction, alpha float64, maxN, depth int) (HyperbolicityReport, error) {
	if err := validateAlpha(alpha); err != nil {
		return HyperbolicityReport{}, err
	}
	if err := validateBound("maxN", maxN); err != nil {
		return HyperbolicityReport{}, err
	}

	d0, err := Distance(f, g, depth)
	if err != nil {
		return HyperbolicityReport{}, err
	}

	report := HyperbolicityReport{
		Alpha:   alpha,
		D0:      d0,
		Samples: make([]ContractionSample, 0, maxN),
	}

	lambda := 1.0 / alpha
	for n := 1; n <= maxN; n++ {
		actual, err := Distance(Scale(f, alpha, n), Scale(g, alpha, n), depth)
		if err != nil {
			return HyperbolicityReport{}, fmt.Errorf("iterate n=%d: %w", n, err)
		}

		predicted := math.Pow(lambda, float64(n)) * d0
		ratio := math.Inf(1)
		if predicted > 0 {
			ratio = actual / predicted
		}

		report.Samples = append(report.Samples, ContractionSample{
			N:         n,
			Actual:    actual,
			Predicted: predicted,
			Ratio:     ratio,
		})
	}

	return report, nil
}
