package complexitydyn

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// AnalysisConfig collects the numeric parameters shared by the analyses.
type AnalysisConfig struct {
	Depth   int       `yaml:"depth"`   // Truncation depth N
	Alpha   float64   `yaml:"alpha"`   // Scale factor α
	Delta   float64   `yaml:"delta"`   // Separation / stability threshold
	Bound   int       `yaml:"bound"`   // Iterate window M
	MaxN    int       `yaml:"max_n"`   // Forward horizon for hyperbolicity and entropy
	Eps     []float64 `yaml:"eps"`     // Entropy resolution thresholds
	Workers int       `yaml:"workers"` // Entropy matrix parallelism (0 = GOMAXPROCS)
}

// DefaultAnalysisConfig returns the reference parameters: α = 2, δ = 0.01, M = 50.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Depth:   DefaultDepth,
		Alpha:   2.0,
		Delta:   0.01,
		Bound:   50,
		MaxN:    20,
		Eps:     []float64{0.1, 0.01},
		Workers: 0,
	}
}

// Validate reports every invalid field at once.
func (c AnalysisConfig) Validate() error {
	var errs []error
	if c.Depth < 1 {
		errs = append(errs, fmt.Errorf("depth=%d: %w", c.Depth, ErrInvalidDepth))
	}
	if err := validateAlpha(c.Alpha); err != nil {
		errs = append(errs, err)
	}
	if math.IsNaN(c.Delta) || c.Delta < 0 {
		errs = append(errs, fmt.Errorf("%w: delta=%g", ErrInvalidThreshold, c.Delta))
	}
	if err := validateBound("bound", c.Bound); err != nil {
		errs = append(errs, err)
	}
	if err := validateBound("max_n", c.MaxN); err != nil {
		errs = append(errs, err)
	}
	for _, e := range c.Eps {
		if math.IsNaN(e) || e < 0 {
			errs = append(errs, fmt.Errorf("%w: eps=%g", ErrInvalidThreshold, e))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Scenario is a YAML-described analysis run: parameters plus growth functions
// given as ParseGrowth expressions.
//
//	config:
//	  alpha: 2
//	  delta: 0.01
//	reference: n
//	candidates: [n^2, n+10, sqrt(n)]
//	collection: [n, n+1, n^2, nlogn, 2n]
//	pairs:
//	  - {f: n, g: nlog2n}
type Scenario struct {
	Config     AnalysisConfig `yaml:"config"`
	Reference  string         `yaml:"reference"`
	Candidates []string       `yaml:"candidates"`
	Collection []string       `yaml:"collection"`
	Pairs      []PairSpec     `yaml:"pairs"`
}

// PairSpec names two growth functions to compare.
type PairSpec struct {
	F string `yaml:"f"`
	G string `yaml:"g"`
}

// DefaultScenario reproduces the reference examples: f(n) = n against the
// stable-set candidates, the five-function entropy collection and the
// hierarchy pairs.
func DefaultScenario() Scenario {
	return Scenario{
		Config:     DefaultAnalysisConfig(),
		Reference:  "n",
		Candidates: []string{"n^2", "n+10", "sqrt(n)"},
		Collection: []string{"n", "n+1", "n^2", "nlogn", "2n"},
		Pairs: []PairSpec{
			{F: "n", G: "n+0.5"},
			{F: "n", G: "nlog2n"},
			{F: "n^2", G: "2^n"},
		},
	}
}

// LoadScenario reads and validates a YAML scenario file.
// Fields missing from the file keep their DefaultScenario values.
func LoadScenario(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("load scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(b)
	if err != nil {
		return Scenario{}, fmt.Errorf("load scenario %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes a YAML scenario over DefaultScenario and validates it.
func ParseScenario(b []byte) (Scenario, error) {
	sc := DefaultScenario()
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := sc.Config.Validate(); err != nil {
		return Scenario{}, err
	}
	if _, err := sc.resolveAll(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// ResolvedScenario holds the parsed growth functions of a Scenario.
type ResolvedScenario struct {
	Reference  GrowthFunction
	Candidates []GrowthFunction
	Collection []GrowthFunction
	Pairs      [][2]GrowthFunction
}

// Resolve parses every expression in the scenario.
func (s Scenario) Resolve() (ResolvedScenario, error) {
	return s.resolveAll()
}

func (s Scenario) resolveAll() (ResolvedScenario, error) {
	var out ResolvedScenario
	var err error

	if out.Reference, err = ParseGrowth(s.Reference); err != nil {
		return ResolvedScenario{}, fmt.Errorf("reference: %w", err)
	}
	if out.Candidates, err = parseAll(s.Candidates); err != nil {
		return ResolvedScenario{}, fmt.Errorf("candidates: %w", err)
	}
	if out.Collection, err = parseAll(s.Collection); err != nil {
		return ResolvedScenario{}, fmt.Errorf("collection: %w", err)
	}
	for i, p := range s.Pairs {
		f, err := ParseGrowth(p.F)
		if err != nil {
			return ResolvedScenario{}, fmt.Errorf("pair %d: %w", i, err)
		}
		g, err := ParseGrowth(p.G)
		if err != nil {
			return ResolvedScenario{}, fmt.Errorf("pair %d: %w", i, err)
		}
		out.Pairs = append(out.Pairs, [2]GrowthFunction{f, g})
	}

	return out, nil
}

func parseAll(exprs []string) ([]GrowthFunction, error) {
	fs := make([]GrowthFunction, 0, len(exprs))
	for _, e := range exprs {
		f, err := ParseGrowth(e)
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return fs, nil
}
