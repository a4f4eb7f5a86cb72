package complexitydyn

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAnalysisConfig(t *testing.T) {
	cfg := DefaultAnalysisConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultDepth, cfg.Depth)
	assert.Equal(t, 2.0, cfg.Alpha)
	assert.Equal(t, []float64{0.1, 0.01}, cfg.Eps)
}

func TestAnalysisConfig_Validate(t *testing.T) {
	cfg := AnalysisConfig{Depth: 0, Alpha: -2, Delta: -1, Bound: -1, MaxN: -1, Eps: []float64{-0.1}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrInvalidDepth)
	assert.ErrorIs(t, err, ErrInvalidAlpha)
	assert.ErrorIs(t, err, ErrInvalidBound)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
	assert.Contains(t, err.Error(), "delta=-1")
	assert.Contains(t, err.Error(), "eps=-0.1")
}

func TestDefaultScenario_Resolves(t *testing.T) {
	sc := DefaultScenario()
	fns, err := sc.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "n", fmt.Sprint(fns.Reference))
	assert.Len(t, fns.Candidates, 3)
	assert.Len(t, fns.Collection, 5)
	require.Len(t, fns.Pairs, 3)
	assert.Equal(t, "nlog2n", fmt.Sprint(fns.Pairs[1][1]))
}

func TestParseScenario_OverridesDefaults(t *testing.T) {
	sc, err := ParseScenario([]byte(`
config:
  alpha: 3
  max_n: 5
reference: n^2
collection: [n, 2n]
`))
	require.NoError(t, err)

	assert.Equal(t, 3.0, sc.Config.Alpha)
	assert.Equal(t, 5, sc.Config.MaxN)
	assert.Equal(t, DefaultDepth, sc.Config.Depth, "unset fields keep defaults")
	assert.Equal(t, 0.01, sc.Config.Delta)
	assert.Equal(t, "n^2", sc.Reference)
	assert.Equal(t, []string{"n", "2n"}, sc.Collection)
	assert.Equal(t, []string{"n^2", "n+10", "sqrt(n)"}, sc.Candidates)

	fns, err := sc.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 4.0, fns.Collection[1].Evaluate(2))
}

func TestParseScenario_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"zero alpha", "config: {alpha: 0}", ErrInvalidConfig},
		{"negative depth", "config: {depth: -3}", ErrInvalidDepth},
		{"unknown growth", "candidates: [n, log(n)]", ErrUnknownGrowth},
		{"unknown pair", "pairs: [{f: n, g: n!}]", ErrUnknownGrowth},
		{"malformed yaml", "config: [alpha", ErrInvalidConfig},
		{"zero factor", "collection: [n, 0n]", ErrDomain},
		{"nan factor", "candidates: [nann]", ErrDomain},
		{"non-positive shift", "reference: n+-1", ErrDomain},
		{"nan eps", "config: {eps: [0.1, .nan]}", ErrInvalidThreshold},
		{"nan delta", "config: {delta: .nan}", ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("config:\n  bound: 10\nreference: n+1\n"), 0o644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 10, sc.Config.Bound)
	assert.Equal(t, "n+1", sc.Reference)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadScenario_Example(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("examples", "scaling-orbits", "scenario.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 10, sc.Config.MaxN)
	assert.Len(t, sc.Pairs, 4)
	t.Logf("✓ Example scenario loads with %d pairs", len(sc.Pairs))
}
