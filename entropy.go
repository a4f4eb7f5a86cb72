package complexitydyn

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// SpanningCount is the number of greedy representatives needed at a horizon.
type SpanningCount struct {
	Horizon int `json:"horizon" yaml:"horizon"`
	Count   int `json:"count" yaml:"count"`
}

// SpanningResult maps each resolution threshold eps to its (horizon, count)
// sequence, ordered by increasing horizon.
type SpanningResult map[float64][]SpanningCount

// Thresholds returns the eps keys from coarsest to finest.
func (r SpanningResult) Thresholds() []float64 {
	eps := make([]float64, 0, len(r))
	for e := range r {
		eps = append(eps, e)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(eps)))
	return eps
}

// EntropyRate is the entropy estimate h_est(n) = log(count)/n for one horizon.
type EntropyRate struct {
	Horizon int     `json:"horizon" yaml:"horizon"`
	Count   int     `json:"count" yaml:"count"`
	Rate    float64 `json:"rate" yaml:"rate"`
}

// EntropyRates derives h_est(n) = log(count)/n from spanning counts.
// A count of 0 or 1 is the degenerate case and yields rate 0.
func EntropyRates(counts []SpanningCount) []EntropyRate {
	rates := make([]EntropyRate, 0, len(counts))
	for _, c := range counts {
		rate := 0.0
		if c.Count > 1 && c.Horizon > 0 {
			rate = math.Log(float64(c.Count)) / float64(c.Horizon)
		}
		rates = append(rates, EntropyRate{Horizon: c.Horizon, Count: c.Count, Rate: rate})
	}
	return rates
}

// EntropyOption configures EstimateEntropy.
type EntropyOption func(*entropyOptions)

type entropyOptions struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers bounds how many matrix rows are computed concurrently.
// Values below 1 fall back to GOMAXPROCS.
func WithWorkers(n int) EntropyOption {
	return func(o *entropyOptions) { o.workers = n }
}

// WithLogger receives one debug record per (eps, horizon).
func WithLogger(l *slog.Logger) EntropyOption {
	return func(o *entropyOptions) { o.logger = l }
}

// EstimateEntropy approximates (n, eps)-spanning set sizes for the scaling
// system restricted to the finite collection fs.
//
// For every horizon n = 1..maxN the pairwise entry for (i, j) is
//
//	max_{0 ≤ k < n} d^s(ψ_α^k(f_i), ψ_α^k(f_j))
//
// and a greedy cover is run over it: functions are scanned in index order,
// each uncovered one becomes a representative and covers every function whose
// entry to it is below eps (itself included). The count is an upper bound on
// the true minimum, and it depends on the order of fs; reordering the
// collection can change it.
//
// The matrix does not depend on eps, so it is built once per horizon and
// extended by a single iterate when the horizon grows. Rows are computed in
// parallel.
func EstimateEntropy(fs []GrowthFunction, alpha float64, eps []float64, maxN, depth int, opts ...EntropyOption) (SpanningResult, error) {
	o := entropyOptions{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	if len(fs) == 0 {
		return nil, ErrNoFunctions
	}
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}
	if err := validateBound("maxN", maxN); err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}

	// Repeated thresholds share one sequence.
	thresholds := make([]float64, 0, len(eps))
	result := make(SpanningResult, len(eps))
	for _, e := range eps {
		if math.IsNaN(e) || e < 0 {
			return nil, fmt.Errorf("%w: eps=%g", ErrInvalidThreshold, e)
		}
		if _, dup := result[e]; dup {
			continue
		}
		result[e] = make([]SpanningCount, 0, maxN)
		thresholds = append(thresholds, e)
	}

	worst := newDistanceMatrix(len(fs))
	for n := 1; n <= maxN; n++ {
		// Horizon n adds iterate k = n-1 to horizon n-1's maxima.
		if err := worst.extend(fs, alpha, n-1, depth, o.workers); err != nil {
			return nil, fmt.Errorf("horizon %d: %w", n, err)
		}

		for _, e := range thresholds {
			count := worst.greedyCover(e)
			result[e] = append(result[e], SpanningCount{Horizon: n, Count: count})
			o.logger.Debug("spanning set",
				"eps", e,
				"horizon", n,
				"count", count)
		}
	}

	return result, nil
}

// distanceMatrix is a dense symmetric m×m matrix stored row-major.
type distanceMatrix struct {
	m    int
	data []float64
}

func newDistanceMatrix(m int) *distanceMatrix {
	return &distanceMatrix{m: m, data: make([]float64, m*m)}
}

func (d *distanceMatrix) at(i, j int) float64 { return d.data[i*d.m+j] }

// extend folds iterate k into the running maxima. Row i owns cells (i, j)
// and (j, i) for j > i, so rows can be filled concurrently.
func (d *distanceMatrix) extend(fs []GrowthFunction, alpha float64, k, depth, workers int) error {
	var g errgroup.Group
	g.SetLimit(workers)

	for i := 0; i < d.m; i++ {
		i := i
		g.Go(func() error {
			fi := Scale(fs[i], alpha, k)
			for j := i + 1; j < d.m; j++ {
				fj := Scale(fs[j], alpha, k)
				ds, err := SymmetrizedDistance(fi, fj, depth)
				if err != nil {
					return fmt.Errorf("pair (%d, %d) at k=%d: %w", i, j, k, err)
				}
				if ds > d.data[i*d.m+j] {
					d.data[i*d.m+j] = ds
					d.data[j*d.m+i] = ds
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// greedyCover counts representatives needed to cover every index at resolution eps.
func (d *distanceMatrix) greedyCover(eps float64) int {
	covered := make([]bool, d.m)
	count := 0
	for i := 0; i < d.m; i++ {
		if covered[i] {
			continue
		}
		count++
		covered[i] = true
		for j := 0; j < d.m; j++ {
			if d.at(i, j) < eps {
				covered[j] = true
			}
		}
	}
	return count
}
