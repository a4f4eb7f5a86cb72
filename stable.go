package complexitydyn

import "fmt"

// UnstableTolerance is the numerical zero used by UnstableSet.
const UnstableTolerance = 1e-12

// StableSet returns the indices of candidates in the delta-stable set of f,
// in input order. Candidate g is a member iff
//
//	d_C(ψ_α^n(f), ψ_α^n(g)) ≤ delta  for every n ∈ [0, m].
//
// Each candidate is rejected at its first violating iterate.
func StableSet(f GrowthFunction, candidates []GrowthFunction, alpha, delta float64, m, depth int) ([]int, error) {
	if err := validateBound("m", m); err != nil {
		return nil, err
	}

	members := make([]int, 0, len(candidates))
	for i, g := range candidates {
		hit, err := ScanOrbit(ScanRequest{
			F:         f,
			G:         g,
			Alpha:     alpha,
			From:      0,
			To:        m,
			Depth:     depth,
			Direction: Forward,
			Stop:      Exceeds(delta),
		})
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		if !hit.Found {
			members = append(members, i)
		}
	}

	return members, nil
}

// StableMembers is StableSet returning the member functions themselves.
func StableMembers(f GrowthFunction, candidates []GrowthFunction, alpha, delta float64, m, depth int) ([]GrowthFunction, error) {
	idx, err := StableSet(f, candidates, alpha, delta, m, depth)
	if err != nil {
		return nil, err
	}
	return pick(candidates, idx), nil
}

// UnstableSet returns the indices of candidates in the unstable set of f,
// in input order: those with d_C(g, f) < UnstableTolerance, i.e. g(n) ≤ f(n)
// for every n up to depth.
//
// Unlike StableSet this takes no scale factor. The unstable-set theorem
// reduces membership to that single pointwise-dominance test, so iterating
// ψ_α would not change the answer. Do not add alpha here.
func UnstableSet(f GrowthFunction, candidates []GrowthFunction, depth int) ([]int, error) {
	members := make([]int, 0, len(candidates))
	for i, g := range candidates {
		d, err := Distance(g, f, depth)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		if d < UnstableTolerance {
			members = append(members, i)
		}
	}
	return members, nil
}

// UnstableMembers is UnstableSet returning the member functions themselves.
func UnstableMembers(f GrowthFunction, candidates []GrowthFunction, depth int) ([]GrowthFunction, error) {
	idx, err := UnstableSet(f, candidates, depth)
	if err != nil {
		return nil, err
	}
	return pick(candidates, idx), nil
}

func pick(fs []GrowthFunction, idx []int) []GrowthFunction {
	out := make([]GrowthFunction, 0, len(idx))
	for _, i := range idx {
		out = append(out, fs[i])
	}
	return out
}
