// Package complexitydyn studies complexity classes as a dynamical system.
//
// # Overview
//
// Growth functions f: ℕ⁺ → ℝ⁺ model how an algorithm's cost grows with input
// size. complexitydyn measures them with the complexity quasi-metric and
// iterates the scaling transformation ψ_α(f) = α·f over them to check
// expansiveness, hyperbolicity, stable/unstable sets, hierarchy separation
// and topological entropy.
//
// # Architecture
//
// The package components:
//
//   - distance      - Truncated complexity quasi-metric d_C
//   - growth        - Growth functions, catalog and the scaling operator ψ_α^k
//   - orbit         - Shared scan loop over iterates; orbit trajectories
//   - expansive     - Expansive separation check
//   - hierarchy     - Hierarchy separation (time hierarchy analogue)
//   - hyperbolicity - Exponential contraction verification
//   - stable        - Stable and unstable set membership
//   - entropy       - Spanning-set counts and entropy estimates
//   - config        - Parameters and YAML scenarios
//   - assertions    - Test helpers for quasi-metric properties
//
// # The Quasi-Metric
//
//	d_C(f, g) = Σ_{n≥1} 2^{-n} · max(0, 1/g(n) − 1/f(n))
//
// It is asymmetric. With f(n) = n and g(n) = n²:
//
//	d, _ := complexitydyn.Distance(complexitydyn.Linear, complexitydyn.Quadratic, 100)
//	// d = 0          (fast → slow: free)
//	d, _ = complexitydyn.Distance(complexitydyn.Quadratic, complexitydyn.Linear, 100)
//	// d ≈ 0.11090665 (slow → fast: costly)
//
// The series is truncated at depth N (default 80). The 2^{-n} weights let
// early indices dominate, so N refines precision but rarely changes which
// function wins.
//
// # Scaling
//
// ψ_α^k(f)(n) = α^k · f(n). Because 1/(α^k f) = α^{-k}/f, every term of the
// series scales by α^{-k}:
//
//	d_C(ψ^k f, ψ^k g) = α^{-k} · d_C(f, g)
//
// Forward iterates contract, backward iterates expand. VerifyHyperbolicity
// checks this law numerically.
//
// # Stable and Unstable Sets
//
// StableSet keeps the candidates whose forward orbit stays within delta of
// the reference. UnstableSet keeps the candidates dominated by the
// reference (d_C(g, f) = 0). The unstable test ignores α on purpose: the
// unstable-set theorem collapses it to pointwise dominance.
//
// # Entropy
//
// EstimateEntropy builds, for each horizon n, the matrix of worst-case
// symmetrized distances over iterates 0..n-1 and greedily counts
// representatives at resolution eps. The counts are upper bounds on the
// minimal spanning set and depend on input order. EntropyRates turns them
// into h_est(n) = log(count)/n.
//
// # Errors
//
// A growth function that is non-positive at a probed index is a contract
// violation. Distance reports it as a *DomainError (errors.Is ErrDomain) and
// every analysis propagates it unchanged. Not finding a separation within the
// iterate window is a normal result, not an error.
//
// # Concurrency
//
// Everything is a pure function of its inputs. EstimateEntropy fills matrix
// rows in parallel; all other analyses run on the calling goroutine.
package complexitydyn
