// Package hits implements the mutual-reinforcement iteration described in
// the package documentation.
//
// Algorithm outline (MutualReinforcement):
//  1. Validate the matrix (square, non-negative, finite).
//  2. Initialize authority and hub vectors uniformly at unit L2 norm.
//  3. Iterate:
//     authority′ = ξ·(Aᵀ·hub) + (1−ξ)/n, renormalized to unit L2;
//     hub′       = ξ·(A·authority′) + (1−ξ)/n, renormalized to unit L2.
//  4. Stop when max(L1(authority′−authority), L1(hub′−hub)) < Tolerance,
//     or after MaxIterations steps (non-fatal; Converged=false).
//
// The SquaredMatrix variant lives in squared.go.
package hits

import (
	"fmt"
	"math"

	"github.com/cognetlab/assocrank/assoc"
)

// Rank computes HITS authority and hub scores for the square non-negative
// matrix m.
//
// Returns:
//   - Result: authority and hub vectors plus convergence status.
//   - err:    non-nil only for contract violations, never for slow
//     convergence. Violations carry assoc sentinels (assoc.ErrNilMatrix,
//     assoc.ErrNonSquare, assoc.ErrNegativeValue, assoc.ErrNaNInf);
//     match via errors.Is.
//
// Degenerate inputs (classic, undamped mode): an all-zero matrix yields
// all-zero authority and hub vectors with Converged=true — zero-vector
// normalization is a defined no-op, so no division by zero occurs. With
// WithDamping(ξ<1) the teleport term keeps the vectors positive instead and
// the all-zero matrix converges to the uniform unit vector.
//
// Complexity:
//
//   - Time:  O(n²) validation + O(n²) per iteration (MutualReinforcement);
//     SquaredMatrix adds a one-time O(n³) product build
//   - Space: O(n) extra (MutualReinforcement) or O(n²) (SquaredMatrix)
func Rank(m assoc.Matrix, opts ...Option) (Result, error) {
	// 1) Resolve options over the documented defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix contract; fail fast before any iteration.
	if err := assoc.ValidateSquare(m); err != nil {
		return Result{}, fmt.Errorf("hits: %w", err)
	}
	if err := assoc.ValidateNonNegative(m); err != nil {
		return Result{}, fmt.Errorf("hits: %w", err)
	}
	n := m.Rows()

	// 3) Undamped iteration on an all-zero matrix stays at zero forever;
	//    short-circuit to the documented zero-vector result.
	if cfg.Damping == 1 && isAllZero(m) {
		return Result{
			Authority: make([]float64, n),
			Hub:       make([]float64, n),
			Converged: true,
		}, nil
	}

	// 4) Trivial dimension: the single item is its own best authority and hub.
	if n == 1 {
		return Result{Authority: []float64{1}, Hub: []float64{1}, Converged: true}, nil
	}

	// 5) Dispatch to the selected variant.
	if cfg.Variant == SquaredMatrix {
		return rankSquared(m, cfg), nil
	}

	return rankMutual(m, cfg), nil
}

// rankMutual runs the alternating authority/hub updates directly on m.
func rankMutual(m assoc.Matrix, cfg Options) Result {
	n := m.Rows()
	auth := uniformUnitL2(n)
	hub := uniformUnitL2(n)
	nextA := make([]float64, n)
	nextH := make([]float64, n)

	xi := cfg.Damping
	tele := teleportTerm(xi, n)

	var (
		delta     float64
		steps     int
		converged bool
		i, j      int
		v, acc    float64
	)
	for steps = 0; steps < cfg.MaxIterations; {
		// Authority update: nextA = ξ·(Aᵀ·hub) + tele.
		// Computed row-wise (Σ over i of A[i,j]·hub[i]) to keep the scan of
		// the row-major matrix cache-friendly.
		for j = 0; j < n; j++ {
			nextA[j] = 0
		}
		for i = 0; i < n; i++ {
			if hub[i] == 0 {
				continue // zero hub rows contribute nothing
			}
			for j = 0; j < n; j++ {
				v, _ = m.At(i, j) // indices valid by loop construction
				nextA[j] += weight(v, cfg.Binarize) * hub[i]
			}
		}
		for j = 0; j < n; j++ {
			nextA[j] = xi*nextA[j] + tele
		}
		normalizeL2(nextA)

		// Hub update with the freshly updated authorities:
		// nextH = ξ·(A·authority′) + tele.
		for i = 0; i < n; i++ {
			acc = 0
			for j = 0; j < n; j++ {
				v, _ = m.At(i, j)
				acc += weight(v, cfg.Binarize) * nextA[j]
			}
			nextH[i] = xi*acc + tele
		}
		normalizeL2(nextH)

		// Combined residual, then buffer swaps.
		delta = math.Max(l1Delta(nextA, auth), l1Delta(nextH, hub))
		auth, nextA = nextA, auth
		hub, nextH = nextH, hub
		steps++
		if delta < cfg.Tolerance {
			converged = true

			break
		}
	}

	return Result{Authority: auth, Hub: hub, Iterations: steps, Delta: delta, Converged: converged}
}

// weight applies the optional binarization to one matrix entry.
func weight(v float64, binarize bool) float64 {
	if binarize && v > 0 {
		return 1
	}

	return v
}

// teleportTerm returns the per-entry teleport mass (1−ξ)/n, 0 when ξ = 1.
func teleportTerm(xi float64, n int) float64 {
	if xi == 1 {
		return 0
	}

	return (1 - xi) / float64(n)
}

// isAllZero reports whether every entry of m is zero.
// Complexity: O(n²), short-circuits on the first non-zero entry.
func isAllZero(m assoc.Matrix) bool {
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v != 0 {
				return false
			}
		}
	}

	return true
}

// uniformUnitL2 returns the uniform vector scaled to unit L2 norm
// (every entry 1/√n).
func uniformUnitL2(n int) []float64 {
	v := make([]float64, n)
	e := 1 / math.Sqrt(float64(n))
	for i := range v {
		v[i] = e
	}

	return v
}

// normalizeL2 rescales v in place to unit L2 norm. The zero vector is left
// unchanged by definition (no-op), avoiding division by zero on degenerate
// input.
func normalizeL2(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}

// l1Delta returns the L1 distance between equal-length vectors a and b.
func l1Delta(a, b []float64) float64 {
	d := 0.0
	for i := range a {
		d += math.Abs(a[i] - b[i])
	}

	return d
}
