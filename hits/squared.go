// Package hits: the SquaredMatrix variant.
//
// This is the resource-heavy strategy: it materializes the authority matrix
// AᵀA and the hub matrix AAᵀ once (O(n³) time, two extra n×n matrices in
// RAM) and then power-iterates each score vector independently on its own
// product. Algebraically equivalent to the mutual-reinforcement updates —
// one alternating round equals one step on each squared matrix — it pays
// off only when the products are reused across many ranking calls.
package hits

import (
	"math"

	"github.com/cognetlab/assocrank/assoc"
)

// rankSquared materializes AᵀA and AAᵀ and iterates authority and hub
// vectors on them to the shared convergence criterion.
func rankSquared(m assoc.Matrix, cfg Options) Result {
	n := m.Rows()

	// One flat snapshot of the (optionally binarized) weights; all O(n³)
	// work below runs on this copy, never touching the caller's matrix.
	w := snapshot(m, cfg.Binarize)
	authM, hubM := squaredProducts(w, n)

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
	)
	for steps = 0; steps < cfg.MaxIterations; {
		// Independent damped power steps on the two squared products.
		matVec(nextA, authM, auth, n, xi, tele)
		normalizeL2(nextA)
		matVec(nextH, hubM, hub, n, xi, tele)
		normalizeL2(nextH)

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

// snapshot copies m into a flat row-major slice, applying binarization.
// Complexity: O(n²) time and memory.
func snapshot(m assoc.Matrix, binarize bool) []float64 {
	n := m.Rows()
	w := make([]float64, n*n)
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = m.At(i, j) // indices valid by loop construction
			w[i*n+j] = weight(v, binarize)
		}
	}

	return w
}

// squaredProducts computes authM = AᵀA and hubM = AAᵀ from the flat
// row-major weights w. This is the documented high-RAM, O(n³) path.
func squaredProducts(w []float64, n int) (authM, hubM []float64) {
	authM = make([]float64, n*n)
	hubM = make([]float64, n*n)

	// authM[j,k] = Σ_i w[i,j]·w[i,k]; accumulate row by row so both the
	// source row and the destination rows are walked sequentially.
	var i, j, k int
	var wij float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			wij = w[i*n+j]
			if wij == 0 {
				continue // sparse rows skip whole inner scans
			}
			for k = 0; k < n; k++ {
				authM[j*n+k] += wij * w[i*n+k]
			}
		}
	}

	// hubM[i,k] = Σ_j w[i,j]·w[k,j] — a dot product of rows i and k.
	var acc float64
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			acc = 0
			for j = 0; j < n; j++ {
				acc += w[i*n+j] * w[k*n+j]
			}
			hubM[i*n+k] = acc
		}
	}

	return authM, hubM
}

// matVec computes dst = ξ·(M·src) + tele for the flat row-major n×n
// matrix M. Complexity: O(n²).
func matVec(dst, m, src []float64, n int, xi, tele float64) {
	var i, j int
	var acc float64
	for i = 0; i < n; i++ {
		acc = 0
		for j = 0; j < n; j++ {
			acc += m[i*n+j] * src[j]
		}
		dst[i] = xi*acc + tele
	}
}
