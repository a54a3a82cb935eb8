// Package pagerank implements the damped power iteration described in the
// package documentation.
//
// Algorithm outline:
//  1. Validate the matrix (square, non-negative, finite) and the teleport
//     distribution, if any.
//  2. Precompute per-row sums; a zero-sum row marks a dangling item.
//  3. Initialize the score vector uniformly to 1/n.
//  4. Iterate score′ = Damping·(score·T) + (1−Damping)·teleport, where T is
//     the row-normalized matrix with dangling rows replaced per the policy.
//     T is never materialized: row normalization divides by the precomputed
//     sums on the fly, and dangling rows contribute through their aggregate
//     mass, so the step stays O(n²) time and O(n) extra memory.
//  5. Stop when the L1 distance between successive iterates drops below
//     Tolerance, or after MaxIterations steps (non-fatal; Converged=false).
//  6. Renormalize the returned vector to sum to exactly 1 against drift.
package pagerank

import (
	"fmt"
	"math"

	"github.com/cognetlab/assocrank/assoc"
)

// Rank computes PageRank scores for the square non-negative matrix m.
//
// Returns:
//   - Result: score vector plus convergence status (see Result).
//   - err:    non-nil only for contract violations, never for slow
//     convergence. Matrix violations carry assoc sentinels; a bad custom
//     teleport distribution carries ErrBadTeleport. Match via errors.Is.
//
// Preconditions and validation (in order):
//  1. m must be non-nil and square (assoc.ErrNilMatrix, assoc.ErrNonSquare).
//  2. Every entry must be finite and ≥ 0 (assoc.ErrNaNInf, assoc.ErrNegativeValue).
//  3. A custom teleport vector must have length n, finite non-negative
//     entries, and sum to 1 within Tolerance (ErrBadTeleport).
//
// Complexity:
//
//   - Time:  O(n²) validation + O(n²) per iteration
//   - Space: O(n) beyond the input
func Rank(m assoc.Matrix, opts ...Option) (Result, error) {
	// 1) Resolve options over the documented defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix contract; fail fast before any iteration.
	if err := assoc.ValidateSquare(m); err != nil {
		return Result{}, fmt.Errorf("pagerank: %w", err)
	}
	if err := assoc.ValidateNonNegative(m); err != nil {
		return Result{}, fmt.Errorf("pagerank: %w", err)
	}
	n := m.Rows()

	// 3) Resolve and validate the teleport distribution.
	teleport, err := resolveTeleport(cfg, n)
	if err != nil {
		return Result{}, err
	}

	// 4) Trivial dimension: a single item holds all the rank.
	if n == 1 {
		return Result{Scores: []float64{1}, Iterations: 0, Delta: 0, Converged: true}, nil
	}

	// 5) Precompute inverse row sums; invRowSum[i] == 0 marks item i dangling.
	invRowSum := make([]float64, n)
	danglingTotal := 0 // dangling item count, to skip policy work when none exist
	var (
		i, j int
		v    float64
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // indices valid by loop construction
			sum += v
		}
		if sum > 0 {
			invRowSum[i] = 1 / sum
		} else {
			danglingTotal++
		}
	}

	// 6) Uniform start: every item begins with score 1/n.
	score := make([]float64, n)
	next := make([]float64, n)
	uniform := 1 / float64(n)
	for i = 0; i < n; i++ {
		score[i] = uniform
	}

	// 7) Damped power iteration.
	r := &runner{
		m:         m,
		cfg:       cfg,
		teleport:  teleport,
		invRowSum: invRowSum,
		dangling:  danglingTotal > 0,
		score:     score,
		next:      next,
	}

	return r.iterate(), nil
}

// resolveTeleport returns the effective teleport distribution: nil means the
// engine uses the implicit uniform 1/n without allocating a vector. A custom
// vector is checked against the full distribution contract.
func resolveTeleport(cfg Options, n int) ([]float64, error) {
	if cfg.Teleport == nil {
		return nil, nil
	}
	if len(cfg.Teleport) != n {
		return nil, fmt.Errorf("pagerank: teleport length %d vs dimension %d: %w",
			len(cfg.Teleport), n, ErrBadTeleport)
	}
	sum := 0.0
	for i, v := range cfg.Teleport {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("pagerank: teleport entry %d=%v: %w", i, v, ErrBadTeleport)
		}
		sum += v
	}
	if math.Abs(sum-1) > cfg.Tolerance {
		return nil, fmt.Errorf("pagerank: teleport sums to %v: %w", sum, ErrBadTeleport)
	}

	return cfg.Teleport, nil
}

// runner holds the mutable state for a single Rank execution.
type runner struct {
	m         assoc.Matrix // read-only input
	cfg       Options      // effective configuration
	teleport  []float64    // custom teleport distribution; nil ⇒ uniform 1/n
	invRowSum []float64    // 1/rowSum per row; 0 marks a dangling row
	dangling  bool         // whether any dangling row exists
	score     []float64    // current iterate
	next      []float64    // next iterate (reused buffer)
	delta     float64      // last L1 residual
	steps     int          // iterations applied
}

// iterate runs the power iteration to convergence or the cap and packages
// the result. The returned Scores slice is renormalized to sum to exactly 1.
func (r *runner) iterate() Result {
	converged := false
	for r.steps = 0; r.steps < r.cfg.MaxIterations; {
		r.step()
		r.steps++
		if r.delta < r.cfg.Tolerance {
			converged = true

			break
		}
	}

	normalizeL1(r.score)

	return Result{Scores: r.score, Iterations: r.steps, Delta: r.delta, Converged: converged}
}

// step applies one damped power-iteration update, score → next, then swaps
// the buffers and records the L1 residual.
func (r *runner) step() {
	n := len(r.score)
	d := r.cfg.Damping
	uniform := 1 / float64(n)

	// Base contribution: teleportation mass (1−d)·teleport[j] plus, under the
	// teleport dangling policy, the aggregate dangling mass d·mass·teleport[j].
	mass := 0.0
	if r.dangling {
		for i := 0; i < n; i++ {
			if r.invRowSum[i] == 0 {
				mass += r.score[i]
			}
		}
	}
	var j int
	switch {
	case r.cfg.Dangling == DanglingUniformOthers && r.dangling:
		// Each dangling item i spreads its mass uniformly over the other n−1
		// items; column j therefore receives every dangling score except its
		// own. The teleport term stays per the (possibly custom) distribution.
		share := d / float64(n-1)
		for j = 0; j < n; j++ {
			base := (1 - d) * r.teleportAt(j, uniform)
			fromDangling := mass
			if r.invRowSum[j] == 0 {
				fromDangling -= r.score[j]
			}
			r.next[j] = base + share*fromDangling
		}
	default:
		for j = 0; j < n; j++ {
			r.next[j] = ((1-d) + d*mass) * r.teleportAt(j, uniform)
		}
	}

	// Link-following contribution: d·score[i]·M[i][j]/rowSum[i] for every
	// non-dangling row i. Row-major order keeps the scan cache-friendly.
	var (
		i int
		w float64
		v float64
	)
	for i = 0; i < n; i++ {
		if r.invRowSum[i] == 0 {
			continue // dangling rows already accounted for above
		}
		w = d * r.score[i] * r.invRowSum[i]
		for j = 0; j < n; j++ {
			v, _ = r.m.At(i, j) // indices valid by loop construction
			r.next[j] += w * v
		}
	}

	// L1 residual between successive iterates, then buffer swap.
	r.delta = 0
	for j = 0; j < n; j++ {
		r.delta += math.Abs(r.next[j] - r.score[j])
	}
	r.score, r.next = r.next, r.score
}

// teleportAt returns the teleport probability of item j.
func (r *runner) teleportAt(j int, uniform float64) float64 {
	if r.teleport == nil {
		return uniform
	}

	return r.teleport[j]
}

// normalizeL1 rescales v in place so its entries sum to exactly 1,
// countering accumulated floating-point drift. A zero vector is left as-is
// (cannot occur for PageRank iterates, which always carry teleport mass).
func normalizeL1(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	if sum == 0 {
		return
	}
	for i := range v {
		v[i] /= sum
	}
}
