// Package pagerank: configuration options and the result type.
//
// Options follow the functional-option pattern: Rank accepts ...Option,
// resolves them over DefaultOptions, and option constructors panic on
// nonsensical values (programmer error), while problems with the matrix or
// the teleport vector surface as sentinel errors at Rank time.
package pagerank

import "math"

// DEFAULTS — single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultDamping is the probability of following an association rather
	// than teleporting; 0.85 is the conventional value from the literature.
	DefaultDamping = 0.85

	// DefaultTolerance is the L1 residual threshold below which the power
	// iteration is considered converged.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations caps the power iteration; reaching the cap yields
	// a non-fatal approximate result (Result.Converged == false).
	DefaultMaxIterations = 100
)

// DanglingPolicy selects how an all-zero row (an item with no outgoing
// association) is redistributed to keep the transition matrix stochastic.
type DanglingPolicy int

const (
	// DanglingTeleport replaces a dangling row with the teleport
	// distribution (uniform 1/n unless WithTeleport overrides it).
	// This is the standard correction and the default.
	DanglingTeleport DanglingPolicy = iota

	// DanglingUniformOthers replaces a dangling row with the uniform
	// distribution over the other n−1 items, excluding the item itself.
	// Matches pipelines whose matrix normalizer forbids self-links.
	// Ignores any custom teleport vector for the dangling rows; requires
	// n ≥ 2 (for n = 1 the engine returns [1.0] before any policy applies).
	DanglingUniformOthers
)

// Internal panic messages (no magic strings).
const (
	panicDampingInvalid = "pagerank: WithDamping: damping must be finite, in (0,1)"
	panicToleranceBad   = "pagerank: WithTolerance: tolerance must be finite, > 0"
	panicMaxIterBad     = "pagerank: WithMaxIterations: cap must be > 0"
	panicPolicyUnknown  = "pagerank: WithDanglingPolicy: unknown policy"
)

// Options stores the effective configuration after applying Option setters.
// Zero value is not meaningful; always start from DefaultOptions (Rank does).
type Options struct {
	// Damping is the probability of following an association edge.
	Damping float64

	// Tolerance is the L1 convergence threshold for successive iterates.
	Tolerance float64

	// MaxIterations bounds the power iteration (sole execution bound).
	MaxIterations int

	// Teleport, when non-nil, is a custom teleport distribution of length n:
	// non-negative, finite, summing to 1 within Tolerance. nil means uniform.
	// Validated at Rank time against the matrix dimension (ErrBadTeleport).
	Teleport []float64

	// Dangling selects the dangling-row correction policy.
	Dangling DanglingPolicy
}

// Option mutates Options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Teleport:      nil,
		Dangling:      DanglingTeleport,
	}
}

// WithDamping sets the damping factor d ∈ (0,1).
// Panics on NaN/±Inf or out-of-range values (programmer error).
func WithDamping(d float64) Option {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 || d >= 1 {
		panic(panicDampingInvalid)
	}

	return func(o *Options) { o.Damping = d }
}

// WithTolerance sets the convergence threshold eps > 0.
// Panics on NaN/±Inf or non-positive values (programmer error).
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceBad)
	}

	return func(o *Options) { o.Tolerance = eps }
}

// WithMaxIterations sets the iteration cap k > 0.
// Panics on non-positive values (programmer error).
func WithMaxIterations(k int) Option {
	if k <= 0 {
		panic(panicMaxIterBad)
	}

	return func(o *Options) { o.MaxIterations = k }
}

// WithTeleport sets a custom teleport distribution (personalized PageRank).
// The slice is copied; content is validated at Rank time against the matrix
// dimension and the distribution contract (ErrBadTeleport on violation).
func WithTeleport(dist []float64) Option {
	cp := make([]float64, len(dist))
	copy(cp, dist)

	return func(o *Options) { o.Teleport = cp }
}

// WithDanglingPolicy selects the dangling-row correction policy.
// Panics on an unknown policy value (programmer error).
func WithDanglingPolicy(p DanglingPolicy) Option {
	if p != DanglingTeleport && p != DanglingUniformOthers {
		panic(panicPolicyUnknown)
	}

	return func(o *Options) { o.Dangling = p }
}

// Result is the outcome of one Rank call.
type Result struct {
	// Scores is the importance vector: length n, non-negative entries
	// summing to exactly 1, aligned index-for-index with the item index.
	Scores []float64

	// Iterations is the number of power-iteration steps applied.
	Iterations int

	// Delta is the L1 distance between the last two iterates (0 when the
	// engine returned without iterating, e.g. n = 1).
	Delta float64

	// Converged reports whether Delta fell below Tolerance before the
	// iteration cap. False means Scores is a best-effort approximation —
	// the non-fatal non-convergence surface, never reported as an error.
	Converged bool
}
