// Package hits: configuration options and the result type.
//
// Options follow the functional-option pattern: Rank accepts ...Option,
// resolves them over DefaultOptions, and option constructors panic on
// nonsensical values (programmer error), while matrix-contract violations
// surface as assoc sentinel errors at Rank time.
package hits

import "math"

// DEFAULTS — single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultTolerance is the residual threshold (max of the two per-vector
	// L1 deltas) below which the iteration is considered converged.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations caps the iteration; reaching the cap yields a
	// non-fatal approximate result (Result.Converged == false).
	DefaultMaxIterations = 100

	// DefaultDamping of 1 disables the teleport term (classic HITS).
	DefaultDamping = 1.0
)

// Variant selects the computation strategy; both converge to the same
// fixed point but differ sharply in resource profile.
type Variant int

const (
	// MutualReinforcement alternates authority/hub matrix-vector updates
	// directly on the association matrix: O(n²) time per iteration, O(n)
	// extra memory. The default.
	MutualReinforcement Variant = iota

	// SquaredMatrix materializes AᵀA and AAᵀ once (O(n³) time, two extra
	// n×n matrices in RAM) and then iterates each score vector on its own
	// product. Equivalent in the limit; prefer it only when the squared
	// products are reused across many calls.
	SquaredMatrix
)

// Internal panic messages (no magic strings).
const (
	panicToleranceBad   = "hits: WithTolerance: tolerance must be finite, > 0"
	panicMaxIterBad     = "hits: WithMaxIterations: cap must be > 0"
	panicDampingInvalid = "hits: WithDamping: damping must be finite, in (0,1]"
	panicVariantUnknown = "hits: WithVariant: unknown variant"
)

// Options stores the effective configuration after applying Option setters.
// Zero value is not meaningful; always start from DefaultOptions (Rank does).
type Options struct {
	// Tolerance is the convergence threshold on the combined residual.
	Tolerance float64

	// MaxIterations bounds the iteration (sole execution bound).
	MaxIterations int

	// Damping ξ scales the link-following term; (1−ξ)/n is added to every
	// entry each iteration as teleport mass. 1 means classic undamped HITS.
	Damping float64

	// Variant selects MutualReinforcement or SquaredMatrix.
	Variant Variant

	// Binarize thresholds the matrix to {0,1} (entry > 0 ⇒ 1) before
	// iterating, ranking link structure rather than association strength.
	Binarize bool
}

// Option mutates Options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Damping:       DefaultDamping,
		Variant:       MutualReinforcement,
		Binarize:      false,
	}
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

// WithDamping sets the teleport factor ξ ∈ (0,1]; ξ = 1 disables teleport.
// Panics on NaN/±Inf or out-of-range values (programmer error).
func WithDamping(xi float64) Option {
	if math.IsNaN(xi) || math.IsInf(xi, 0) || xi <= 0 || xi > 1 {
		panic(panicDampingInvalid)
	}

	return func(o *Options) { o.Damping = xi }
}

// WithVariant selects the computation strategy.
// Panics on an unknown variant value (programmer error).
func WithVariant(v Variant) Option {
	if v != MutualReinforcement && v != SquaredMatrix {
		panic(panicVariantUnknown)
	}

	return func(o *Options) { o.Variant = v }
}

// WithBinarize thresholds the association matrix to {0,1} before iterating.
func WithBinarize() Option {
	return func(o *Options) { o.Binarize = true }
}

// Result is the outcome of one Rank call.
type Result struct {
	// Authority holds the pointed-to-ness scores: length n, non-negative,
	// unit L2 norm at convergence (all-zero for an all-zero matrix),
	// aligned index-for-index with the item index.
	Authority []float64

	// Hub holds the points-to-good-authorities scores, same contract.
	Hub []float64

	// Iterations is the number of alternating updates applied.
	Iterations int

	// Delta is the last combined residual: max of the two L1 distances
	// between successive authority and hub iterates.
	Delta float64

	// Converged reports whether Delta fell below Tolerance before the
	// iteration cap. False means the vectors are a best-effort
	// approximation — non-fatal, never reported as an error.
	Converged bool
}
