// Package hits computes HITS (Hypertext-Induced Topic Search) authority and
// hub scores for the items of a word-association network via mutual
// reinforcement: an item is a good authority when good hubs point to it, and
// a good hub when it points to good authorities.
//
// 🚀 What is HITS here?
//
//	The query-independent variant run over the whole association matrix.
//	Authority of item j accumulates from every item i pointing to it,
//	weighted by i's hub score and the association strength i→j; hub of
//	item i accumulates symmetrically from the authorities it points to.
//	Both vectors are renormalized to unit L2 norm every iteration to
//	prevent unbounded growth; L2 is the documented norm choice and is
//	applied consistently to both vectors, preserving the
//	mutual-reinforcement fixed point.
//
// ✨ Key features:
//   - two algorithmically equivalent, resource-different variants:
//     MutualReinforcement (default) — alternating matrix-vector updates,
//     O(n²) time per iteration, O(n) extra memory;
//     SquaredMatrix — materializes AᵀA and AAᵀ once (O(n³) time, two extra
//     n×n products held in RAM) and then iterates each vector
//     independently; worthwhile only when the products are reused
//   - WithBinarize() thresholds the matrix to {0,1} first, ranking pure
//     link structure instead of association strength
//   - WithDamping(ξ) adds a (1−ξ)/n teleport term each iteration — the
//     randomized variant that guarantees convergence on reducible graphs
//   - explicit convergence status: Result carries Iterations, the residual
//     (max of the two L1 deltas) and a Converged flag; hitting the
//     iteration cap returns best-effort vectors, never an error
//
// ⚙️ Usage:
//
//	import "github.com/cognetlab/assocrank/hits"
//
//	res, err := hits.Rank(m,
//	  hits.WithTolerance(1e-8),
//	  hits.WithMaxIterations(100),
//	)
//	if err != nil { ... }     // invalid input only
//	_ = res.Authority         // unit L2 norm, aligned to the index
//	_ = res.Hub               // unit L2 norm, aligned to the index
//
// Degenerate inputs are well-defined, not errors: an item nothing points to
// (all-zero column) gets authority 0; an item pointing to nothing (all-zero
// row) gets hub 0; normalization of a zero vector is a no-op leaving it
// zero, so the all-zero matrix yields zero authority and hub vectors with
// Converged=true and no division by zero anywhere.
//
// Performance:
//
//   - Time:   O(n²) per iteration (MutualReinforcement),
//     plus a one-time O(n³) product build (SquaredMatrix)
//   - Memory: O(n) extra (MutualReinforcement) or O(n²) (SquaredMatrix)
package hits
