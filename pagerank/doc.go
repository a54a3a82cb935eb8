// Package pagerank computes PageRank importance scores for the items of a
// word-association network via damped power iteration over a row-stochastic
// transition matrix.
//
// 🚀 What is PageRank here?
//
//	The classic random-surfer model applied to association strengths: a
//	surfer at item i follows an outgoing association with probability
//	Damping (proportionally to the association weights of row i) or
//	teleports to a random item with probability 1−Damping. The stationary
//	distribution of that walk is the importance ranking — a proxy for
//	item accessibility in memory-retrieval models.
//
// ✨ Key features:
//   - implicit transition matrix: rows are normalized on the fly from
//     precomputed row sums, so no second n×n copy is materialized
//   - dangling items (all-zero rows) redistribute their mass through the
//     teleport distribution, keeping the implied chain stochastic; the
//     alternative uniform-over-others policy is available as an option
//   - custom teleport distributions (personalized PageRank) via WithTeleport
//   - explicit convergence status: Result carries Iterations, the last L1
//     residual and a Converged flag — hitting the iteration cap returns the
//     best available vector, never an error
//
// ⚙️ Usage:
//
//	import "github.com/cognetlab/assocrank/pagerank"
//
//	res, err := pagerank.Rank(m,
//	  pagerank.WithDamping(0.85),
//	  pagerank.WithTolerance(1e-8),
//	  pagerank.WithMaxIterations(100),
//	)
//	if err != nil { ... }        // invalid input only
//	if !res.Converged { ... }    // approximate result, still usable
//	_ = res.Scores               // length n, sums to 1, aligned to the index
//
// Guarantees at return: Scores has length n, every entry is non-negative,
// and the entries sum to exactly 1 (renormalized against floating-point
// drift). Invariant under the model: for all valid inputs the iteration
// converges, since teleportation makes the chain irreducible and aperiodic.
//
// Performance:
//
//   - Time:   O(n²) per iteration, O(k·n²) total for k iterations
//   - Memory: O(n) beyond the read-only input matrix
package pagerank
