// Package assocrank ranks items of a word-association network by structural
// importance, using the two classic link-analysis algorithms: PageRank and
// HITS (Hypertext-Induced Topic Search).
//
// 🚀 What is assocrank?
//
//	A small, pure-computation library for cognitive-modeling research:
//	given a square non-negative matrix of association strengths between
//	cue words and response words, it produces importance, authority and
//	hub rankings usable as accessibility proxies in memory-retrieval
//	models. It brings together:
//		• assoc/     — the input contract: item index + dense association matrix
//		• pagerank/  — damped power iteration over a stochastic transition matrix
//		• hits/      — mutual-reinforcement authority/hub iteration
//		• rankcache/ — explicit content-hash cache for computed rankings
//
// ✨ Why choose assocrank?
//
//   - Pure functions – no global state, no I/O; engines are leaves
//   - Explicit convergence – every result carries iterations, residual
//     and a converged flag; hitting the iteration cap is never an error
//   - Resource-aware – HITS exposes both the O(n²)-per-iteration
//     mutual-reinforcement variant and the O(n³) squared-matrix variant
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    cat ──▶ dog
//	     ▲       │
//	     └─ pet ◀┘
//
//	a directed 3-cycle of associations converges PageRank to [⅓, ⅓, ⅓].
//
// Each engine consumes the same read-only input (an assoc.Matrix aligned to
// an assoc.Index) and is independent of the other; feed them from whatever
// builds your matrices.
//
//	go get github.com/cognetlab/assocrank
package assocrank
