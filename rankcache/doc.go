// Package rankcache provides an explicit, caller-owned cache for computed
// rankings, keyed by a content hash of (matrix, algorithm, parameters).
//
// 🚀 Why an explicit cache?
//
//	Ranking a large association matrix is expensive — HITS in its
//	squared-matrix form is O(n³) — so computed score vectors are worth
//	keeping. Rather than hiding precomputed artifacts behind global
//	state, the engines stay pure functions and callers own a Cache
//	instance explicitly: same inputs ⇒ same key ⇒ same vectors.
//
// ✨ Key properties:
//   - Key is a SHA-256 digest over the matrix dimensions and entries
//     (row-major, exact float64 bits), the algorithm tag, and every
//     parameter — any change to any of them changes the key
//   - Get and Put deep-copy the score vectors, so cached data can never
//     be mutated through retained aliases
//   - safe for concurrent use (RWMutex-guarded)
//
// ⚙️ Usage:
//
//	cache := rankcache.New()
//	key, err := rankcache.Key(m, "pagerank", damping, tolerance)
//	if vecs, ok := cache.Get(key); ok {
//	  return vecs[0]
//	}
//	res, err := pagerank.Rank(m, ...)
//	cache.Put(key, res.Scores)
package rankcache
