// Package rankcache: content-hash keys and the mutex-guarded store.
package rankcache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"sync"

	"github.com/cognetlab/assocrank/assoc"
)

// Key derives a stable cache key from the matrix content, an algorithm tag
// (e.g. "pagerank", "hits") and the parameters the ranking was computed
// with. Identical inputs always produce identical keys; changing any entry,
// the dimensions, the tag or any parameter produces a different key.
//
// Errors: assoc.ErrNilMatrix for a nil matrix.
// Complexity: O(r*c) time, O(1) extra space beyond the digest state.
func Key(m assoc.Matrix, algorithm string, params ...float64) (string, error) {
	if err := assoc.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("rankcache: %w", err)
	}

	h := sha256.New()
	var buf [8]byte

	// Dimensions first, so a 2×8 and a 4×4 matrix with equal flattened
	// content still hash apart.
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Rows()))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Cols()))
	h.Write(buf[:])

	// Entries in row-major order, exact bit patterns.
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices valid by loop construction
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}

	// Algorithm tag, length-prefixed to keep the encoding unambiguous.
	binary.LittleEndian.PutUint64(buf[:], uint64(len(algorithm)))
	h.Write(buf[:])
	h.Write([]byte(algorithm))

	// Parameters in the order given; order is part of the identity.
	for _, p := range params {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p))
		h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Cache is a concurrency-safe store of score-vector bundles (one slice per
// vector the algorithm produced: one for PageRank, two for HITS). The zero
// value is NOT ready to use; construct with New.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][][]float64
}

// New returns an empty, ready-to-use Cache.
func New() *Cache {
	return &Cache{entries: make(map[string][][]float64)}
}

// Get returns a deep copy of the vectors stored under key, and whether the
// key was present. Complexity: O(total stored floats) for the copy.
func (c *Cache) Get(key string) ([][]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	vecs, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	return deepCopy(vecs), true
}

// Put stores a deep copy of the given vectors under key, replacing any
// previous entry. Complexity: O(total stored floats) for the copy.
func (c *Cache) Put(key string, vectors ...[]float64) {
	cp := deepCopy(vectors)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cp
}

// Delete removes the entry under key, if any.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// deepCopy clones a bundle of score vectors.
func deepCopy(vecs [][]float64) [][]float64 {
	out := make([][]float64, len(vecs))
	for i, v := range vecs {
		cv := make([]float64, len(v))
		copy(cv, v)
		out[i] = cv
	}

	return out
}
