// Package assoc: domain-facing types shared by the ranking engines.
// This file intentionally contains ONLY the read contract (Matrix) and the
// item-identifier types; the concrete Dense implementation lives in dense.go
// and the Index in index.go, per the package conventions.
package assoc

// ItemID uniquely identifies one item of the association network (a cue or
// response word in the word-association setting). Score vectors align to the
// positional order fixed by the Index, not to any property of the ID itself.
type ItemID string

// Matrix is the minimal read-only view of an association matrix consumed by
// the ranking engines. Cell (i,j) is the non-negative strength of the
// association from item i to item j; the matrix is treated as immutable for
// the duration of a ranking call (read-only sharing between concurrent calls
// is safe, read-write sharing is not).
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
