// Package assoc defines the shared input contract consumed by the ranking
// engines: an ordered item index and a non-negative association matrix.
//
// 🚀 What is assoc?
//
//	The data model of the library, and nothing more:
//	  • Index  — an immutable, ordered sequence of item identifiers that
//	    fixes the row/column order of the matrix and the output order of
//	    every score vector.
//	  • Matrix — a minimal read-only view (Rows/Cols/At) so engines accept
//	    any backing representation.
//	  • Dense  — the concrete row-major float64 implementation, flat-slice
//	    backed for cache friendliness.
//	  • Validators — fail-fast structural and numeric checks shared by the
//	    engines (square shape, non-negativity, finiteness, index alignment).
//
// Cell (i,j) holds the strength of association from item i to item j; the
// matrix is not required to be symmetric, and all-zero rows (dangling items
// with no outgoing association) are legal input handled by the engines.
//
// ⚙️ Usage:
//
//	idx, err := assoc.NewIndex([]string{"cat", "dog", "pet"})
//	m, err := assoc.NewDenseFromRows([][]float64{
//	  {0, 1, 0},
//	  {0, 0, 1},
//	  {1, 0, 0},
//	})
//	if err := assoc.ValidateAligned(m, idx); err != nil { ... }
//
// All user-triggered failures surface as package sentinel errors matched
// via errors.Is; no function here panics on bad input.
package assoc
