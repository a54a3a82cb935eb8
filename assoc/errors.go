// Package assoc: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the assoc
// package and by the ranking engines that validate their input through it.
// All functions return these sentinels and tests check them via errors.Is.
// No function panics on user-triggered error conditions.

package assoc

import "errors"

// Every message is prefixed with "assoc: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// boundary when context is essential; callers still match via errors.Is.
var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("assoc: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0),
	// or when row data with ragged lengths is supplied to a constructor.
	ErrBadShape = errors.New("assoc: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("assoc: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input
	// has Rows() != Cols().
	ErrNonSquare = errors.New("assoc: matrix is not square")

	// ErrNegativeValue signals a negative association weight where the
	// contract requires non-negative entries.
	ErrNegativeValue = errors.New("assoc: negative value encountered")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("assoc: NaN or Inf encountered")

	// ErrNotStochastic signals that a row of a matrix expected to be
	// row-stochastic does not sum to 1 within the given tolerance.
	ErrNotStochastic = errors.New("assoc: row does not sum to 1 within eps")

	// ErrIndexMismatch indicates that the item index length disagrees with
	// the matrix dimension.
	ErrIndexMismatch = errors.New("assoc: index length does not match matrix dimension")

	// ErrEmptyID indicates an empty item identifier supplied to NewIndex.
	ErrEmptyID = errors.New("assoc: empty item identifier")

	// ErrDuplicateID indicates a repeated item identifier supplied to NewIndex.
	ErrDuplicateID = errors.New("assoc: duplicate item identifier")

	// ErrUnknownID indicates a lookup for an identifier absent from the index.
	ErrUnknownID = errors.New("assoc: unknown item identifier")
)
