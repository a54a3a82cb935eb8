// Package assoc: canonical validation checks shared by the ranking engines.
//
// Purpose:
//   - Provide a single source of truth for the input contract of the engines.
//   - Keep the engine kernels minimal by delegating nil/shape/numeric checks here.
//   - Return plain sentinel errors (wrapped only with a validator tag) so call
//     sites can match with errors.Is and wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - Numeric scans run in a fixed i→j order and fail on the first violation.

package assoc

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateNonNegative scans every entry of m and rejects negative or
// non-finite values. This is the numeric half of the engines' input
// contract; both engines call it before iterating and fail fast on the
// first violation.
//
// Errors: ErrNilMatrix, ErrNegativeValue, ErrNaNInf.
// Complexity: O(r*c) time, O(1) space.
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // bounds are valid by construction of the loops
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateNonNegative: cell (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
			if v < 0 {
				return fmt.Errorf("ValidateNonNegative: cell (%d,%d)=%v: %w", i, j, v, ErrNegativeValue)
			}
		}
	}

	return nil
}

// ValidateAligned checks that index is non-nil and its length equals the
// dimension of the square matrix m.
// Errors: ErrNilMatrix, ErrNonSquare, ErrIndexMismatch.
// Complexity: O(1).
func ValidateAligned(m Matrix, index *Index) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateAligned", err)
	}
	if index == nil {
		return validatorErrorf("ValidateAligned", ErrNilMatrix)
	}
	if index.Len() != m.Rows() {
		return fmt.Errorf("ValidateAligned: index length %d vs dimension %d: %w",
			index.Len(), m.Rows(), ErrIndexMismatch)
	}

	return nil
}

// ValidateStochastic checks that every row of m sums to 1 within eps.
// Useful for callers that pre-normalize their matrices and for tests;
// the PageRank engine does NOT require stochastic input (it normalizes
// internally), so this validator is advisory.
//
// Errors: ErrNilMatrix, ErrNaNInf (invalid eps), ErrNotStochastic.
// Complexity: O(r*c) time, O(1) space.
func ValidateStochastic(m Matrix, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateStochastic", err)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return validatorErrorf("ValidateStochastic", ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}
	var (
		i, j int
		v    float64
		sum  float64
	)
	for i = 0; i < m.Rows(); i++ {
		sum = 0
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			sum += v
		}
		if math.Abs(sum-1) > eps {
			return fmt.Errorf("ValidateStochastic: row %d sums to %v: %w", i, sum, ErrNotStochastic)
		}
	}

	return nil
}
