package assoc_test

import (
	"testing"

	"github.com/cognetlab/assocrank/assoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that non-positive dimensions are rejected.
func TestNewDense_BadShape(t *testing.T) {
	_, err := assoc.NewDense(0, 3)
	assert.ErrorIs(t, err, assoc.ErrBadShape, "zero rows must be rejected")

	_, err = assoc.NewDense(3, -1)
	assert.ErrorIs(t, err, assoc.ErrBadShape, "negative cols must be rejected")
}

// TestNewDense_ZeroInitialized verifies a fresh matrix reads as all zeros.
func TestNewDense_ZeroInitialized(t *testing.T) {
	m, err := assoc.NewDense(2, 2)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v, "cell (%d,%d) must start at zero", i, j)
		}
	}
}

// TestNewDenseFromRows_RaggedInput verifies ragged row data is rejected.
func TestNewDenseFromRows_RaggedInput(t *testing.T) {
	_, err := assoc.NewDenseFromRows([][]float64{
		{1, 2},
		{3},
	})
	assert.ErrorIs(t, err, assoc.ErrBadShape, "ragged rows must be rejected")

	_, err = assoc.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, assoc.ErrBadShape, "empty input must be rejected")
}

// TestDense_AtSetBounds verifies public indexers return ErrOutOfRange
// instead of panicking.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := assoc.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, assoc.ErrOutOfRange, "row overflow on At")
	_, err = m.At(0, 3)
	assert.ErrorIs(t, err, assoc.ErrOutOfRange, "col overflow on At")
	err = m.Set(-1, 0, 1)
	assert.ErrorIs(t, err, assoc.ErrOutOfRange, "negative row on Set")

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v, "round-trip through Set/At")
}

// TestDense_RowCopies verifies Row returns an independent copy.
func TestDense_RowCopies(t *testing.T) {
	m, err := assoc.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, row)

	row[0] = 99
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "mutating the returned row must not touch the matrix")

	_, err = m.Row(5)
	assert.ErrorIs(t, err, assoc.ErrOutOfRange)
}

// TestDense_CloneIndependence verifies Clone yields a deep, detached copy.
func TestDense_CloneIndependence(t *testing.T) {
	m, err := assoc.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 42))

	orig, _ := m.At(0, 0)
	assert.Equal(t, 1.0, orig, "mutating the clone must not touch the original")
}

// TestDense_FromRowsCopiesInput verifies the constructor copies its input.
func TestDense_FromRowsCopiesInput(t *testing.T) {
	rows := [][]float64{
		{1, 2},
		{3, 4},
	}
	m, err := assoc.NewDenseFromRows(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "mutating the source rows must not touch the matrix")
}
