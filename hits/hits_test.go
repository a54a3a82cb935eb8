package hits_test

import (
	"math"
	"testing"

	"github.com/cognetlab/assocrank/assoc"
	"github.com/cognetlab/assocrank/hits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoreTol is the slack allowed when comparing converged scores to their
// analytic values; the engine converges to DefaultTolerance = 1e-8.
const scoreTol = 1e-4

// mustDense builds a Dense matrix from rows, failing the test on error.
func mustDense(t *testing.T, rows [][]float64) *assoc.Dense {
	t.Helper()
	m, err := assoc.NewDenseFromRows(rows)
	require.NoError(t, err, "test fixture must build")

	return m
}

// l2 returns the Euclidean norm of v.
func l2(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}

	return math.Sqrt(s)
}

// TestRank_NilMatrix verifies the nil-matrix sentinel surfaces via errors.Is.
func TestRank_NilMatrix(t *testing.T) {
	_, err := hits.Rank(nil)
	assert.ErrorIs(t, err, assoc.ErrNilMatrix, "nil matrix must fail fast")
}

// TestRank_NonSquare verifies that a rectangular matrix is rejected before
// any iteration.
func TestRank_NonSquare(t *testing.T) {
	m, err := assoc.NewDense(3, 2)
	require.NoError(t, err)

	_, err = hits.Rank(m)
	assert.ErrorIs(t, err, assoc.ErrNonSquare, "rectangular input must be rejected")
}

// TestRank_NegativeValue verifies that a negative weight is rejected with
// the assoc sentinel.
func TestRank_NegativeValue(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, -1},
		{0, 0},
	})

	_, err := hits.Rank(m)
	assert.ErrorIs(t, err, assoc.ErrNegativeValue, "negative weight must be rejected")
}

// TestRank_SingleItemZero verifies the documented degenerate boundary:
// [[0]] yields zero authority and hub vectors, Converged=true, and no
// division by zero.
func TestRank_SingleItemZero(t *testing.T) {
	m := mustDense(t, [][]float64{{0}})

	res, err := hits.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, res.Authority, "nothing points at the lone item")
	assert.Equal(t, []float64{0}, res.Hub, "the lone item points at nothing")
	assert.True(t, res.Converged)
}

// TestRank_SingleItemSelf verifies n=1 with a self-association: both
// vectors are [1.0].
func TestRank_SingleItemSelf(t *testing.T) {
	m := mustDense(t, [][]float64{{0.5}})

	res, err := hits.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, res.Authority)
	assert.Equal(t, []float64{1}, res.Hub)
	assert.True(t, res.Converged)
}

// TestRank_AllZeroMatrix verifies that an association-free matrix yields
// zero vectors (zero-vector normalization is a no-op) without error.
func TestRank_AllZeroMatrix(t *testing.T) {
	m, err := assoc.NewDense(4, 4)
	require.NoError(t, err)

	res, err := hits.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 4), res.Authority)
	assert.Equal(t, make([]float64, 4), res.Hub)
	assert.True(t, res.Converged)
}

// TestRank_SingleEdge verifies the smallest non-trivial structure:
// with one association cue→response, the response is the sole authority
// and the cue the sole hub.
func TestRank_SingleEdge(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1},
		{0, 0},
	})

	res, err := hits.Rank(m)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 0, res.Authority[0], 1e-12)
	assert.InDelta(t, 1, res.Authority[1], 1e-12)
	assert.InDelta(t, 1, res.Hub[0], 1e-12)
	assert.InDelta(t, 0, res.Hub[1], 1e-12)
}

// TestRank_UnitNorms verifies both returned vectors carry unit L2 norm at
// convergence for a matrix with at least one non-zero entry.
func TestRank_UnitNorms(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 0.4, 0.6},
		{0.2, 0, 0.8},
		{0.5, 0.5, 0},
	})

	res, err := hits.Rank(m)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 1, l2(res.Authority), 1e-9, "authority must have unit L2 norm")
	assert.InDelta(t, 1, l2(res.Hub), 1e-9, "hub must have unit L2 norm")
}

// TestRank_ZeroColumnAndRow verifies the documented expectations: an item
// with an all-zero column gets authority 0, an item with an all-zero row
// gets hub 0. The remaining scores match the principal eigenvectors of
// AᵀA and AAᵀ (analytic values for this fixture).
func TestRank_ZeroColumnAndRow(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	})

	res, err := hits.Rank(m)
	require.NoError(t, err)
	assert.True(t, res.Converged)

	// Nothing points at item 0; item 2 points at nothing.
	assert.InDelta(t, 0, res.Authority[0], 1e-9, "zero column ⇒ zero authority")
	assert.InDelta(t, 0, res.Hub[2], 1e-9, "zero row ⇒ zero hub")

	// Principal eigenvector components: (√5−1)/2-shaped ratios.
	assert.InDelta(t, 0.52573, res.Authority[1], scoreTol)
	assert.InDelta(t, 0.85065, res.Authority[2], scoreTol)
	assert.InDelta(t, 0.85065, res.Hub[0], scoreTol)
	assert.InDelta(t, 0.52573, res.Hub[1], scoreTol)
}

// TestRank_VariantsAgree verifies the two computation strategies converge
// to the same fixed point on the same input.
func TestRank_VariantsAgree(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1, 1, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	})

	mr, err := hits.Rank(m, hits.WithTolerance(1e-10), hits.WithMaxIterations(500))
	require.NoError(t, err)
	sq, err := hits.Rank(m,
		hits.WithVariant(hits.SquaredMatrix),
		hits.WithTolerance(1e-10),
		hits.WithMaxIterations(500),
	)
	require.NoError(t, err)

	require.True(t, mr.Converged, "mutual-reinforcement variant must converge")
	require.True(t, sq.Converged, "squared-matrix variant must converge")
	for i := range mr.Authority {
		assert.InDelta(t, mr.Authority[i], sq.Authority[i], 1e-5, "authority %d", i)
		assert.InDelta(t, mr.Hub[i], sq.Hub[i], 1e-5, "hub %d", i)
	}
}

// TestRank_Binarize verifies that thresholding to {0,1} makes the ranking
// identical to running on the explicit binary matrix.
func TestRank_Binarize(t *testing.T) {
	weighted := mustDense(t, [][]float64{
		{0, 9, 0.25},
		{0, 0, 7},
		{0, 0, 0},
	})
	binary := mustDense(t, [][]float64{
		{0, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	})

	bin, err := hits.Rank(weighted, hits.WithBinarize())
	require.NoError(t, err)
	ref, err := hits.Rank(binary)
	require.NoError(t, err)

	assert.Equal(t, ref.Authority, bin.Authority, "binarized run must equal the binary matrix run")
	assert.Equal(t, ref.Hub, bin.Hub)
}

// TestRank_Damped verifies the randomized variant: the teleport term keeps
// every score strictly positive, norms stay unit.
func TestRank_Damped(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1},
		{0, 0},
	})

	res, err := hits.Rank(m, hits.WithDamping(0.85))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	for i := range res.Authority {
		assert.Positive(t, res.Authority[i], "teleport must keep authority %d positive", i)
		assert.Positive(t, res.Hub[i], "teleport must keep hub %d positive", i)
	}
	assert.InDelta(t, 1, l2(res.Authority), 1e-9)
	assert.InDelta(t, 1, l2(res.Hub), 1e-9)
}

// TestRank_OptionPanics verifies option constructors reject nonsensical
// values with a panic (programmer error, not a runtime error path).
func TestRank_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { hits.WithTolerance(-1) }, "negative tolerance")
	assert.Panics(t, func() { hits.WithMaxIterations(-5) }, "negative cap")
	assert.Panics(t, func() { hits.WithDamping(0) }, "damping 0 is out of range")
	assert.Panics(t, func() { hits.WithDamping(1.5) }, "damping above 1")
	assert.Panics(t, func() { hits.WithVariant(hits.Variant(9)) }, "unknown variant")
}

// TestRank_NonConvergenceCutoff verifies the non-fatal cutoff policy: an
// iteration cap of 1 returns best-effort vectors with Converged=false and
// no error.
func TestRank_NonConvergenceCutoff(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1},
		{0, 0},
	})

	res, err := hits.Rank(m, hits.WithMaxIterations(1))
	require.NoError(t, err, "hitting the cap is never an error")
	assert.False(t, res.Converged, "one alternating step cannot reach 1e-8 here")
	assert.Equal(t, 1, res.Iterations)
	assert.Positive(t, res.Delta)
	assert.Len(t, res.Authority, 2)
	assert.Len(t, res.Hub, 2)
}

// TestRank_Idempotent verifies that re-running on the identical matrix with
// identical parameters yields bit-for-bit identical output.
func TestRank_Idempotent(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 0.3, 0.7},
		{0.1, 0, 0.9},
		{0.4, 0.6, 0},
	})

	first, err := hits.Rank(m)
	require.NoError(t, err)
	second, err := hits.Rank(m)
	require.NoError(t, err)

	assert.Equal(t, first.Authority, second.Authority, "authority must be bit-for-bit identical")
	assert.Equal(t, first.Hub, second.Hub, "hub must be bit-for-bit identical")
	assert.Equal(t, first.Iterations, second.Iterations)
}

// TestRank_InputNotMutated verifies the engine treats the matrix as
// read-only, for both variants.
func TestRank_InputNotMutated(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 2},
		{3, 0},
	})
	want := m.Clone()

	_, err := hits.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, want.String(), m.String(), "mutual-reinforcement must not mutate input")

	_, err = hits.Rank(m, hits.WithVariant(hits.SquaredMatrix))
	require.NoError(t, err)
	assert.Equal(t, want.String(), m.String(), "squared-matrix must not mutate input")
}
