package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightmat/lm"
	"github.com/ajroetker/go-lightmat/lm/mat"
)

type dk = lm.DefaultKind

// fillDense builds an m x n matrix with deterministic, sign-varying
// values so max and min land on different slots than sum.
func fillDense(m, n int) mat.Dense[float64] {
	data := make([]float64, m*n)
	for i := range data {
		data[i] = math.Sin(float64(i)*0.7)*9 + float64(i%5)
	}
	return mat.NewDense(m, n, data)
}

func naiveColwise(a mat.Dense[float64], empty float64, fold func(acc, x float64) float64) []float64 {
	out := make([]float64, a.Cols())
	for j := range a.Cols() {
		acc := empty
		for i := range a.Rows() {
			acc = fold(acc, a.At(i, j))
		}
		out[j] = acc
	}
	return out
}

func naiveRowwise(a mat.Dense[float64], empty float64, fold func(acc, x float64) float64) []float64 {
	out := make([]float64, a.Rows())
	for i := range a.Rows() {
		acc := empty
		for j := range a.Cols() {
			acc = fold(acc, a.At(i, j))
		}
		out[i] = acc
	}
	return out
}

func addF(a, x float64) float64 { return a + x }

func maxF(a, x float64) float64 {
	if x > a {
		return x
	}
	return a
}

func minF(a, x float64) float64 {
	if x < a {
		return x
	}
	return a
}

func requireSliceInDelta(t *testing.T, want, got []float64, delta float64) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), "elem %d: got %v, want NaN", i, got[i])
			continue
		}
		if math.IsInf(want[i], 0) {
			require.Equal(t, want[i], got[i], "elem %d", i)
			continue
		}
		require.InDelta(t, want[i], got[i], delta, "elem %d", i)
	}
}

// The 4x3 matrix 1..12 in column-major order is the worked example:
// columns sum to [10 26 42], rows to [15 18 21 24].
func TestColwiseSumConcrete(t *testing.T) {
	a := mat.NewDense(4, 3, inc(12))
	dst := make([]float64, 3)
	mat.ColwiseSum(a, dst)
	require.Equal(t, []float64{10, 26, 42}, dst)
}

func TestRowwiseSumConcrete(t *testing.T) {
	a := mat.NewDense(4, 3, inc(12))
	dst := make([]float64, 4)
	mat.RowwiseSum(a, dst)
	require.Equal(t, []float64{15, 18, 21, 24}, dst)
}

func TestColwiseMeanConcrete(t *testing.T) {
	a := mat.NewDense(4, 3, inc(12))
	dst := make([]float64, 3)
	mat.ColwiseMean(a, dst)
	require.Equal(t, []float64{2.5, 6.5, 10.5}, dst)
}

// testShapes includes extents that are not multiples of any pack width,
// plus zero extents.
var testShapes = []struct{ m, n int }{
	{0, 0}, {0, 3}, {5, 0}, {1, 1}, {1, 6}, {8, 1},
	{2, 2}, {3, 5}, {4, 3}, {7, 4}, {8, 6}, {16, 5}, {17, 9}, {33, 2},
}

func TestColwiseAgainstNaive(t *testing.T) {
	for _, s := range testShapes {
		a := fillDense(s.m, s.n)
		dst := make([]float64, s.n)

		mat.ColwiseSum(a, dst)
		requireSliceInDelta(t, naiveColwise(a, 0, addF), dst, 1e-9)

		mat.ColwiseMaximum(a, dst)
		requireSliceInDelta(t, naiveColwise(a, math.Inf(-1), maxF), dst, 0)

		mat.ColwiseMinimum(a, dst)
		requireSliceInDelta(t, naiveColwise(a, math.Inf(1), minF), dst, 0)

		mat.ColwiseMean(a, dst)
		want := naiveColwise(a, 0, addF)
		for j := range want {
			if s.m == 0 {
				want[j] = math.NaN()
			} else {
				want[j] /= float64(s.m)
			}
		}
		requireSliceInDelta(t, want, dst, 1e-9)
	}
}

func TestRowwiseAgainstNaive(t *testing.T) {
	for _, s := range testShapes {
		a := fillDense(s.m, s.n)
		dst := make([]float64, s.m)

		mat.RowwiseSum(a, dst)
		requireSliceInDelta(t, naiveRowwise(a, 0, addF), dst, 1e-9)

		mat.RowwiseMaximum(a, dst)
		requireSliceInDelta(t, naiveRowwise(a, math.Inf(-1), maxF), dst, 0)

		mat.RowwiseMinimum(a, dst)
		requireSliceInDelta(t, naiveRowwise(a, math.Inf(1), minF), dst, 0)

		mat.RowwiseMean(a, dst)
		want := naiveRowwise(a, 0, addF)
		for i := range want {
			if s.n == 0 {
				want[i] = math.NaN()
			} else {
				want[i] /= float64(s.n)
			}
		}
		requireSliceInDelta(t, want, dst, 1e-9)
	}
}

// With a single column there is one initialization and zero combine
// steps, so the rowwise sum is the column itself.
func TestRowwiseSumSingleColumnIdentity(t *testing.T) {
	col := []float64{3.5, -1, 0, 7, 2.25}
	a := mat.NewDense(5, 1, col)
	dst := make([]float64, 5)
	mat.RowwiseSum(a, dst)
	require.Equal(t, col, dst)
}

func TestZeroExtentEmptyValues(t *testing.T) {
	a := mat.NewDense[float64](0, 4, nil)
	dst := []float64{99, 99, 99, 99}

	mat.ColwiseSum(a, dst)
	require.Equal(t, []float64{0, 0, 0, 0}, dst)

	mat.ColwiseMaximum(a, dst)
	for _, v := range dst {
		require.True(t, math.IsInf(v, -1))
	}

	mat.ColwiseMinimum(a, dst)
	for _, v := range dst {
		require.True(t, math.IsInf(v, 1))
	}

	mat.ColwiseMean(a, dst)
	for _, v := range dst {
		require.True(t, math.IsNaN(v))
	}

	b := mat.NewDense[float64](3, 0, nil)
	rdst := []float64{99, 99, 99}

	mat.RowwiseSum(b, rdst)
	require.Equal(t, []float64{0, 0, 0}, rdst)

	mat.RowwiseMaximum(b, rdst)
	for _, v := range rdst {
		require.True(t, math.IsInf(v, -1))
	}

	mat.RowwiseMean(b, rdst)
	for _, v := range rdst {
		require.True(t, math.IsNaN(v))
	}
}

func TestTransformedFoldIdentity(t *testing.T) {
	ident := lm.Ident[float64, dk]{}
	for _, s := range testShapes {
		a := fillDense(s.m, s.n)

		plain := make([]float64, s.n)
		fused := make([]float64, s.n)
		mat.ColwiseSum(a, plain)
		mat.ColwiseSumX(ident, a, fused)
		requireSliceInDelta(t, plain, fused, 0)

		mat.ColwiseMaximum(a, plain)
		mat.ColwiseMaximumX(ident, a, fused)
		requireSliceInDelta(t, plain, fused, 0)

		rplain := make([]float64, s.m)
		rfused := make([]float64, s.m)
		mat.RowwiseSum(a, rplain)
		mat.RowwiseSumX(ident, a, rfused)
		requireSliceInDelta(t, rplain, rfused, 0)

		mat.RowwiseMinimum(a, rplain)
		mat.RowwiseMinimumX(ident, a, rfused)
		requireSliceInDelta(t, rplain, rfused, 0)

		mat.RowwiseMean(a, rplain)
		mat.RowwiseMeanX(ident, a, rfused)
		requireSliceInDelta(t, rplain, rfused, 0)
	}
}

func TestTransformedFoldAbs(t *testing.T) {
	a := fillDense(9, 4)
	dst := make([]float64, 4)
	mat.ColwiseMaximumX(lm.AbsT[float64, dk]{}, a, dst)

	want := make([]float64, 4)
	for j := range 4 {
		acc := math.Inf(-1)
		for i := range 9 {
			acc = maxF(acc, math.Abs(a.At(i, j)))
		}
		want[j] = acc
	}
	require.Equal(t, want, dst)
}

// Fusing the subtraction into the fold must equal materializing A - B
// and reducing it.
func TestTwoOperandFusedFold(t *testing.T) {
	for _, s := range testShapes {
		a := fillDense(s.m, s.n)
		b := fillDense(s.m, s.n)
		// Perturb b so the difference is not zero everywhere.
		for j := range s.n {
			for i := range s.m {
				b.Set(i, j, b.At(i, j)*0.5+1)
			}
		}

		diffData := make([]float64, s.m*s.n)
		diff := mat.NewDense(s.m, s.n, diffData)
		mat.Sub(a, b, diff)

		fused := make([]float64, s.n)
		plain := make([]float64, s.n)
		mat.ColwiseSumX2(lm.DiffT[float64, dk]{}, a, b, fused)
		mat.ColwiseSum(diff, plain)
		requireSliceInDelta(t, plain, fused, 1e-9)

		mat.ColwiseMeanX2(lm.DiffT[float64, dk]{}, a, b, fused)
		mat.ColwiseMean(diff, plain)
		requireSliceInDelta(t, plain, fused, 1e-9)

		rfused := make([]float64, s.m)
		rplain := make([]float64, s.m)
		mat.RowwiseMinimumX2(lm.DiffT[float64, dk]{}, a, b, rfused)
		mat.RowwiseMinimum(diff, rplain)
		requireSliceInDelta(t, rplain, rfused, 1e-9)

		mat.RowwiseSumX2(lm.DiffT[float64, dk]{}, a, b, rfused)
		mat.RowwiseSum(diff, rplain)
		requireSliceInDelta(t, rplain, rfused, 1e-9)
	}
}

func TestTwoOperandShapeMismatch(t *testing.T) {
	a := mat.NewDense(4, 3, inc(12))
	b := mat.NewDense(3, 4, inc(12))
	dst := make([]float64, 4)

	require.Panics(t, func() { mat.ColwiseSumX2(lm.DiffT[float64, dk]{}, a, b, dst) })
	require.Panics(t, func() { mat.RowwiseSumX2(lm.DiffT[float64, dk]{}, a, b, dst) })
	require.Panics(t, func() { mat.SumX2(lm.DiffT[float64, dk]{}, a, b) })
}

func TestFullReductions(t *testing.T) {
	a := mat.NewDense(4, 3, inc(12))
	require.Equal(t, 78.0, mat.Sum(a))
	require.Equal(t, 6.5, mat.Mean(a))
	require.Equal(t, 12.0, mat.Maximum(a))
	require.Equal(t, 1.0, mat.Minimum(a))

	empty := mat.NewDense[float64](0, 0, nil)
	require.Equal(t, 0.0, mat.Sum(empty))
	require.True(t, math.IsNaN(mat.Mean(empty)))
	require.True(t, math.IsInf(mat.Maximum(empty), -1))
	require.True(t, math.IsInf(mat.Minimum(empty), 1))
}

func TestFullReductionsStrided(t *testing.T) {
	// The strided view must reduce to the same results as a compacted
	// copy of the same elements.
	buf := make([]float64, 40)
	for i := range buf {
		buf[i] = math.Cos(float64(i)) * 7
	}
	s := mat.NewDenseStride(5, 4, 10, buf)

	compact := make([]float64, 20)
	c := mat.NewDense(5, 4, compact)
	for j := range 4 {
		for i := range 5 {
			c.Set(i, j, s.At(i, j))
		}
	}

	require.InDelta(t, mat.Sum(c), mat.Sum(s), 1e-9)
	require.Equal(t, mat.Maximum(c), mat.Maximum(s))
	require.Equal(t, mat.Minimum(c), mat.Minimum(s))
	require.InDelta(t, mat.Mean(c), mat.Mean(s), 1e-9)

	dst := make([]float64, 4)
	wdst := make([]float64, 4)
	mat.ColwiseSum(s, dst)
	mat.ColwiseSum(c, wdst)
	requireSliceInDelta(t, wdst, dst, 1e-9)
}

func TestFullTransformedReductions(t *testing.T) {
	a := fillDense(7, 5)

	var sumSq float64
	for j := range 5 {
		for i := range 7 {
			sumSq += a.At(i, j) * a.At(i, j)
		}
	}
	require.InDelta(t, sumSq, mat.SumX(lm.SquareT[float64, dk]{}, a), 1e-9)
	require.InDelta(t, sumSq/35, mat.MeanX(lm.SquareT[float64, dk]{}, a), 1e-9)

	b := fillDense(7, 5)
	var dot float64
	for j := range 5 {
		for i := range 7 {
			dot += a.At(i, j) * b.At(i, j)
		}
	}
	require.InDelta(t, dot, mat.SumX2(lm.ProdT[float64, dk]{}, a, b), 1e-9)

	var maxDiff float64 = math.Inf(-1)
	for j := range 5 {
		for i := range 7 {
			maxDiff = maxF(maxDiff, a.At(i, j)-b.At(i, j))
		}
	}
	require.Equal(t, maxDiff, mat.MaximumX2(lm.DiffT[float64, dk]{}, a, b))

	require.True(t, math.IsNaN(mat.MeanX(lm.SquareT[float64, dk]{}, mat.NewDense[float64](0, 2, nil))))
	require.True(t, math.IsNaN(mat.MeanX2(lm.DiffT[float64, dk]{}, mat.NewDense[float64](2, 0, nil), mat.NewDense[float64](2, 0, nil))))
}

func TestReduceFloat32(t *testing.T) {
	data := make([]float32, 12)
	for i := range data {
		data[i] = float32(i + 1)
	}
	a := mat.NewDense(4, 3, data)

	dst := make([]float32, 3)
	mat.ColwiseSum(a, dst)
	require.Equal(t, []float32{10, 26, 42}, dst)

	rdst := make([]float32, 4)
	mat.RowwiseMaximum(a, rdst)
	require.Equal(t, []float32{9, 10, 11, 12}, rdst)

	require.Equal(t, float32(78), mat.Sum(a))
}

func TestReduceDstTooShort(t *testing.T) {
	a := mat.NewDense(4, 3, inc(12))
	require.Panics(t, func() { mat.ColwiseSum(a, make([]float64, 2)) })
	require.Panics(t, func() { mat.RowwiseSum(a, make([]float64, 3)) })
}
