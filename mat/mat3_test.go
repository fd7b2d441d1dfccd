package mat_test

import (
	"testing"

	"github.com/katalvlaran/gamemath/mat"
	"github.com/katalvlaran/gamemath/vec"
	"github.com/stretchr/testify/assert"
)

// m3 is shorthand for building a Mat3 from nine cells, row by row.
func m3(a, b, c, d, e, f, g, h, i float64) mat.Mat3[float64] {
	return mat.New3(vec.New3(a, b, c), vec.New3(d, e, f), vec.New3(g, h, i))
}

// TestMat3_IdentityZero verifies the constant matrices and Dim.
func TestMat3_IdentityZero(t *testing.T) {
	assert.Equal(t, m3(1, 0, 0, 0, 1, 0, 0, 0, 1), mat.Ident3[float64]())
	assert.Equal(t, m3(0, 0, 0, 0, 0, 0, 0, 0, 0), mat.Mat3[float64]{}.Zero())
	assert.Equal(t, 3, mat.Mat3[float64]{}.Dim())
	assert.Equal(t, [9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m3(1, 2, 3, 4, 5, 6, 7, 8, 9).Flat())
}

// TestMat3_AddSub verifies elementwise arithmetic.
func TestMat3_AddSub(t *testing.T) {
	a := m3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := m3(9, 8, 7, 6, 5, 4, 3, 2, 1)

	assert.Equal(t, m3(10, 10, 10, 10, 10, 10, 10, 10, 10), a.Add(b))
	assert.Equal(t, m3(-8, -6, -4, -2, 0, 2, 4, 6, 8), a.Sub(b))
}

// TestMat3_Mul verifies a shear product and the identity laws.
func TestMat3_Mul(t *testing.T) {
	a := m3(1, 2, 0, 0, 1, 0, 0, 0, 1)
	b := m3(1, 0, 0, 3, 1, 0, 0, 0, 1)

	assert.Equal(t, m3(7, 2, 0, 3, 1, 0, 0, 0, 1), a.Mul(b))
	assert.Equal(t, a, a.Mul(mat.Ident3[float64]()))
	assert.Equal(t, a, mat.Ident3[float64]().Mul(a))
}

// TestMat3_MulVec verifies the row-times-vector product.
func TestMat3_MulVec(t *testing.T) {
	a := m3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	got := a.MulVec(vec.New3(1.0, 2.0, 3.0))
	assert.Equal(t, vec.New3(14.0, 32.0, 50.0), got)
}

// TestMat3_Transposed verifies the swap and the in-place variant.
func TestMat3_Transposed(t *testing.T) {
	a := m3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	want := m3(1, 4, 7, 2, 5, 8, 3, 6, 9)

	assert.Equal(t, want, a.Transposed())

	a.Transpose()
	assert.Equal(t, want, a)
}

// TestMat3_Determinant verifies the cofactor expansion on a full matrix,
// the identity, and a rank-deficient input.
func TestMat3_Determinant(t *testing.T) {
	assert.Equal(t, 4.0, m3(1, 3, 5, 2, 4, 7, 1, 1, 0).Determinant())
	assert.Equal(t, 1.0, mat.Ident3[float64]().Determinant())
	assert.Equal(t, 0.0, m3(1, 2, 3, 2, 4, 6, 1, 1, 1).Determinant())
}

// TestMat3_Inverted verifies the adjugate inverse cell by cell (the fixture
// inverse is quarter-valued, so the comparison is exact) and the zero-matrix
// contract for a singular input.
func TestMat3_Inverted(t *testing.T) {
	a := m3(1, 3, 5, 2, 4, 7, 1, 1, 0)
	inv := a.Inverted()

	want := m3(
		-1.75, 1.25, 0.25,
		1.75, -1.25, 0.75,
		-0.5, 0.5, -0.5,
	)
	assert.Equal(t, want, inv)
	assert.Equal(t, mat.Ident3[float64](), a.Mul(inv))
	assert.Equal(t, mat.Ident3[float64](), inv.Mul(a))

	assert.Equal(t, mat.Mat3[float64]{}, m3(1, 2, 3, 2, 4, 6, 1, 1, 1).Inverted(),
		"singular inputs invert to the zero matrix")
}

// TestMat3_Rotation verifies the planar quarter turn and additive
// composition through Rotated and Rotate.
func TestMat3_Rotation(t *testing.T) {
	quarter := mat.Rotation3(halfPi)
	assert.True(t, quarter.EqualApprox(m3(0, 1, 0, -1, 0, 0, 0, 0, 1), 1e-12))

	composed := mat.Rotation3(0.3).Rotated(0.4)
	assert.True(t, composed.EqualApprox(mat.Rotation3(0.7), 1e-12))

	inPlace := mat.Rotation3(0.3)
	inPlace.Rotate(0.4)
	assert.Equal(t, composed, inPlace)
}

// TestMat3_Translated verifies that translation lands in the last row,
// that translations compose additively, and that a rotated basis bends
// the offset accordingly.
func TestMat3_Translated(t *testing.T) {
	moved := mat.Ident3[float64]().Translated(vec.New2(2.0, 3.0))
	assert.Equal(t, m3(1, 0, 0, 0, 1, 0, 2, 3, 1), moved)

	twice := moved.Translated(vec.New2(-1.0, 4.0))
	assert.Equal(t, m3(1, 0, 0, 0, 1, 0, 1, 7, 1), twice)

	bent := mat.Rotation3(halfPi).Translated(vec.New2(1.0, 0.0))
	assert.True(t, bent.EqualApprox(m3(0, 1, 0, -1, 0, 0, 0, 1, 1), 1e-12),
		"offsets travel through the rotated basis")

	inPlace := mat.Ident3[float64]()
	inPlace.Translate(vec.New2(2.0, 3.0))
	assert.Equal(t, moved, inPlace)
}

// TestMat3_Scaled verifies that scaling touches the two basis rows and
// leaves the translation row alone.
func TestMat3_Scaled(t *testing.T) {
	a := m3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	want := m3(2, 4, 6, 12, 15, 18, 7, 8, 9)

	assert.Equal(t, want, a.Scaled(vec.New2(2.0, 3.0)))

	a.Scale(vec.New2(2.0, 3.0))
	assert.Equal(t, want, a)
}

// TestMat3_CellAccess verifies At/Set and the row panic contract.
func TestMat3_CellAccess(t *testing.T) {
	a := m3(1, 2, 3, 4, 5, 6, 7, 8, 9)

	assert.Equal(t, 6.0, a.At(1, 2))
	a.Set(2, 0, -7)
	assert.Equal(t, -7.0, a[2].X)

	assert.PanicsWithValue(t, "mat: Mat3 row index out of range", func() { a.At(3, 0) })
	assert.PanicsWithValue(t, "mat: Mat3 column index out of range", func() { a.At(0, 3) })
	assert.PanicsWithValue(t, "mat: Mat3 column index out of range", func() { a.Set(0, -1, 0) })
}
