package mat

import (
	"github.com/katalvlaran/gamemath/num"
	"github.com/katalvlaran/gamemath/vec"
)

// Mat2 is a 2×2 row-major matrix: element [0] is the top row.
type Mat2[T num.Float] [2]vec.Vec2[T]

// New2 builds a Mat2 from its rows, top first.
func New2[T num.Float](r0, r1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{r0, r1}
}

// Ident2 returns the 2×2 identity matrix.
func Ident2[T num.Float]() Mat2[T] {
	return Mat2[T]{vec.New2[T](1, 0), vec.New2[T](0, 1)}
}

// Rotation2 returns the matrix rotating row vectors by radians.
func Rotation2[T num.Float](radians T) Mat2[T] {
	sin, cos := num.Sin(radians), num.Cos(radians)

	return Mat2[T]{
		vec.New2(cos, sin),
		vec.New2(-sin, cos),
	}
}

// Flat returns the cells as a row-major array.
func (m Mat2[T]) Flat() [4]T {
	return [4]T{m[0].X, m[0].Y, m[1].X, m[1].Y}
}

// Add returns m + o elementwise.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Add(o[0]), m[1].Add(o[1])}
}

// Sub returns m − o elementwise.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Sub(o[0]), m[1].Sub(o[1])}
}

// Mul returns the matrix product m · o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	return Mat2[T]{
		vec.New2(
			m[0].X*o[0].X+m[0].Y*o[1].X,
			m[0].X*o[0].Y+m[0].Y*o[1].Y,
		),
		vec.New2(
			m[1].X*o[0].X+m[1].Y*o[1].X,
			m[1].X*o[0].Y+m[1].Y*o[1].Y,
		),
	}
}

// MulVec returns m · v, each component the dot of a row with v.
func (m Mat2[T]) MulVec(v vec.Vec2[T]) vec.Vec2[T] {
	return vec.New2(m[0].Dot(v), m[1].Dot(v))
}

// Transposed returns m with rows and columns swapped.
func (m Mat2[T]) Transposed() Mat2[T] {
	return Mat2[T]{
		vec.New2(m[0].X, m[1].X),
		vec.New2(m[0].Y, m[1].Y),
	}
}

// Transpose swaps rows and columns in place.
func (m *Mat2[T]) Transpose() {
	*m = m.Transposed()
}

// Determinant returns ad − cb.
func (m Mat2[T]) Determinant() T {
	return m[0].X*m[1].Y - m[1].X*m[0].Y
}

// Inverted returns m⁻¹ via the adjugate, or the zero matrix when the
// determinant is zero.
func (m Mat2[T]) Inverted() Mat2[T] {
	det := m.Determinant()
	if det == 0 {
		return Mat2[T]{}
	}
	inv := 1 / det

	return Mat2[T]{
		vec.New2(inv*m[1].Y, inv*-m[0].Y),
		vec.New2(inv*-m[1].X, inv*m[0].X),
	}
}

// Rotated returns m · Rotation2(radians).
func (m Mat2[T]) Rotated(radians T) Mat2[T] {
	return m.Mul(Rotation2(radians))
}

// Rotate applies Rotated in place.
func (m *Mat2[T]) Rotate(radians T) {
	*m = m.Rotated(radians)
}

// Scaled returns m with row 0 scaled by factor.X and row 1 by factor.Y.
func (m Mat2[T]) Scaled(factor vec.Vec2[T]) Mat2[T] {
	m[0] = m[0].Scale(factor.X)
	m[1] = m[1].Scale(factor.Y)
	return m
}

// Scale applies Scaled in place.
func (m *Mat2[T]) Scale(factor vec.Vec2[T]) {
	*m = m.Scaled(factor)
}

// EqualApprox reports whether every cell of m is within eps of o's.
func (m Mat2[T]) EqualApprox(o Mat2[T], eps T) bool {
	return m[0].EqualApprox(o[0], eps) && m[1].EqualApprox(o[1], eps)
}

// Dim returns 2.
func (Mat2[T]) Dim() int { return 2 }

// At returns the cell at (row, col). It panics outside [0, 2)².
func (m Mat2[T]) At(row, col int) T {
	if row < 0 || row > 1 {
		panic("mat: Mat2 row index out of range")
	}
	if col < 0 || col > 1 {
		panic("mat: Mat2 column index out of range")
	}
	return m[row].At(col)
}

// Set assigns the cell at (row, col). It panics outside [0, 2)².
func (m *Mat2[T]) Set(row, col int, val T) {
	if row < 0 || row > 1 {
		panic("mat: Mat2 row index out of range")
	}
	if col < 0 || col > 1 {
		panic("mat: Mat2 column index out of range")
	}
	m[row].Set(col, val)
}

// Zero returns the all-zero Mat2.
func (Mat2[T]) Zero() Mat2[T] { return Mat2[T]{} }

// Identity returns Ident2, the multiplicative unit.
func (Mat2[T]) Identity() Mat2[T] { return Ident2[T]() }
