package mat

import (
	"github.com/katalvlaran/gamemath/num"
	"github.com/katalvlaran/gamemath/vec"
)

// Mat3 is a 3×3 row-major matrix, the homogeneous transform of 2-D space:
// rows 0 and 1 carry the linear part, row 2 the translation.
type Mat3[T num.Float] [3]vec.Vec3[T]

// New3 builds a Mat3 from its rows, top first.
func New3[T num.Float](r0, r1, r2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{r0, r1, r2}
}

// Ident3 returns the 3×3 identity matrix.
func Ident3[T num.Float]() Mat3[T] {
	return Mat3[T]{
		vec.New3[T](1, 0, 0),
		vec.New3[T](0, 1, 0),
		vec.New3[T](0, 0, 1),
	}
}

// Rotation3 returns the homogeneous matrix rotating 2-D row vectors by
// radians about the origin.
func Rotation3[T num.Float](radians T) Mat3[T] {
	sin, cos := num.Sin(radians), num.Cos(radians)

	return Mat3[T]{
		vec.New3(cos, sin, 0),
		vec.New3(-sin, cos, 0),
		vec.New3[T](0, 0, 1),
	}
}

// Flat returns the cells as a row-major array.
func (m Mat3[T]) Flat() [9]T {
	return [9]T{
		m[0].X, m[0].Y, m[0].Z,
		m[1].X, m[1].Y, m[1].Z,
		m[2].X, m[2].Y, m[2].Z,
	}
}

// Add returns m + o elementwise.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2])}
}

// Sub returns m − o elementwise.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2])}
}

// Mul returns the matrix product m · o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for r := 0; r < 3; r++ {
		out[r] = vec.New3(
			m[r].X*o[0].X+m[r].Y*o[1].X+m[r].Z*o[2].X,
			m[r].X*o[0].Y+m[r].Y*o[1].Y+m[r].Z*o[2].Y,
			m[r].X*o[0].Z+m[r].Y*o[1].Z+m[r].Z*o[2].Z,
		)
	}
	return out
}

// MulVec returns m · v, each component the dot of a row with v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) vec.Vec3[T] {
	return vec.New3(m[0].Dot(v), m[1].Dot(v), m[2].Dot(v))
}

// Transposed returns m with rows and columns swapped.
func (m Mat3[T]) Transposed() Mat3[T] {
	return Mat3[T]{
		vec.New3(m[0].X, m[1].X, m[2].X),
		vec.New3(m[0].Y, m[1].Y, m[2].Y),
		vec.New3(m[0].Z, m[1].Z, m[2].Z),
	}
}

// Transpose swaps rows and columns in place.
func (m *Mat3[T]) Transpose() {
	*m = m.Transposed()
}

// Determinant returns the cofactor expansion along the top row.
func (m Mat3[T]) Determinant() T {
	p1 := m[2].Z*m[1].Y - m[1].Z*m[2].Y
	p2 := -m[2].Z*m[1].X + m[1].Z*m[2].X
	p3 := m[2].Y*m[1].X - m[1].Y*m[2].X

	return m[0].X*p1 + m[0].Y*p2 + m[0].Z*p3
}

// Inverted returns m⁻¹ via the adjugate, or the zero matrix when the
// determinant is zero.
func (m Mat3[T]) Inverted() Mat3[T] {
	det := m.Determinant()
	if det == 0 {
		return Mat3[T]{}
	}
	inv := 1 / det

	return Mat3[T]{
		vec.New3(
			(m[2].Z*m[1].Y-m[1].Z*m[2].Y)*inv,
			(-m[2].Z*m[0].Y+m[0].Z*m[2].Y)*inv,
			(m[1].Z*m[0].Y-m[0].Z*m[1].Y)*inv,
		),
		vec.New3(
			(-m[2].Z*m[1].X+m[1].Z*m[2].X)*inv,
			(m[2].Z*m[0].X-m[0].Z*m[2].X)*inv,
			(-m[1].Z*m[0].X+m[0].Z*m[1].X)*inv,
		),
		vec.New3(
			(m[2].Y*m[1].X-m[1].Y*m[2].X)*inv,
			(-m[2].Y*m[0].X+m[0].Y*m[2].X)*inv,
			(m[1].Y*m[0].X-m[0].Y*m[1].X)*inv,
		),
	}
}

// Rotated returns m · Rotation3(radians).
func (m Mat3[T]) Rotated(radians T) Mat3[T] {
	return m.Mul(Rotation3(radians))
}

// Rotate applies Rotated in place.
func (m *Mat3[T]) Rotate(radians T) {
	*m = m.Rotated(radians)
}

// Scaled returns m with the linear rows scaled per axis; the translation
// row is untouched.
func (m Mat3[T]) Scaled(factor vec.Vec2[T]) Mat3[T] {
	m[0] = m[0].Scale(factor.X)
	m[1] = m[1].Scale(factor.Y)
	return m
}

// Scale applies Scaled in place.
func (m *Mat3[T]) Scale(factor vec.Vec2[T]) {
	*m = m.Scaled(factor)
}

// Translated returns m moved by t in its own basis: the translation row
// gains t.X times row 0 plus t.Y times row 1.
func (m Mat3[T]) Translated(t vec.Vec2[T]) Mat3[T] {
	m[2].X += m[0].X*t.X + m[1].X*t.Y
	m[2].Y += m[0].Y*t.X + m[1].Y*t.Y
	m[2].Z += m[0].Z*t.X + m[1].Z*t.Y
	return m
}

// Translate applies Translated in place.
func (m *Mat3[T]) Translate(t vec.Vec2[T]) {
	*m = m.Translated(t)
}

// EqualApprox reports whether every cell of m is within eps of o's.
func (m Mat3[T]) EqualApprox(o Mat3[T], eps T) bool {
	return m[0].EqualApprox(o[0], eps) &&
		m[1].EqualApprox(o[1], eps) &&
		m[2].EqualApprox(o[2], eps)
}

// Dim returns 3.
func (Mat3[T]) Dim() int { return 3 }

// At returns the cell at (row, col). It panics outside [0, 3)².
func (m Mat3[T]) At(row, col int) T {
	if row < 0 || row > 2 {
		panic("mat: Mat3 row index out of range")
	}
	if col < 0 || col > 2 {
		panic("mat: Mat3 column index out of range")
	}
	return m[row].At(col)
}

// Set assigns the cell at (row, col). It panics outside [0, 3)².
func (m *Mat3[T]) Set(row, col int, val T) {
	if row < 0 || row > 2 {
		panic("mat: Mat3 row index out of range")
	}
	if col < 0 || col > 2 {
		panic("mat: Mat3 column index out of range")
	}
	m[row].Set(col, val)
}

// Zero returns the all-zero Mat3.
func (Mat3[T]) Zero() Mat3[T] { return Mat3[T]{} }

// Identity returns Ident3, the multiplicative unit.
func (Mat3[T]) Identity() Mat3[T] { return Ident3[T]() }
