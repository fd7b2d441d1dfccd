package mat

import (
	"github.com/katalvlaran/gamemath/num"
	"github.com/katalvlaran/gamemath/vec"
)

// Mat4 is a 4×4 row-major matrix, the homogeneous transform of 3-D space:
// rows 0–2 carry the linear part, row 3 the translation.
type Mat4[T num.Float] [4]vec.Vec4[T]

// New4 builds a Mat4 from its rows, top first.
func New4[T num.Float](r0, r1, r2, r3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}
}

// Ident4 returns the 4×4 identity matrix.
func Ident4[T num.Float]() Mat4[T] {
	return Mat4[T]{
		vec.New4[T](1, 0, 0, 0),
		vec.New4[T](0, 1, 0, 0),
		vec.New4[T](0, 0, 1, 0),
		vec.New4[T](0, 0, 0, 1),
	}
}

// FromFlat4 builds a Mat4 from 16 row-major cells, the layout Flat emits.
func FromFlat4[T num.Float](cells [16]T) Mat4[T] {
	return Mat4[T]{
		vec.New4(cells[0], cells[1], cells[2], cells[3]),
		vec.New4(cells[4], cells[5], cells[6], cells[7]),
		vec.New4(cells[8], cells[9], cells[10], cells[11]),
		vec.New4(cells[12], cells[13], cells[14], cells[15]),
	}
}

// Rotation4 returns the matrix rotating by radians about axis. The axis is
// normalized internally, so any non-zero direction works.
func Rotation4[T num.Float](radians T, axis vec.Vec3[T]) Mat4[T] {
	sin, cos := num.Sin(radians), num.Cos(radians)
	cosM1 := 1 - cos
	a := axis.Normalized()

	return Mat4[T]{
		vec.New4(
			a.X*a.X*cosM1+cos,
			a.X*a.Y*cosM1-a.Z*sin,
			a.X*a.Z*cosM1+a.Y*sin,
			0,
		),
		vec.New4(
			a.Y*a.X*cosM1+a.Z*sin,
			a.Y*a.Y*cosM1+cos,
			a.Y*a.Z*cosM1-a.X*sin,
			0,
		),
		vec.New4(
			a.Z*a.X*cosM1-a.Y*sin,
			a.Z*a.Y*cosM1+a.X*sin,
			a.Z*a.Z*cosM1+cos,
			0,
		),
		vec.New4[T](0, 0, 0, 1),
	}
}

// Flat returns the 16 cells in row-major order, ready for bulk upload.
func (m Mat4[T]) Flat() [16]T {
	return [16]T{
		m[0].X, m[0].Y, m[0].Z, m[0].W,
		m[1].X, m[1].Y, m[1].Z, m[1].W,
		m[2].X, m[2].Y, m[2].Z, m[2].W,
		m[3].X, m[3].Y, m[3].Z, m[3].W,
	}
}

// Add returns m + o elementwise.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]), m[3].Add(o[3])}
}

// Sub returns m − o elementwise.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2]), m[3].Sub(o[3])}
}

// Mul returns the matrix product m · o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for r := 0; r < 4; r++ {
		out[r] = vec.New4(
			m[r].X*o[0].X+m[r].Y*o[1].X+m[r].Z*o[2].X+m[r].W*o[3].X,
			m[r].X*o[0].Y+m[r].Y*o[1].Y+m[r].Z*o[2].Y+m[r].W*o[3].Y,
			m[r].X*o[0].Z+m[r].Y*o[1].Z+m[r].Z*o[2].Z+m[r].W*o[3].Z,
			m[r].X*o[0].W+m[r].Y*o[1].W+m[r].Z*o[2].W+m[r].W*o[3].W,
		)
	}
	return out
}

// MulVec returns m · v, each component the dot of a row with v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) vec.Vec4[T] {
	return vec.New4(m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v))
}

// Transposed returns m with rows and columns swapped.
func (m Mat4[T]) Transposed() Mat4[T] {
	return Mat4[T]{
		vec.New4(m[0].X, m[1].X, m[2].X, m[3].X),
		vec.New4(m[0].Y, m[1].Y, m[2].Y, m[3].Y),
		vec.New4(m[0].Z, m[1].Z, m[2].Z, m[3].Z),
		vec.New4(m[0].W, m[1].W, m[2].W, m[3].W),
	}
}

// Transpose swaps rows and columns in place.
func (m *Mat4[T]) Transpose() {
	*m = m.Transposed()
}

// RightVector returns the first basis column of the upper 3×3 block.
func (m Mat4[T]) RightVector() vec.Vec3[T] {
	return vec.New3(m[0].X, m[1].X, m[2].X)
}

// LeftVector returns the negated RightVector.
func (m Mat4[T]) LeftVector() vec.Vec3[T] {
	return m.RightVector().Neg()
}

// UpVector returns the second basis column of the upper 3×3 block.
func (m Mat4[T]) UpVector() vec.Vec3[T] {
	return vec.New3(m[0].Y, m[1].Y, m[2].Y)
}

// DownVector returns the negated UpVector.
func (m Mat4[T]) DownVector() vec.Vec3[T] {
	return m.UpVector().Neg()
}

// BackwardVector returns the third basis column of the upper 3×3 block.
func (m Mat4[T]) BackwardVector() vec.Vec3[T] {
	return vec.New3(m[0].Z, m[1].Z, m[2].Z)
}

// ForwardVector returns the negated BackwardVector.
func (m Mat4[T]) ForwardVector() vec.Vec3[T] {
	return m.BackwardVector().Neg()
}

// Determinant returns the full 24-term expansion of the 4×4 determinant.
func (m Mat4[T]) Determinant() T {
	a00, a01, a02, a03 := m[0].X, m[0].Y, m[0].Z, m[0].W
	a10, a11, a12, a13 := m[1].X, m[1].Y, m[1].Z, m[1].W
	a20, a21, a22, a23 := m[2].X, m[2].Y, m[2].Z, m[2].W
	a30, a31, a32, a33 := m[3].X, m[3].Y, m[3].Z, m[3].W

	return a30*a21*a12*a03 - a20*a31*a12*a03 -
		a30*a11*a22*a03 + a10*a31*a22*a03 +
		a20*a11*a32*a03 - a10*a21*a32*a03 -
		a30*a21*a02*a13 + a20*a31*a02*a13 +
		a30*a01*a22*a13 - a00*a31*a22*a13 -
		a20*a01*a32*a13 + a00*a21*a32*a13 +
		a30*a11*a02*a23 - a10*a31*a02*a23 -
		a30*a01*a12*a23 + a00*a31*a12*a23 +
		a10*a01*a32*a23 - a00*a11*a32*a23 -
		a20*a11*a02*a33 + a10*a21*a02*a33 +
		a20*a01*a12*a33 - a00*a21*a12*a33 -
		a10*a01*a22*a33 + a00*a11*a22*a33
}

// Adjointed returns the adjugate: the transpose of the cofactor matrix,
// satisfying m · adj(m) = det(m) · I.
func (m Mat4[T]) Adjointed() Mat4[T] {
	a00, a01, a02, a03 := m[0].X, m[0].Y, m[0].Z, m[0].W
	a10, a11, a12, a13 := m[1].X, m[1].Y, m[1].Z, m[1].W
	a20, a21, a22, a23 := m[2].X, m[2].Y, m[2].Z, m[2].W
	a30, a31, a32, a33 := m[3].X, m[3].Y, m[3].Z, m[3].W

	return Mat4[T]{
		vec.New4(
			a11*(a22*a33-a23*a32)-a21*(a12*a33-a13*a32)+a31*(a12*a23-a13*a22),
			-(a01*(a22*a33-a23*a32)-a21*(a02*a33-a03*a32)+a31*(a02*a23-a03*a22)),
			a01*(a12*a33-a13*a32)-a11*(a02*a33-a03*a32)+a31*(a02*a13-a03*a12),
			-(a01*(a12*a23-a13*a22)-a11*(a02*a23-a03*a22)+a21*(a02*a13-a03*a12)),
		),
		vec.New4(
			-(a10*(a22*a33-a23*a32)-a20*(a12*a33-a13*a32)+a30*(a12*a23-a13*a22)),
			a00*(a22*a33-a23*a32)-a20*(a02*a33-a03*a32)+a30*(a02*a23-a03*a22),
			-(a00*(a12*a33-a13*a32)-a10*(a02*a33-a03*a32)+a30*(a02*a13-a03*a12)),
			a00*(a12*a23-a13*a22)-a10*(a02*a23-a03*a22)+a20*(a02*a13-a03*a12),
		),
		vec.New4(
			a10*(a21*a33-a23*a31)-a20*(a11*a33-a13*a31)+a30*(a11*a23-a13*a21),
			-(a00*(a21*a33-a23*a31)-a20*(a01*a33-a03*a31)+a30*(a01*a23-a03*a21)),
			a00*(a11*a33-a13*a31)-a10*(a01*a33-a03*a31)+a30*(a01*a13-a03*a11),
			-(a00*(a11*a23-a13*a21)-a10*(a01*a23-a03*a21)+a20*(a01*a13-a03*a11)),
		),
		vec.New4(
			-(a10*(a21*a32-a22*a31)-a20*(a11*a32-a12*a31)+a30*(a11*a22-a12*a21)),
			a00*(a21*a32-a22*a31)-a20*(a01*a32-a02*a31)+a30*(a01*a22-a02*a21),
			-(a00*(a11*a32-a12*a31)-a10*(a01*a32-a02*a31)+a30*(a01*a12-a02*a11)),
			a00*(a11*a22-a12*a21)-a10*(a01*a22-a02*a21)+a20*(a01*a12-a02*a11),
		),
	}
}

// Inverted returns m⁻¹ as Adjointed scaled by the reciprocal determinant,
// or the zero matrix when the determinant is zero.
func (m Mat4[T]) Inverted() Mat4[T] {
	det := m.Determinant()
	if det == 0 {
		return Mat4[T]{}
	}
	inv := 1 / det
	adj := m.Adjointed()

	return Mat4[T]{
		adj[0].Scale(inv),
		adj[1].Scale(inv),
		adj[2].Scale(inv),
		adj[3].Scale(inv),
	}
}

// Rotated returns m · Rotation4(radians, axis).
func (m Mat4[T]) Rotated(radians T, axis vec.Vec3[T]) Mat4[T] {
	return m.Mul(Rotation4(radians, axis))
}

// Rotate applies Rotated in place.
func (m *Mat4[T]) Rotate(radians T, axis vec.Vec3[T]) {
	*m = m.Rotated(radians, axis)
}

// Scaled returns m with the linear rows scaled per axis; the translation
// row is untouched.
func (m Mat4[T]) Scaled(factor vec.Vec3[T]) Mat4[T] {
	m[0] = m[0].Scale(factor.X)
	m[1] = m[1].Scale(factor.Y)
	m[2] = m[2].Scale(factor.Z)
	return m
}

// Scale applies Scaled in place.
func (m *Mat4[T]) Scale(factor vec.Vec3[T]) {
	*m = m.Scaled(factor)
}

// Translated returns m moved by t in its own basis: the translation row
// gains the t-weighted combination of the three linear rows.
func (m Mat4[T]) Translated(t vec.Vec3[T]) Mat4[T] {
	m[3].X += m[0].X*t.X + m[1].X*t.Y + m[2].X*t.Z
	m[3].Y += m[0].Y*t.X + m[1].Y*t.Y + m[2].Y*t.Z
	m[3].Z += m[0].Z*t.X + m[1].Z*t.Y + m[2].Z*t.Z
	m[3].W += m[0].W*t.X + m[1].W*t.Y + m[2].W*t.Z
	return m
}

// Translate applies Translated in place.
func (m *Mat4[T]) Translate(t vec.Vec3[T]) {
	*m = m.Translated(t)
}

// EqualApprox reports whether every cell of m is within eps of o's.
func (m Mat4[T]) EqualApprox(o Mat4[T], eps T) bool {
	return m[0].EqualApprox(o[0], eps) &&
		m[1].EqualApprox(o[1], eps) &&
		m[2].EqualApprox(o[2], eps) &&
		m[3].EqualApprox(o[3], eps)
}

// Dim returns 4.
func (Mat4[T]) Dim() int { return 4 }

// At returns the cell at (row, col). It panics outside [0, 4)².
func (m Mat4[T]) At(row, col int) T {
	if row < 0 || row > 3 {
		panic("mat: Mat4 row index out of range")
	}
	if col < 0 || col > 3 {
		panic("mat: Mat4 column index out of range")
	}
	return m[row].At(col)
}

// Set assigns the cell at (row, col). It panics outside [0, 4)².
func (m *Mat4[T]) Set(row, col int, val T) {
	if row < 0 || row > 3 {
		panic("mat: Mat4 row index out of range")
	}
	if col < 0 || col > 3 {
		panic("mat: Mat4 column index out of range")
	}
	m[row].Set(col, val)
}

// Zero returns the all-zero Mat4.
func (Mat4[T]) Zero() Mat4[T] { return Mat4[T]{} }

// Identity returns Ident4, the multiplicative unit.
func (Mat4[T]) Identity() Mat4[T] { return Ident4[T]() }
