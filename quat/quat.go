package quat

import (
	"github.com/katalvlaran/gamemath/mat"
	"github.com/katalvlaran/gamemath/num"
	"github.com/katalvlaran/gamemath/vec"
)

// Quat is a rotation quaternion; X, Y, Z form the vector part and W the
// scalar part.
type Quat[T num.Float] struct {
	X, Y, Z, W T
}

// New returns the quaternion with the given components.
func New[T num.Float](x, y, z, w T) Quat[T] {
	return Quat[T]{X: x, Y: y, Z: z, W: w}
}

// Ident returns the identity orientation.
func Ident[T num.Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// Rotation returns the quaternion for a turn of radians about axis. The
// axis is used as given; pass a unit vector, or reach for Rotated, which
// normalizes first.
func Rotation[T num.Float](axis vec.Vec3[T], radians T) Quat[T] {
	half := radians / 2
	s := num.Sin(half)

	return Quat[T]{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: num.Cos(half),
	}
}

// Add returns the componentwise sum q + o.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{X: q.X + o.X, Y: q.Y + o.Y, Z: q.Z + o.Z, W: q.W + o.W}
}

// Scale returns q with every component multiplied by factor.
func (q Quat[T]) Scale(factor T) Quat[T] {
	return Quat[T]{X: q.X * factor, Y: q.Y * factor, Z: q.Z * factor, W: q.W * factor}
}

// Dot returns the four-component dot product of q and o.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Mul composes o onto q: rotating by the result applies q first, then o,
// mirroring how matrix products chain in mat.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		X: o.W*q.X + o.X*q.W + o.Y*q.Z - o.Z*q.Y,
		Y: o.W*q.Y + o.Y*q.W + o.Z*q.X - o.X*q.Z,
		Z: o.W*q.Z + o.Z*q.W + o.X*q.Y - o.Y*q.X,
		W: o.W*q.W - o.X*q.X - o.Y*q.Y - o.Z*q.Z,
	}
}

// Rotated returns q advanced by a turn of radians about axis; the axis is
// normalized first.
func (q Quat[T]) Rotated(axis vec.Vec3[T], radians T) Quat[T] {
	return q.Mul(Rotation(axis.Normalized(), radians))
}

// Rotate applies Rotated in place.
func (q *Quat[T]) Rotate(axis vec.Vec3[T], radians T) {
	*q = q.Rotated(axis, radians)
}

// LengthSquared returns |q|², cheaper than Length when only comparisons
// are needed.
func (q Quat[T]) LengthSquared() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns |q|.
func (q Quat[T]) Length() T {
	return num.Sqrt(q.LengthSquared())
}

// Normalized returns q scaled to unit length. The zero quaternion has no
// direction and yields NaN components.
func (q Quat[T]) Normalized() Quat[T] {
	return q.Scale(1 / q.Length())
}

// Normalize applies Normalized in place.
func (q *Quat[T]) Normalize() {
	*q = q.Normalized()
}

// Mat4 expands q into a transform matrix. The raw components are used, so
// only a unit quaternion yields a pure rotation; the zero quaternion
// expands to the identity.
func (q Quat[T]) Mat4() mat.Mat4[T] {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	xx := q.X * x2
	yx := q.Y * x2
	yy := q.Y * y2
	zx := q.Z * x2
	zy := q.Z * y2
	zz := q.Z * z2
	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2

	m := mat.Ident4[T]()
	m[0].X = 1 - yy - zz
	m[0].Y = yx + wz
	m[0].Z = zx - wy
	m[1].X = yx - wz
	m[1].Y = 1 - xx - zz
	m[1].Z = zy + wx
	m[2].X = zx + wy
	m[2].Y = zy - wx
	m[2].Z = 1 - xx - yy

	return m
}

// EqualApprox reports whether every component of q is within eps of o's.
func (q Quat[T]) EqualApprox(o Quat[T], eps T) bool {
	return num.EqualWithin(q.X, o.X, eps) &&
		num.EqualWithin(q.Y, o.Y, eps) &&
		num.EqualWithin(q.Z, o.Z, eps) &&
		num.EqualWithin(q.W, o.W, eps)
}
