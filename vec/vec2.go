package vec

import "github.com/katalvlaran/gamemath/num"

// Vec2 is a two-component vector of T.
type Vec2[T num.Float] struct {
	X, Y T
}

// New2 builds a Vec2 from its components.
func New2[T num.Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 builds a Vec2 with every component set to v.
func Splat2[T num.Float](v T) Vec2[T] {
	return Vec2[T]{X: v, Y: v}
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v − o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with every component multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Neg returns −v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Dot returns the scalar product v · o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared returns |v|², avoiding the square root of Length.
func (v Vec2[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean norm |v|.
func (v Vec2[T]) Length() T {
	return num.Sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length. The zero vector has no
// direction; its result is all-NaN.
func (v Vec2[T]) Normalized() Vec2[T] {
	return v.Scale(1 / v.Length())
}

// Normalize rescales v to unit length in place.
func (v *Vec2[T]) Normalize() {
	*v = v.Normalized()
}

// Fill sets every component to val.
func (v *Vec2[T]) Fill(val T) {
	v.X, v.Y = val, val
}

// EqualApprox reports whether every component of v is within eps of o's.
func (v Vec2[T]) EqualApprox(o Vec2[T], eps T) bool {
	return num.EqualWithin(v.X, o.X, eps) && num.EqualWithin(v.Y, o.Y, eps)
}

// Array returns the components as a fixed-size array.
func (v Vec2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// Vec3 zero-extends v with Z = 0.
func (v Vec2[T]) Vec3() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y}
}

// Vec4 zero-extends v with Z = 0, W = 0.
func (v Vec2[T]) Vec4() Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y}
}

// Dim returns 2.
func (Vec2[T]) Dim() int { return 2 }

// At returns component i (0 = X, 1 = Y). It panics outside [0, 2).
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic("vec: Vec2 index out of range")
	}
}

// Set assigns component i (0 = X, 1 = Y). It panics outside [0, 2).
func (v *Vec2[T]) Set(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		panic("vec: Vec2 index out of range")
	}
}

// Zero returns the all-zero Vec2.
func (Vec2[T]) Zero() Vec2[T] { return Vec2[T]{} }

// Permuted returns the vector u with u[i] = v[p[i]]. p is trusted; an entry
// outside [0, 2) panics via At.
func (v Vec2[T]) Permuted(p []int) Vec2[T] {
	return Vec2[T]{X: v.At(p[0]), Y: v.At(p[1])}
}
