package vec

import "github.com/katalvlaran/gamemath/num"

// Vec4 is a four-component vector of T, used for homogeneous coordinates
// and as the row type of Mat4.
type Vec4[T num.Float] struct {
	X, Y, Z, W T
}

// New4 builds a Vec4 from its components.
func New4[T num.Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 builds a Vec4 with every component set to v.
func Splat4[T num.Float](v T) Vec4[T] {
	return Vec4[T]{X: v, Y: v, Z: v, W: v}
}

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// Sub returns v − o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// Scale returns v with every component multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Neg returns −v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the scalar product v · o.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// LengthSquared returns |v|².
func (v Vec4[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean norm |v|.
func (v Vec4[T]) Length() T {
	return num.Sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length. The zero vector has no
// direction; its result is all-NaN.
func (v Vec4[T]) Normalized() Vec4[T] {
	return v.Scale(1 / v.Length())
}

// Normalize rescales v to unit length in place.
func (v *Vec4[T]) Normalize() {
	*v = v.Normalized()
}

// Fill sets every component to val.
func (v *Vec4[T]) Fill(val T) {
	v.X, v.Y, v.Z, v.W = val, val, val, val
}

// EqualApprox reports whether every component of v is within eps of o's.
func (v Vec4[T]) EqualApprox(o Vec4[T], eps T) bool {
	return num.EqualWithin(v.X, o.X, eps) &&
		num.EqualWithin(v.Y, o.Y, eps) &&
		num.EqualWithin(v.Z, o.Z, eps) &&
		num.EqualWithin(v.W, o.W, eps)
}

// Array returns the components as a fixed-size array.
func (v Vec4[T]) Array() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

// Vec2 truncates v, dropping Z and W.
func (v Vec4[T]) Vec2() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// Vec3 truncates v, dropping W.
func (v Vec4[T]) Vec3() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Dim returns 4.
func (Vec4[T]) Dim() int { return 4 }

// At returns component i (0 = X … 3 = W). It panics outside [0, 4).
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic("vec: Vec4 index out of range")
	}
}

// Set assigns component i (0 = X … 3 = W). It panics outside [0, 4).
func (v *Vec4[T]) Set(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	case 3:
		v.W = val
	default:
		panic("vec: Vec4 index out of range")
	}
}

// Zero returns the all-zero Vec4.
func (Vec4[T]) Zero() Vec4[T] { return Vec4[T]{} }

// Permuted returns the vector u with u[i] = v[p[i]]. The permutation is
// trusted; an entry outside [0, 4) panics via At.
func (v Vec4[T]) Permuted(p []int) Vec4[T] {
	return Vec4[T]{X: v.At(p[0]), Y: v.At(p[1]), Z: v.At(p[2]), W: v.At(p[3])}
}
