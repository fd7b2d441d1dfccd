package vec

import "github.com/katalvlaran/gamemath/num"

// Vec3 is a three-component vector of T, the workhorse type for positions,
// directions and axes in 3-D space.
type Vec3[T num.Float] struct {
	X, Y, Z T
}

// New3 builds a Vec3 from its components.
func New3[T num.Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 builds a Vec3 with every component set to v.
func Splat3[T num.Float](v T) Vec3[T] {
	return Vec3[T]{X: v, Y: v, Z: v}
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v − o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns −v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the scalar product v · o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the vector product v × o, perpendicular to both operands
// with right-handed orientation.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns |v|², avoiding the square root of Length.
func (v Vec3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean norm |v|.
func (v Vec3[T]) Length() T {
	return num.Sqrt(v.LengthSquared())
}

// Normalized returns v scaled to unit length. The zero vector has no
// direction; its result is all-NaN.
func (v Vec3[T]) Normalized() Vec3[T] {
	return v.Scale(1 / v.Length())
}

// Normalize rescales v to unit length in place.
func (v *Vec3[T]) Normalize() {
	*v = v.Normalized()
}

// Fill sets every component to val.
func (v *Vec3[T]) Fill(val T) {
	v.X, v.Y, v.Z = val, val, val
}

// ManhattanDistance returns the L1 distance Σ|vᵢ − oᵢ|, the "city block"
// metric between the two points.
func (v Vec3[T]) ManhattanDistance(o Vec3[T]) T {
	return num.Abs(v.X-o.X) + num.Abs(v.Y-o.Y) + num.Abs(v.Z-o.Z)
}

// EqualApprox reports whether every component of v is within eps of o's.
func (v Vec3[T]) EqualApprox(o Vec3[T], eps T) bool {
	return num.EqualWithin(v.X, o.X, eps) &&
		num.EqualWithin(v.Y, o.Y, eps) &&
		num.EqualWithin(v.Z, o.Z, eps)
}

// Array returns the components as a fixed-size array.
func (v Vec3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// Vec2 truncates v, dropping Z.
func (v Vec3[T]) Vec2() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// Vec4 zero-extends v with W = 0.
func (v Vec3[T]) Vec4() Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Dim returns 3.
func (Vec3[T]) Dim() int { return 3 }

// At returns component i (0 = X, 1 = Y, 2 = Z). It panics outside [0, 3).
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("vec: Vec3 index out of range")
	}
}

// Set assigns component i (0 = X, 1 = Y, 2 = Z). It panics outside [0, 3).
func (v *Vec3[T]) Set(i int, val T) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		panic("vec: Vec3 index out of range")
	}
}

// Zero returns the all-zero Vec3.
func (Vec3[T]) Zero() Vec3[T] { return Vec3[T]{} }

// Permuted returns the vector u with u[i] = v[p[i]]. The permutation is
// trusted; an entry outside [0, 3) panics via At.
//
//	New3(9, 12, 20).Permuted([]int{2, 0, 1})  →  (20, 9, 12)
func (v Vec3[T]) Permuted(p []int) Vec3[T] {
	return Vec3[T]{X: v.At(p[0]), Y: v.At(p[1]), Z: v.At(p[2])}
}
