package mat

import (
	"math"

	"github.com/katalvlaran/gamemath/num"
	"github.com/katalvlaran/gamemath/vec"
)

// Frustum returns the perspective projection for the given view volume.
// Degenerate extents (near == far, left == right, top == bottom) divide by
// zero and propagate ±Inf/NaN rather than erroring.
func Frustum[T num.Float](top, left, right, bottom, near, far T) Mat4[T] {
	doubleNear := near * 2
	deltaX := right - left
	deltaY := top - bottom
	deltaZ := far - near

	var m Mat4[T]
	m[0].X = doubleNear / deltaX
	m[1].Y = doubleNear / deltaY
	m[2].X = (right + left) / deltaX
	m[2].Y = (top + bottom) / deltaY
	m[2].Z = (-far - near) / deltaZ
	m[2].W = -1
	m[3].Z = (-doubleNear * far) / deltaZ

	return m
}

// Perspective returns the symmetric projection for a vertical field of view
// given in degrees.
func Perspective[T num.Float](fovDegrees, aspect, near, far T) Mat4[T] {
	yMax := near * num.Tan(fovDegrees*(T(math.Pi)/360))
	xMax := yMax * aspect

	return Frustum(yMax, -xMax, xMax, -yMax, near, far)
}

// Orthogonal returns the parallel projection for the given view volume.
func Orthogonal[T num.Float](top, left, right, bottom, near, far T) Mat4[T] {
	leftToRight := 1 / (left - right)
	bottomToTop := 1 / (bottom - top)
	nearToFar := 1 / (near - far)

	var m Mat4[T]
	m[0].X = -2 * leftToRight
	m[1].Y = -2 * bottomToTop
	m[2].Z = 2 * nearToFar
	m[3].X = leftToRight * (left + right)
	m[3].Y = bottomToTop * (top + bottom)
	m[3].Z = nearToFar * (near + far)
	m[3].W = 1

	return m
}

// LookAt returns the camera placement matrix for an eye position watching
// target: rows 0–2 are the right/up/backward basis, row 3 the eye itself.
func LookAt[T num.Float](eye, target, up vec.Vec3[T]) Mat4[T] {
	forward := eye.Sub(target).Normalized()
	right := up.Normalized().Cross(forward).Normalized()
	trueUp := forward.Cross(right).Normalized()

	return Mat4[T]{
		vec.New4(right.X, right.Y, right.Z, 0),
		vec.New4(trueUp.X, trueUp.Y, trueUp.Z, 0),
		vec.New4(forward.X, forward.Y, forward.Z, 0),
		vec.New4(eye.X, eye.Y, eye.Z, 1),
	}
}
