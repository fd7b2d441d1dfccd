package mat

import (
	"github.com/katalvlaran/gamemath/lu"
	"github.com/katalvlaran/gamemath/vec"
)

// The methods below pin the lu solver's type parameters to the concrete
// matrix/vector pairs, so call sites read m.LUSolve(b) with no
// instantiation noise.

// PivotPermutation returns the row order LU decomposition uses for m:
// per column, the largest remaining magnitude wins, first row on ties.
func (m Mat2[T]) PivotPermutation() lu.Permutation {
	return lu.PivotPermutation[Mat2[T], T](m)
}

// DecomposeLU factors the row-permuted m into a unit-lower l and an upper
// u with l·u = permuted m. Singular m yields NaN/±Inf cells, not an error.
func (m Mat2[T]) DecomposeLU() (l, u Mat2[T], p lu.Permutation) {
	return lu.Decompose[Mat2[T], T](m)
}

// LUSolve returns x with m·x = b. Singular m yields NaN/±Inf components.
func (m Mat2[T]) LUSolve(b vec.Vec2[T]) vec.Vec2[T] {
	return lu.Solve[Mat2[T], vec.Vec2[T], T](m, b)
}

// LUSolveChecked is LUSolve with an explicit verdict: lu.ErrSingular
// instead of silent NaN propagation.
func (m Mat2[T]) LUSolveChecked(b vec.Vec2[T]) (vec.Vec2[T], error) {
	return lu.SolveChecked[Mat2[T], vec.Vec2[T], T](m, b)
}

// PivotPermutation returns the row order LU decomposition uses for m.
func (m Mat3[T]) PivotPermutation() lu.Permutation {
	return lu.PivotPermutation[Mat3[T], T](m)
}

// DecomposeLU factors the row-permuted m into a unit-lower l and an upper
// u with l·u = permuted m.
func (m Mat3[T]) DecomposeLU() (l, u Mat3[T], p lu.Permutation) {
	return lu.Decompose[Mat3[T], T](m)
}

// LUSolve returns x with m·x = b. Singular m yields NaN/±Inf components.
func (m Mat3[T]) LUSolve(b vec.Vec3[T]) vec.Vec3[T] {
	return lu.Solve[Mat3[T], vec.Vec3[T], T](m, b)
}

// LUSolveChecked is LUSolve with an explicit verdict.
func (m Mat3[T]) LUSolveChecked(b vec.Vec3[T]) (vec.Vec3[T], error) {
	return lu.SolveChecked[Mat3[T], vec.Vec3[T], T](m, b)
}

// PivotPermutation returns the row order LU decomposition uses for m.
func (m Mat4[T]) PivotPermutation() lu.Permutation {
	return lu.PivotPermutation[Mat4[T], T](m)
}

// DecomposeLU factors the row-permuted m into a unit-lower l and an upper
// u with l·u = permuted m.
func (m Mat4[T]) DecomposeLU() (l, u Mat4[T], p lu.Permutation) {
	return lu.Decompose[Mat4[T], T](m)
}

// LUSolve returns x with m·x = b. Singular m yields NaN/±Inf components.
func (m Mat4[T]) LUSolve(b vec.Vec4[T]) vec.Vec4[T] {
	return lu.Solve[Mat4[T], vec.Vec4[T], T](m, b)
}

// LUSolveChecked is LUSolve with an explicit verdict.
func (m Mat4[T]) LUSolveChecked(b vec.Vec4[T]) (vec.Vec4[T], error) {
	return lu.SolveChecked[Mat4[T], vec.Vec4[T], T](m, b)
}
