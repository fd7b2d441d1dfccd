// Package mat provides fixed-size 2×2, 3×3 and 4×4 square matrices over
// float32/float64, stored as arrays of row vectors with value semantics.
//
// 🚀 What is in the box?
//
//	  • arithmetic: Add, Sub, Mul (matrix product), MulVec (row · v)
//	  • structure: Transposed, Determinant, Adjointed, Inverted
//	  • transform builders: Rotation2/3/4, Scaled, Translated — rows compose
//	    left to right, so m.Rotated(r) is m · R
//	  • camera math on Mat4: Frustum, Perspective (degrees), Orthogonal,
//	    LookAt, plus the basis accessors RightVector … ForwardVector
//	  • linear systems: PivotPermutation, DecomposeLU, LUSolve and
//	    LUSolveChecked wrap the generic lu solver with the type parameters
//	    already pinned
//
// ⚙️ Conventions:
//
//	Matrices are row-major: m[1] is the second row, m.At(1, 2) its third
//	cell. Translation lives in the last row. A singular matrix inverts to
//	the zero matrix, and LUSolve on one yields NaN/±Inf components — the
//	numeric paths never allocate errors; LUSolveChecked reports
//	lu.ErrSingular for callers that want a verdict.
//
// Usage:
//
//	a := mat.New3(
//		vec.New3(1.0, 3.0, 5.0),
//		vec.New3(2.0, 4.0, 7.0),
//		vec.New3(1.0, 1.0, 0.0),
//	)
//	x := a.LUSolve(vec.New3(5.0, 6.0, 10.0))
package mat
