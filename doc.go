// Package gamemath is your fixed-size linear algebra toolbox for games
// and simulations: vectors, matrices, quaternions, value curves and a
// pivoting LU solver, all generic over float32/float64.
//
// 🚀 What is gamemath?
//
//	A compact, allocation-free library that brings together:
//		• Vectors: Vec2/Vec3/Vec4 with dot, cross, length & normalization
//		• Matrices: Mat2/Mat3/Mat4 — products, inverses, rotations & projections
//		• Quaternions: composable orientations + matrix extraction
//		• Curves: evenly spaced keyframes sampled by a single factor
//		• Linear solving: LU decomposition with partial pivoting, generic
//		  over any fixed-dimension container
//
// ✨ Why choose gamemath?
//
//   - Value semantics – rows and vectors are plain structs & arrays, cheap to copy
//   - IEEE-754 silence – singular systems poison results with NaN/±Inf instead of panicking
//   - Generic core – one solver serves Mat2/Mat3/Mat4 and anything exposing Dim/At/Set
//   - Pure Go – no cgo, no assembly
//
// Under the hood, everything is organized under six subpackages:
//
//	num/   — the Float constraint + scalar helpers (Clamp, Lerp, EqualWithin)
//	vec/   — fixed-size vectors
//	mat/   — fixed-size square matrices + projections (Frustum, LookAt…)
//	quat/  — rotation quaternions
//	curve/ — keyframed value curves
//	lu/    — the pivoting LU engine behind mat's solvers
//
// Quick ASCII example:
//
//	⎡1 3 5⎤   ⎡x⎤   ⎡ 5⎤
//	⎢2 4 7⎥ · ⎢y⎥ = ⎢ 6⎥   →   x = 1.25, y = 8.75, z = -4.5
//	⎣1 1 0⎦   ⎣z⎦   ⎣10⎦
//
// Dive into each subpackage's doc.go for usage snippets and the exact
// numeric contracts, and into examples/ for runnable demos.
//
//	go get github.com/katalvlaran/gamemath
package gamemath
