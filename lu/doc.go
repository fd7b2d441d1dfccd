// Package lu solves dense linear systems A·x = b over fixed-size square
// matrices via LU decomposition with partial (row) pivoting.
//
// 🚀 What does it do?
//
//	Factors A into a unit-lower-triangular L and an upper-triangular U with
//	a row permutation p chosen column by column for the largest pivot
//	magnitude, then solves by substitution:
//	  • Decompose        — P·A = L·U, Doolittle column ordering
//	  • PivotPermutation — the row reordering alone
//	  • Permuted         — apply p to a right-hand side
//	  • SolveWithL       — forward substitution (unit diagonal, no division)
//	  • SolveWithU       — backward substitution
//	  • Solve            — the full pipeline in one call
//
// ✨ Generic over both the scalar and the container:
//
//	Every operation is parameterized on the matrix/vector types themselves.
//	Any type exposing the small capability surface — Dim, At, Set (on the
//	pointer), Zero, Identity — plugs in at any fixed dimension; mat.Mat2/3/4
//	and vec.Vec2/3/4 satisfy it out of the box, and mat wraps the calls in
//	convenience methods so the type parameters disappear at call sites:
//
//	  a := mat.Mat3[float64]{ ... }
//	  x := a.LUSolve(vec.New3(5.0, 6.0, 10.0))
//
//	Direct use spells the container and scalar once; the pointer parameters
//	are inferred:
//
//	  l, u, p := lu.Decompose[mat.Mat3[float64], float64](a)
//
// ⚙️ Error model:
//
//	The hot path never allocates, checks, or panics: a singular A reaches a
//	zero pivot and the division spreads ±Inf/NaN through the result, exactly
//	as IEEE-754 arithmetic dictates. Callers that want an explicit verdict
//	use SolveChecked, which reports ErrSingular / ErrDimensionMismatch and
//	never panics.
//
// Performance: O(N³) decomposition, O(N²) per substitution, no heap
// allocation beyond the permutation slice.
package lu
