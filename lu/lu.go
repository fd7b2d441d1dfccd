package lu

import "github.com/katalvlaran/gamemath/num"

// PivotPermutation selects the row order used by Decompose: scanning
// columns left to right, it keeps for column i the not-yet-placed row whose
// entry in that column has the largest magnitude.
//
// Contracts:
//   - comparison is strict (<), so among equal magnitudes the earliest row
//     wins and an all-zero column causes no swap;
//   - candidate rows are read through the permutation built so far, keeping
//     every step consistent with rows already placed;
//   - a is never mutated; the result is always a valid permutation.
//
// Complexity: O(N²) comparisons, one O(N) allocation for the result.
func PivotPermutation[M Square[M, T], T num.Float](a M) Permutation {
	n := a.Dim()
	p := identity(n)
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if num.Abs(a.At(p[best], i)) < num.Abs(a.At(p[j], i)) {
				best = j
			}
		}
		if best != i {
			p[i], p[best] = p[best], p[i]
		}
	}
	return p
}

// Decompose factors the row-permuted a into triangular factors so that for
// every cell: a[p[i]][j] = (l·u)[i][j], with l unit-lower-triangular and u
// upper-triangular (Doolittle convention).
//
// The fill is column-major: for each column, the u cells on and above the
// diagonal first, then the l multipliers below it, each divided by the
// pivot u[col][col] the moment it is final.
//
// Contracts:
//   - l starts from Identity (unit diagonal, never written on or above it),
//     u from Zero;
//   - a is never mutated;
//   - a singular a yields a zero pivot and the division spreads ±Inf/NaN
//     through the factors — no check, no panic. Use SolveChecked for an
//     explicit verdict.
//
// Complexity: O(N³) multiply-adds, no allocation beyond the permutation.
func Decompose[M Square[M, T], T num.Float, PM SquarePtr[M, T]](a M) (l, u M, p Permutation) {
	l = a.Identity()
	u = a.Zero()
	p = PivotPermutation[M, T](a)

	lp, up := PM(&l), PM(&u)
	n := a.Dim()
	for col := 0; col < n; col++ {
		// Stage 1 - upper factor cells, top of the column down to the pivot.
		for row := 0; row <= col; row++ {
			var sum T
			for k := 0; k < row; k++ {
				sum += u.At(k, col) * l.At(row, k)
			}
			up.Set(row, col, a.At(p[row], col)-sum)
		}
		// Stage 2 - lower-factor multipliers under the pivot just computed.
		for row := col + 1; row < n; row++ {
			var sum T
			for k := 0; k < col; k++ {
				sum += u.At(k, col) * l.At(row, k)
			}
			lp.Set(row, col, (a.At(p[row], col)-sum)/u.At(col, col))
		}
	}
	return l, u, p
}

// Permuted returns the vector u with u[i] = v[p[i]], the reordering that
// aligns a right-hand side with row-pivoted factors. p is trusted: entries
// outside [0, Dim) panic via the container's At.
func Permuted[V Vector[V, T], T num.Float, PV VectorPtr[V, T]](v V, p Permutation) V {
	u := v.Zero()
	up := PV(&u)
	for i := 0; i < v.Dim(); i++ {
		up.Set(i, v.At(p[i]))
	}
	return u
}

// SolveWithL forward-substitutes through a unit-lower-triangular l,
// returning y with l·y = b. The unit diagonal is assumed, not read, so the
// loop performs no division.
func SolveWithL[M Square[M, T], V Vector[V, T], T num.Float, PV VectorPtr[V, T]](l M, b V) V {
	y := b.Zero()
	yp := PV(&y)
	n := b.Dim()
	for i := 0; i < n; i++ {
		var sum T
		for j := 0; j < i; j++ {
			sum += y.At(j) * l.At(i, j)
		}
		yp.Set(i, b.At(i)-sum)
	}
	return y
}

// SolveWithU backward-substitutes through an upper-triangular u, returning
// x with u·x = y. Each step divides by the diagonal pivot; a zero pivot
// yields ±Inf/NaN in the affected components rather than an error.
func SolveWithU[M Square[M, T], V Vector[V, T], T num.Float, PV VectorPtr[V, T]](u M, y V) V {
	x := y.Zero()
	xp := PV(&x)
	n := y.Dim()
	for i := n - 1; i >= 0; i-- {
		var sum T
		for j := i + 1; j < n; j++ {
			sum += x.At(j) * u.At(i, j)
		}
		xp.Set(i, (y.At(i)-sum)/u.At(i, i))
	}
	return x
}

// Solve returns x with a·x = b via pivoted LU: decompose, permute b,
// forward- then backward-substitute.
//
// Contracts:
//   - pure: neither input is mutated, and identical inputs produce
//     bit-identical results;
//   - unchecked: a singular a produces a NaN/±Inf-laden x, never a panic.
//
// Complexity: O(N³), dominated by Decompose.
func Solve[M Square[M, T], V Vector[V, T], T num.Float, PM SquarePtr[M, T], PV VectorPtr[V, T]](a M, b V) V {
	l, u, p := Decompose[M, T, PM](a)
	y := SolveWithL[M, V, T, PV](l, Permuted[V, T, PV](b, p))
	return SolveWithU[M, V, T, PV](u, y)
}

// SolveChecked is Solve with an explicit verdict instead of silent NaN
// propagation: it reports ErrDimensionMismatch before touching any cell and
// ErrSingular when decomposition produced a zero pivot. On success the
// result is exactly what Solve returns.
func SolveChecked[M Square[M, T], V Vector[V, T], T num.Float, PM SquarePtr[M, T], PV VectorPtr[V, T]](a M, b V) (V, error) {
	var none V
	if a.Dim() != b.Dim() {
		return none, ErrDimensionMismatch
	}
	l, u, p := Decompose[M, T, PM](a)
	for i := 0; i < a.Dim(); i++ {
		if u.At(i, i) == 0 {
			return none, ErrSingular
		}
	}
	y := SolveWithL[M, V, T, PV](l, Permuted[V, T, PV](b, p))
	return SolveWithU[M, V, T, PV](u, y), nil
}
