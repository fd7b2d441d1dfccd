package lu

import (
	"errors"

	"github.com/katalvlaran/gamemath/num"
)

// ErrSingular reports that decomposition met a zero pivot, so the system
// has no unique solution. Returned by SolveChecked only; the unchecked
// path propagates NaN/±Inf instead.
var ErrSingular = errors.New("lu: matrix is singular")

// ErrDimensionMismatch reports that the matrix and right-hand side disagree
// on dimension. Returned by SolveChecked only.
var ErrDimensionMismatch = errors.New("lu: matrix and vector dimensions differ")

// Permutation is a row reordering: output row i reads source row p[i].
type Permutation []int

// identity returns the permutation that leaves every row in place.
func identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Valid reports whether p is a bijection on [0, len(p)) — every row index
// present exactly once.
func (p Permutation) Valid() bool {
	seen := make([]bool, len(p))
	for _, row := range p {
		if row < 0 || row >= len(p) || seen[row] {
			return false
		}
		seen[row] = true
	}
	return true
}

// Square is the read side of the capability surface a fixed-size square
// matrix offers the solver: a dimension query, cell access, and the two
// constructors decomposition seeds its factors from (Zero for U, Identity
// for the unit-diagonal L). The constraint is self-referential — a concrete
// type M names itself: `func (m Mat3[T]) Zero() Mat3[T]`.
type Square[M any, T num.Float] interface {
	Dim() int
	At(row, col int) T
	Zero() M
	Identity() M
}

// SquarePtr is the write side: it pins the parameter to *M so cell writes
// land in the solver's local factor, not a copy. Call sites never spell it;
// it is inferred from M.
type SquarePtr[M any, T num.Float] interface {
	*M
	Set(row, col int, val T)
}

// Vector is the read side of the capability surface a fixed-size vector
// offers the solver.
type Vector[V any, T num.Float] interface {
	Dim() int
	At(i int) T
	Zero() V
}

// VectorPtr is the write side of Vector, pinned to *V and inferred.
type VectorPtr[V any, T num.Float] interface {
	*V
	Set(i int, val T)
}
