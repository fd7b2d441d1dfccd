package lu_test

import (
	"testing"

	"github.com/katalvlaran/gamemath/lu"
)

var (
	benchSink3 rhs3
	benchSink5 rhs5
)

// BenchmarkDecompose_3x3 measures factorization alone at the smallest
// pivoting-relevant size.
func BenchmarkDecompose_3x3(b *testing.B) {
	a := sq3{{1, 3, 5}, {2, 4, 7}, {1, 1, 0}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = lu.Decompose[sq3, float64](a)
	}
}

// BenchmarkSolve_3x3 measures the full pipeline: pivot, factor, permute,
// two substitutions.
func BenchmarkSolve_3x3(b *testing.B) {
	a := sq3{{1, 3, 5}, {2, 4, 7}, {1, 1, 0}}
	rhs := rhs3{5, 6, 10}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink3 = lu.Solve[sq3, rhs3, float64](a, rhs)
	}
}

// BenchmarkSolve_5x5 measures the pipeline at the larger fixture dimension.
func BenchmarkSolve_5x5(b *testing.B) {
	a := sq5{
		{5, 1, 0, 2, 1},
		{1, 6, 2, 0, 1},
		{0, 2, 7, 1, 2},
		{2, 0, 1, 8, 1},
		{1, 1, 2, 1, 9},
	}
	rhs := rhs5{1, -2, 3, -4, 5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink5 = lu.Solve[sq5, rhs5, float64](a, rhs)
	}
}
