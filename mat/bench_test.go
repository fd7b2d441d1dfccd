package mat_test

import (
	"testing"

	"github.com/katalvlaran/gamemath/mat"
	"github.com/katalvlaran/gamemath/vec"
)

// Sinks keep the compiler from eliding the benchmarked calls.
var (
	benchMat4   mat.Mat4[float64]
	benchVec3   vec.Vec3[float64]
	benchVec4   vec.Vec4[float64]
	benchScalar float64
)

// BenchmarkMat4 measures the dense 4×4 operations a transform pipeline
// leans on every frame. Each sub-benchmark isolates one hot call.
func BenchmarkMat4(b *testing.B) {
	rot := mat.Rotation4(0.35, vec.New3(0.0, 1.0, 0.0))
	rhs := vec.New4(1.0, -2.0, 3.0, -4.0)

	b.Run("Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchMat4 = sample4.Mul(rot)
		}
	})

	b.Run("Determinant", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchScalar = sample4.Determinant()
		}
	})

	b.Run("Inverted", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchMat4 = sample4.Inverted()
		}
	})

	b.Run("LUSolve", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchVec4 = sample4.LUSolve(rhs)
		}
	})
}

// BenchmarkMat3_LUSolve measures the 3×3 direct solve in isolation, the
// smallest size where pivoting matters.
func BenchmarkMat3_LUSolve(b *testing.B) {
	a := m3(1, 3, 5, 2, 4, 7, 1, 1, 0)
	rhs := vec.New3(5.0, 6.0, 10.0)

	for i := 0; i < b.N; i++ {
		benchVec3 = a.LUSolve(rhs)
	}
}

// BenchmarkRotation4 measures axis-angle matrix construction, axis
// normalization included.
func BenchmarkRotation4(b *testing.B) {
	axis := vec.New3(1.0, 2.0, 2.0)

	for i := 0; i < b.N; i++ {
		benchMat4 = mat.Rotation4(1.3, axis)
	}
}
