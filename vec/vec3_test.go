package vec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gamemath/vec"
	"github.com/stretchr/testify/assert"
)

// TestVec3_Constructors verifies component placement for New3 and Splat3.
func TestVec3_Constructors(t *testing.T) {
	v := vec.New3(1.0, 5.0, 23.0)
	assert.Equal(t, 1.0, v.X)
	assert.Equal(t, 5.0, v.Y)
	assert.Equal(t, 23.0, v.Z)

	s := vec.Splat3(float32(6))
	assert.Equal(t, vec.Vec3[float32]{X: 6, Y: 6, Z: 6}, s)
}

// TestVec3_Arithmetic verifies Add, Sub, Scale and Neg componentwise.
func TestVec3_Arithmetic(t *testing.T) {
	a := vec.New3(1.0, 2.0, 3.0)
	b := vec.New3(4.0, 5.0, 6.0)

	assert.Equal(t, vec.New3(5.0, 7.0, 9.0), a.Add(b))
	assert.Equal(t, vec.New3(-3.0, -3.0, -3.0), a.Sub(b))
	assert.Equal(t, vec.New3(2.0, 4.0, 6.0), a.Scale(2))
	assert.Equal(t, vec.New3(-1.0, -2.0, -3.0), a.Neg())
}

// TestVec3_Dot verifies the scalar product and its symmetry.
func TestVec3_Dot(t *testing.T) {
	a := vec.New3(1.0, 2.0, 3.0)
	b := vec.New3(4.0, 5.0, 6.0)

	assert.Equal(t, 32.0, a.Dot(b), "1·4 + 2·5 + 3·6")
	assert.Equal(t, a.Dot(b), b.Dot(a), "dot product is symmetric")
}

// TestVec3_Cross verifies the vector product value, anti-commutativity,
// and orthogonality to both operands.
func TestVec3_Cross(t *testing.T) {
	a := vec.New3(1.0, 2.0, 3.0)
	b := vec.New3(4.0, 5.0, 6.0)
	c := a.Cross(b)

	assert.Equal(t, vec.New3(-3.0, 6.0, -3.0), c)
	assert.Equal(t, c.Neg(), b.Cross(a), "a×b = −(b×a)")
	assert.Equal(t, 0.0, c.Dot(a), "cross result is orthogonal to a")
	assert.Equal(t, 0.0, c.Dot(b), "cross result is orthogonal to b")
}

// TestVec3_Length verifies the Euclidean and squared norms on a 9-12-20
// Pythagorean quadruple.
func TestVec3_Length(t *testing.T) {
	v := vec.New3(9.0, 12.0, 20.0)

	assert.Equal(t, 625.0, v.LengthSquared())
	assert.Equal(t, 25.0, v.Length())
	assert.Equal(t, float32(25), vec.New3[float32](9, 12, 20).Length(), "float32 instantiation")
}

// TestVec3_Normalized verifies unit scaling and the all-NaN result for the
// zero vector.
func TestVec3_Normalized(t *testing.T) {
	n := vec.New3(9.0, 12.0, 20.0).Normalized()
	assert.InDelta(t, 0.36, n.X, 1e-12)
	assert.InDelta(t, 0.48, n.Y, 1e-12)
	assert.InDelta(t, 0.80, n.Z, 1e-12)
	assert.InDelta(t, 1.0, n.Length(), 1e-12, "normalized vector has unit length")

	z := vec.Vec3[float64]{}.Normalized()
	assert.True(t, math.IsNaN(z.X) && math.IsNaN(z.Y) && math.IsNaN(z.Z),
		"zero vector normalizes to NaN, not to an error")
}

// TestVec3_InPlace verifies the pointer-receiver verbs Normalize and Fill.
func TestVec3_InPlace(t *testing.T) {
	v := vec.New3(9.0, 12.0, 20.0)
	v.Normalize()
	assert.InDelta(t, 1.0, v.Length(), 1e-12)

	v.Fill(7)
	assert.Equal(t, vec.Splat3(7.0), v)
}

// TestVec3_ManhattanDistance verifies the L1 metric and its symmetry.
func TestVec3_ManhattanDistance(t *testing.T) {
	a := vec.New3(1.0, 2.0, 3.0)
	b := vec.New3(4.0, 6.0, 8.0)

	assert.Equal(t, 12.0, a.ManhattanDistance(b), "3 + 4 + 5")
	assert.Equal(t, 12.0, b.ManhattanDistance(a))
	assert.Equal(t, 0.0, a.ManhattanDistance(a))
}

// TestVec3_Conversions verifies truncation, zero-extension and Array.
func TestVec3_Conversions(t *testing.T) {
	v := vec.New3(1.0, 2.0, 3.0)

	assert.Equal(t, vec.New2(1.0, 2.0), v.Vec2())
	assert.Equal(t, vec.New4(1.0, 2.0, 3.0, 0.0), v.Vec4())
	assert.Equal(t, [3]float64{1, 2, 3}, v.Array())
}

// TestVec3_IndexAccess verifies At/Set over every index and the panic
// contract outside [0, 3).
func TestVec3_IndexAccess(t *testing.T) {
	v := vec.New3(1.0, 2.0, 3.0)
	for i := 0; i < 3; i++ {
		assert.Equal(t, float64(i+1), v.At(i))
	}

	v.Set(2, 9)
	assert.Equal(t, 9.0, v.Z)

	assert.PanicsWithValue(t, "vec: Vec3 index out of range", func() { v.At(3) })
	assert.PanicsWithValue(t, "vec: Vec3 index out of range", func() { v.Set(-1, 0) })
}

// TestVec3_Permuted verifies row reordering through a permutation.
func TestVec3_Permuted(t *testing.T) {
	v := vec.New3(9.0, 12.0, 20.0)

	assert.Equal(t, vec.New3(20.0, 9.0, 12.0), v.Permuted([]int{2, 0, 1}))
	assert.Equal(t, v, v.Permuted([]int{0, 1, 2}), "identity permutation is a no-op")
}

// TestVec3_EqualApprox verifies the closed per-component tolerance.
func TestVec3_EqualApprox(t *testing.T) {
	a := vec.New3(1.0, 2.0, 3.0)
	assert.True(t, a.EqualApprox(vec.New3(1.0+1e-10, 2.0, 3.0-1e-10), 1e-9))
	assert.False(t, a.EqualApprox(vec.New3(1.1, 2.0, 3.0), 1e-9))
}

// TestVec3_Zero verifies the capability constructor used by the solver.
func TestVec3_Zero(t *testing.T) {
	assert.Equal(t, vec.Vec3[float64]{}, vec.New3(1.0, 2.0, 3.0).Zero())
	assert.Equal(t, 3, vec.Vec3[float64]{}.Dim())
}
