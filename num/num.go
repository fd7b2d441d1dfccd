package num

import "math"

// Float bounds the scalar types every gamemath container is generic over:
// float32, float64, and any named type whose underlying type is one of them.
type Float interface {
	~float32 | ~float64
}

// DefaultEpsilon is the tolerance used by approximate comparisons when the
// caller has no sharper bound for the accumulated rounding error.
const DefaultEpsilon = 1e-9

// Abs returns |x|. Abs(NaN) is NaN.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// Tan returns the tangent of x (radians).
func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Float](x T) T { return T(math.Floor(float64(x))) }

// Clamp limits x to the closed interval [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	return max(lo, min(hi, x))
}

// Lerp linearly interpolates from a to b by t: (1−t)·a + t·b.
// t outside [0, 1] extrapolates; callers wanting a clamped blend pass
// Clamp(t, 0, 1).
func Lerp[T Float](a, b, t T) T {
	return (1-t)*a + t*b
}

// EqualWithin reports whether a and b differ by at most eps.
// Comparisons against NaN are always false.
func EqualWithin[T Float](a, b, eps T) bool {
	return Abs(a-b) <= eps
}
