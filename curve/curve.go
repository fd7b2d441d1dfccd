package curve

import "github.com/katalvlaran/gamemath/num"

// Curve is an evenly spaced sequence of control values sampled through
// Lerp. The zero value is an empty curve.
type Curve[T num.Float] []T

// New returns a curve holding its own copy of values, detached from the
// caller's slice.
func New[T num.Float](values []T) Curve[T] {
	c := make(Curve[T], len(values))
	copy(c, values)

	return c
}

// Len returns the number of control values.
func (c Curve[T]) Len() int { return len(c) }

// At returns the control value at index i.
func (c Curve[T]) At(i int) T { return c[i] }

// Set assigns the control value at index i.
func (c Curve[T]) Set(i int, v T) { c[i] = v }

// Lerp samples the curve at factor: 0 lands on the first value, 1 on the
// last, and the segment index falls out of factor scaled by the segment
// count. Out-of-range and NaN factors clamp to an endpoint.
func (c Curve[T]) Lerp(factor T) T {
	n := len(c)
	if n == 0 {
		var zero T
		return zero
	}
	if n == 1 {
		return c[0]
	}
	if !(factor < 1) {
		return c[n-1]
	}
	if factor < 0 {
		factor = 0
	}

	scaled := factor * T(n-1)
	i := int(scaled)

	return num.Lerp(c[i], c[i+1], scaled-T(i))
}
