// Package curve provides a value curve: an ordered run of control values
// interpolated linearly by a single factor, generic over float32/float64.
//
// Lerp maps factor 0 to the first value and factor 1 to the last, with
// the control values spaced evenly in between; factors outside [0, 1]
// clamp to the endpoints, and a NaN factor lands on the last value. An
// empty curve yields the zero value, a single-entry curve that entry.
package curve
