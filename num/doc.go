// Package num holds the scalar kernel shared by every gamemath package:
// the Float type-parameter constraint plus the handful of helpers the
// fixed-size containers need, generic over float32 and float64.
//
// Everything here is a thin wrapper over the standard math package;
// float32 arguments round-trip through float64, which widens exactly and
// rounds once on the way back.
//
// There are no error paths: NaN and ±Inf flow through every helper
// unchanged, matching IEEE-754 semantics.
package num
