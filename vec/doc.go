// Package vec provides fixed-size 2-, 3- and 4-component vectors, generic
// over float32/float64, with value semantics throughout:
//
//   - arithmetic (Add, Sub, Scale, Neg) returns fresh values,
//   - products (Dot, Cross) and metrics (Length, LengthSquared,
//     ManhattanDistance) never mutate their operands,
//   - the few in-place verbs (Fill, Normalize, Set) take pointer receivers.
//
// Each type also exposes the capability surface the lu solver is generic
// over: Dim, At, Set, Zero and Permuted. At and Set panic on an index
// outside [0, Dim); every numeric path is unchecked and lets NaN/±Inf
// propagate (normalizing the zero vector yields NaN components, not an
// error).
package vec
