// Package quat provides rotation quaternions generic over float32/float64,
// built to compose with mat and vec: orientations accumulate through Mul,
// Rotated and Rotate, and Mat4 expands the result into a transform whose
// convention matches the planar rotations in mat (positive angles sweep
// X toward Y).
//
// Rotation takes its axis as given and pays no normalization cost;
// Rotated and Rotate normalize the axis first. Nothing renormalizes
// behind your back, so long Mul chains drift away from unit length and
// Normalized hands the drift back when it matters. Mat4 reads the raw
// components, meaning a non-unit quaternion scales as well as rotates.
//
// There are no error paths: the zero quaternion normalizes to NaN
// components and expands to the identity matrix.
package quat
