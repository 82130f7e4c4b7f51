// Package geom provides small immutable value types for planar geometry:
// points, vectors, and line segments.
//
// # Points and vectors
//
// A [Point] is a location, a [Vector] is a displacement. Subtracting two points
// yields the vector between them, and translating a point by a vector yields
// another point. Points can also be summed coordinate-wise with [Point.Add],
// which is occasionally useful for computing centroids, even though it isn't
// meaningful geometrically.
//
// # Cartesian and polar vectors
//
// A vector is stored in one of two encodings, chosen at construction: [Vec]
// creates a [Cartesian] vector from x and y components, [VecPolar] creates a
// [Polar] vector from a magnitude r and an angle t in radians. All operations
// accept either encoding. Operations that can be carried out without leaving
// the receiver's encoding do so; for example, scaling a polar vector only
// scales its magnitude, and adding two polar vectors that point in the same
// direction adds their magnitudes. Everything else is computed in cartesian
// form.
//
// Polar angles are normalized to [0, 2π). A polar vector with magnitude 0
// always has angle 0, so that the zero vector has exactly one polar encoding.
//
// Comparing vectors with [Vector.Equal] converts the argument to the
// receiver's encoding and then compares exactly. Because conversions involve
// trigonometry, a vector and its converted counterpart are usually only
// approximately equal.
//
// # Segments
//
// A [Segment] is a closed line segment between two points. [Segment.Intersection]
// finds the point where two segments cross. Parallel segments, including
// overlapping colinear ones, are reported as not intersecting.
//
// # Errors
//
// Constructors that validate their input and divisions by a scalar return
// errors that can be matched with [errors.Is] against [ErrInvalidCoordinate],
// [ErrNegativeMagnitude], and [ErrDivideByZero].
package geom
