// Package geom provides exact and approximate geometric analysis of quadratic
// Bézier segments, together with the 2D primitives they are built on.
//
// The package is generic over the coordinate type: every type is
// parametrized by a [Scalar]: float32, float64, or a type defined on either.
//
// # Quadratic Béziers
//
// [QuadBez] is the central type. Its operations fall into a few groups:
//
//   - Evaluation and differentiation (see [QuadBez.Eval], [QuadBez.Derivative])
//   - Extremum analysis (see [QuadBez.LocalXExtremum], [QuadBez.XMaximum])
//   - Bounding geometry (see [QuadBez.BoundingRect], [QuadBez.FatLine])
//   - Subdivision (see [QuadBez.Split], [QuadBez.SplitRange])
//   - Flattening to polylines (see [QuadBez.Flatten])
//   - Intersections with lines (see [QuadBez.LineIntersectionsT])
//
// All operations are pure. They take segments by value and return new values,
// and degenerate segments, such as ones whose points all coincide, never cause
// panics unless documented otherwise.
//
// # Flattening
//
// [QuadBez.Flatten] approximates a curve with line segments by repeatedly
// cutting off the longest leading piece whose chord stays within tolerance.
// The length of that piece is estimated in closed form from the control
// polygon: with v1 = Ctrl - From and v2 = To - From, the step in t is
// 2·√(tolerance·|v1| / (3·|v1 × v2|)), and a flat curve is covered in a
// single step. The resulting points can be pulled one at a time from a
// [Flattened], ranged over with [Flattened.All], or pushed to a callback with
// [QuadBez.FlattenedForEach].
//
// # Monotonic curves
//
// Splitting a curve at its extrema yields pieces that are monotonic in x and
// y (see [QuadBez.MonotonicPieces]). [Monotonic] wraps such pieces and can
// solve for the parameter at which the curve reaches a given coordinate.
//
// # Debugging
//
// Building with the geomdebug tag enables assertions on preconditions that
// are otherwise unchecked, such as the range passed to [QuadBez.SplitRange]
// or the monotonicity of curves passed to [QuadBez.AssumeMonotonic].
package geom
