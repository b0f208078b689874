package geom

import (
	"fmt"
	"iter"
)

// QuadBez is a quadratic Bézier segment, defined by a start point, a control
// point and an end point.
//
// The curve is defined by the equation
//
//	∀ t ∈ [0, 1], P(t) = (1 - t)² From + 2 (1 - t) t Ctrl + t² To
//
// Any three points form a valid segment, including degenerate ones where
// points coincide. QuadBez is a small value type; all operations return new
// values and never modify the receiver.
type QuadBez[S Scalar] struct {
	From Point[S]
	Ctrl Point[S]
	To   Point[S]
}

func (q QuadBez[S]) String() string {
	return fmt.Sprintf("QuadBez{%s, %s, %s}", q.From, q.Ctrl, q.To)
}

func (q QuadBez[S]) Start() Point[S] {
	return q.From
}

func (q QuadBez[S]) End() Point[S] {
	return q.To
}

func (q QuadBez[S]) IsInf() bool {
	return q.From.IsInf() || q.Ctrl.IsInf() || q.To.IsInf()
}

func (q QuadBez[S]) IsNaN() bool {
	return q.From.IsNaN() || q.Ctrl.IsNaN() || q.To.IsNaN()
}

// Eval samples the curve at t, which is expected to be in [0, 1].
//
// Eval(0) is exactly From and Eval(1) is exactly To.
func (q QuadBez[S]) Eval(t S) Point[S] {
	mt := 1 - t
	a := Vec2[S](q.From).Mul(mt * mt)
	b := Vec2[S](q.Ctrl).Mul(2 * mt * t)
	c := Vec2[S](q.To).Mul(t * t)
	return Point[S](a.Add(b).Add(c))
}

// X samples the x coordinate of the curve at t.
func (q QuadBez[S]) X(t S) S {
	mt := 1 - t
	return q.From.X*(mt*mt) + q.Ctrl.X*(2*mt*t) + q.To.X*(t*t)
}

// Y samples the y coordinate of the curve at t.
func (q QuadBez[S]) Y(t S) S {
	mt := 1 - t
	return q.From.Y*(mt*mt) + q.Ctrl.Y*(2*mt*t) + q.To.Y*(t*t)
}

// derivativeCoefficients returns the weights of From, Ctrl and To in the
// derivative at t.
func derivativeCoefficients[S Scalar](t S) (S, S, S) {
	return 2*t - 2, -4*t + 2, 2 * t
}

// Derivative samples the curve's derivative at t.
func (q QuadBez[S]) Derivative(t S) Vec2[S] {
	c0, c1, c2 := derivativeCoefficients(t)
	return Vec2[S](q.From).Mul(c0).
		Add(Vec2[S](q.Ctrl).Mul(c1)).
		Add(Vec2[S](q.To).Mul(c2))
}

// Dx samples the x coordinate of the curve's derivative at t.
func (q QuadBez[S]) Dx(t S) S {
	c0, c1, c2 := derivativeCoefficients(t)
	return q.From.X*c0 + q.Ctrl.X*c1 + q.To.X*c2
}

// Dy samples the y coordinate of the curve's derivative at t.
func (q QuadBez[S]) Dy(t S) S {
	c0, c1, c2 := derivativeCoefficients(t)
	return q.From.Y*c0 + q.Ctrl.Y*c1 + q.To.Y*c2
}

// Differentiate returns the derivative of the curve, which is a line whose
// points are to be read as vectors.
func (q QuadBez[S]) Differentiate() Line[S] {
	return Line[S]{
		Point[S](q.Ctrl.Sub(q.From).Mul(2)),
		Point[S](q.To.Sub(q.Ctrl).Mul(2)),
	}
}

// Flip swaps the start and the end of the segment. The flipped curve at t is
// the original curve at 1 - t.
func (q QuadBez[S]) Flip() QuadBez[S] {
	return QuadBez[S]{
		From: q.To,
		Ctrl: q.Ctrl,
		To:   q.From,
	}
}

func (q QuadBez[S]) Transform(aff Affine[S]) QuadBez[S] {
	return QuadBez[S]{
		From: q.From.Transform(aff),
		Ctrl: q.Ctrl.Transform(aff),
		To:   q.To.Transform(aff),
	}
}

// Baseline returns the line segment between the curve's end points.
func (q QuadBez[S]) Baseline() Line[S] {
	return Line[S]{q.From, q.To}
}

// IsLinear reports whether the control point lies within tolerance of the
// line through the end points. Curves whose end points coincide are never
// linear, as they have no baseline to measure against.
func (q QuadBez[S]) IsLinear(tolerance S) bool {
	const epsilon = 1e-6
	if q.From.Sub(q.To).Hypot2() < epsilon {
		return false
	}
	return q.Baseline().Equation().DistanceToPoint(q.Ctrl) < tolerance
}

// FatLine computes a "fat line" of the curve: two parallel lines between
// which the whole curve is contained.
//
// The curve lies on the non-negative side of the first line and on the
// non-positive side of the second one, as measured by
// [LineEquation.SignedDistanceToPoint]. One of the lines is the baseline, the
// other one is offset by half the distance of the control point.
func (q QuadBez[S]) FatLine() (LineEquation[S], LineEquation[S]) {
	l1 := q.Baseline().Equation()
	d := l1.SignedDistanceToPoint(q.Ctrl)
	l2 := l1.Offset(d / 2)
	if d >= 0 {
		return l1, l2
	}
	return l2, l1
}

// SignedArea returns the signed area between the curve and the origin.
func (q QuadBez[S]) SignedArea() S {
	v := q.From.X*(2.0*q.Ctrl.Y+q.To.Y) +
		2.0*(q.Ctrl.X*(q.To.Y-q.From.Y)) -
		q.To.X*(q.From.Y+2.0*q.Ctrl.Y)
	return v * (1.0 / 6.0)
}

// localExtremum returns the parameter at which the derivative of the
// one-dimensional quadratic (from, ctrl, to) vanishes, if that parameter lies
// strictly inside (0, 1).
func localExtremum[S Scalar](from, ctrl, to S) (S, bool) {
	div := from - 2*ctrl + to
	if div == 0 {
		return 0, false
	}
	t := (from - ctrl) / div
	if t > 0 && t < 1 {
		return t, true
	}
	return 0, false
}

// LocalXExtremum returns the parameter of the x extremum, or false if the
// curve is monotonic in x.
func (q QuadBez[S]) LocalXExtremum() (S, bool) {
	return localExtremum(q.From.X, q.Ctrl.X, q.To.X)
}

// LocalYExtremum returns the parameter of the y extremum, or false if the
// curve is monotonic in y.
func (q QuadBez[S]) LocalYExtremum() (S, bool) {
	return localExtremum(q.From.Y, q.Ctrl.Y, q.To.Y)
}

// XMaximum returns the parameter of the point with the largest x coordinate.
//
// This returns the advancement along the curve, not the x coordinate. When
// both end points share the largest x, the result is 1.
func (q QuadBez[S]) XMaximum() S {
	if t, ok := q.LocalXExtremum(); ok {
		if x := q.X(t); x > q.From.X && x > q.To.X {
			return t
		}
	}
	if q.From.X > q.To.X {
		return 0
	}
	return 1
}

// XMinimum returns the parameter of the point with the smallest x coordinate.
//
// This returns the advancement along the curve, not the x coordinate. When
// both end points share the smallest x, the result is 0.
func (q QuadBez[S]) XMinimum() S {
	if t, ok := q.LocalXExtremum(); ok {
		if x := q.X(t); x < q.From.X && x < q.To.X {
			return t
		}
	}
	if q.From.X <= q.To.X {
		return 0
	}
	return 1
}

// YMaximum returns the parameter of the point with the largest y coordinate.
//
// See [QuadBez.XMaximum].
func (q QuadBez[S]) YMaximum() S {
	if t, ok := q.LocalYExtremum(); ok {
		if y := q.Y(t); y > q.From.Y && y > q.To.Y {
			return t
		}
	}
	if q.From.Y > q.To.Y {
		return 0
	}
	return 1
}

// YMinimum returns the parameter of the point with the smallest y coordinate.
//
// See [QuadBez.XMinimum].
func (q QuadBez[S]) YMinimum() S {
	if t, ok := q.LocalYExtremum(); ok {
		if y := q.Y(t); y < q.From.Y && y < q.To.Y {
			return t
		}
	}
	if q.From.Y <= q.To.Y {
		return 0
	}
	return 1
}

// Extrema returns the parameters of the interior x and y extrema in
// increasing order. Coinciding extrema are reported once.
func (q QuadBez[S]) Extrema() ([2]S, int) {
	var out [2]S
	var outN int
	if t, ok := q.LocalXExtremum(); ok {
		out[outN] = t
		outN++
	}
	if t, ok := q.LocalYExtremum(); ok {
		switch {
		case outN == 1 && out[0] == t:
		case outN == 1 && out[0] > t:
			out[0], out[1] = t, out[0]
			outN++
		default:
			out[outN] = t
			outN++
		}
	}
	return out, outN
}

// FastBoundingRect returns a conservative rectangle containing the curve: the
// bounding box of its three points.
func (q QuadBez[S]) FastBoundingRect() Rect[S] {
	minX, maxX := q.FastBoundingRangeX()
	minY, maxY := q.FastBoundingRangeY()
	return Rect[S]{minX, minY, maxX, maxY}
}

func (q QuadBez[S]) FastBoundingRangeX() (S, S) {
	return min(q.From.X, q.Ctrl.X, q.To.X), max(q.From.X, q.Ctrl.X, q.To.X)
}

func (q QuadBez[S]) FastBoundingRangeY() (S, S) {
	return min(q.From.Y, q.Ctrl.Y, q.To.Y), max(q.From.Y, q.Ctrl.Y, q.To.Y)
}

// BoundingRect returns the smallest rectangle containing the curve.
func (q QuadBez[S]) BoundingRect() Rect[S] {
	minX, maxX := q.BoundingRangeX()
	minY, maxY := q.BoundingRangeY()
	return Rect[S]{minX, minY, maxX, maxY}
}

// BoundingBox is an alias for [QuadBez.BoundingRect].
func (q QuadBez[S]) BoundingBox() Rect[S] {
	return q.BoundingRect()
}

func (q QuadBez[S]) BoundingRangeX() (S, S) {
	return q.X(q.XMinimum()), q.X(q.XMaximum())
}

func (q QuadBez[S]) BoundingRangeY() (S, S) {
	return q.Y(q.YMinimum()), q.Y(q.YMaximum())
}

// BoundingTriangle returns the triangle formed by the curve's points, which
// contains the curve.
func (q QuadBez[S]) BoundingTriangle() Triangle[S] {
	return Triangle[S]{q.From, q.Ctrl, q.To}
}

// Split splits the curve at t. The first curve ends and the second one starts
// at Eval(t).
func (q QuadBez[S]) Split(t S) (QuadBez[S], QuadBez[S]) {
	split := q.Eval(t)
	return QuadBez[S]{q.From, q.From.Lerp(q.Ctrl, t), split},
		QuadBez[S]{split, q.Ctrl.Lerp(q.To, t), q.To}
}

// BeforeSplit returns the first curve of Split(t).
func (q QuadBez[S]) BeforeSplit(t S) QuadBez[S] {
	return QuadBez[S]{q.From, q.From.Lerp(q.Ctrl, t), q.Eval(t)}
}

// AfterSplit returns the second curve of Split(t).
func (q QuadBez[S]) AfterSplit(t S) QuadBez[S] {
	return QuadBez[S]{q.Eval(t), q.Ctrl.Lerp(q.To, t), q.To}
}

// Subdivide splits the curve into halves.
func (q QuadBez[S]) Subdivide() (QuadBez[S], QuadBez[S]) {
	return q.Split(0.5)
}

// SplitRange returns the part of the curve between t1 and t2.
//
// It must hold that 0 ≤ t1 ≤ t2 ≤ 1 and t1 ≠ 1. This is only checked when
// building with the geomdebug tag.
func (q QuadBez[S]) SplitRange(t1, t2 S) QuadBez[S] {
	assertf(t1 >= 0 && t2 <= 1 && t1 <= t2 && t1 != 1, "invalid range [%g, %g]", t1, t2)
	from := q.Eval(t1)
	to := q.Eval(t2)
	// The control point of the sub-curve lies where the tangents at t1 and
	// t2 intersect.
	a := q.From.Lerp(q.Ctrl, t1)
	b := q.Ctrl.Lerp(q.To, t1)
	ctrl := a.Lerp(b, t2)
	return QuadBez[S]{from, ctrl, to}
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez[S]) Raise() CubicBez[S] {
	return CubicBez[S]{
		q.From,
		q.From.Translate(q.Ctrl.Sub(q.From).Mul(2.0 / 3.0)),
		q.To.Translate(q.Ctrl.Sub(q.To).Mul(2.0 / 3.0)),
		q.To,
	}
}

// FlatteningStep returns the parameter t such that the chord from the start of
// the curve to Eval(t) stays within tolerance of the curve. The result is in
// (0, 1]; it is 1 when the curve is flat, and when its coordinates are NaN or
// so large that the estimate overflows.
func (q QuadBez[S]) FlatteningStep(tolerance S) S {
	const epsilon = 1e-6
	v1 := q.Ctrl.Sub(q.From)
	v2 := q.To.Sub(q.From)

	v1CrossV2 := v2.X*v1.Y - v2.Y*v1.X
	h := v1.Hypot()
	if abs(v1CrossV2*h) <= epsilon {
		return 1
	}

	s2inv := h / v1CrossV2
	t := 2 * sqrt(tolerance*abs(s2inv)/3)
	if !(t > 0 && t < 1) {
		// Overflowed or NaN coordinates can't be subdivided any further.
		return 1
	}
	return t
}

// Flatten returns an iterator over the points of a polyline approximating the
// curve to within tolerance. The points start after From and end with To.
//
// tolerance must be positive.
func (q QuadBez[S]) Flatten(tolerance S) *Flattened[S, QuadBez[S]] {
	return NewFlattened(q, tolerance)
}

// FlattenedForEach calls fn with every point [QuadBez.Flatten] produces.
func (q QuadBez[S]) FlattenedForEach(tolerance S, fn func(Point[S])) {
	FlattenedForEach(q, tolerance, fn)
}

// ApproxLength approximates the length of the curve by the length of its
// flattened polyline. The estimate never exceeds the arc length and improves
// as tolerance decreases.
func (q QuadBez[S]) ApproxLength(tolerance S) S {
	return ApproxLengthFromFlattening(q, tolerance)
}

// AssumeMonotonic converts the curve into a monotonic curve, without checking
// that it is monotonic in x and y. Building with the geomdebug tag enables
// the check.
//
// The results of the wrapper's solvers are meaningless for curves that aren't
// monotonic. Curves produced by [QuadBez.MonotonicPieces] are.
func (q QuadBez[S]) AssumeMonotonic() MonotonicQuadBez[S] {
	if debugAssertions {
		const epsilon = 1e-4
		for _, ex := range []func() (S, bool){q.LocalXExtremum, q.LocalYExtremum} {
			t, ok := ex()
			assertf(!ok || t < epsilon || t > 1-epsilon, "%s is not monotonic at t=%g", q, t)
		}
	}
	return MonotonicQuadBez[S]{curve: q}
}

// MonotonicPieces splits the curve at its extrema, returning up to three
// curves that are monotonic in both x and y.
func (q QuadBez[S]) MonotonicPieces() iter.Seq[MonotonicQuadBez[S]] {
	return func(yield func(MonotonicQuadBez[S]) bool) {
		ex, n := q.Extrema()
		var t0 S
		for _, t := range ex[:n] {
			if !yield(q.SplitRange(t0, t).AssumeMonotonic()) {
				return
			}
			t0 = t
		}
		yield(q.SplitRange(t0, 1).AssumeMonotonic())
	}
}

// LineIntersectionsT returns the parameters, in increasing order, at which the
// curve crosses line. To get the intersection points, evaluate the curve at
// these parameters, or use [QuadBez.LineIntersections].
func (q QuadBez[S]) LineIntersectionsT(line InfiniteLine[S]) ([2]S, int) {
	// Raising preserves the parametrization, so the cubic's parameters are
	// ours.
	ts, n := q.Raise().IntersectInfiniteLine(line)
	if n > 2 {
		panic(fmt.Sprintf("quadratic curve crosses a line %d times", n))
	}
	return [2]S{ts[0], ts[1]}, n
}

// LineIntersections returns the points at which the curve crosses line.
func (q QuadBez[S]) LineIntersections(line InfiniteLine[S]) ([2]Point[S], int) {
	ts, n := q.LineIntersectionsT(line)
	var out [2]Point[S]
	for i, t := range ts[:n] {
		out[i] = q.Eval(t)
	}
	return out, n
}

// LineSegmentIntersectionsT computes the intersections of the curve and a
// line segment. For every intersection, SegmentT is the parameter on the curve
// and LineT the parameter on the line segment.
func (q QuadBez[S]) LineSegmentIntersectionsT(line Line[S]) ([2]LineIntersection[S], int) {
	xs, n := q.Raise().IntersectLine(line)
	if n > 2 {
		panic(fmt.Sprintf("quadratic curve intersects a line segment %d times", n))
	}
	return [2]LineIntersection[S]{xs[0], xs[1]}, n
}

// LineSegmentIntersections returns the points at which the curve intersects a
// line segment.
func (q QuadBez[S]) LineSegmentIntersections(line Line[S]) ([2]Point[S], int) {
	xs, n := q.LineSegmentIntersectionsT(line)
	var out [2]Point[S]
	for i, x := range xs[:n] {
		out[i] = q.Eval(x.SegmentT)
	}
	return out, n
}
