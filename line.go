package geom

// Line represents a line segment.
type Line[S Scalar] struct {
	// The line's start point.
	P0 Point[S]
	// The line's end point.
	P1 Point[S]
}

// Length returns the length of the line.
func (l Line[S]) Length() S {
	return l.P1.Sub(l.P0).Hypot()
}

// Vector returns the vector from the start to the end of the line.
func (l Line[S]) Vector() Vec2[S] {
	return l.P1.Sub(l.P0)
}

// InfiniteLine returns the line through both end points of l.
func (l Line[S]) InfiniteLine() InfiniteLine[S] {
	return InfiniteLine[S]{Point: l.P0, Vector: l.Vector()}
}

// Equation returns the equation of the line through both end points of l.
//
// The end points must be distinct.
func (l Line[S]) Equation() LineEquation[S] {
	return l.InfiniteLine().Equation()
}

func (l Line[S]) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line[S]) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line[S]) Translate(v Vec2[S]) Line[S] {
	return Line[S]{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line[S]) BoundingBox() Rect[S] {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line[S]) Eval(t S) Point[S] {
	return l.P0.Lerp(l.P1, t)
}

func (l Line[S]) Transform(aff Affine[S]) Line[S] {
	return Line[S]{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line[S]) Start() Point[S] { return l.P0 }
func (l Line[S]) End() Point[S]   { return l.P1 }

func (l Line[S]) Subsegment(start, end S) Line[S] {
	return Line[S]{l.Eval(start), l.Eval(end)}
}

// LineIntersection is an intersection of a [Line] and a curve.
type LineIntersection[S Scalar] struct {
	// The parameter of the intersection on the line, in [0, 1].
	LineT S
	// The parameter of the intersection on the curve, in [0, 1].
	SegmentT S
}

func (li LineIntersection[S]) IsInf() bool {
	return isInf(li.LineT) || isInf(li.SegmentT)
}

func (li LineIntersection[S]) IsNaN() bool {
	return isNaN(li.LineT) || isNaN(li.SegmentT)
}

// IntersectLine computes the intersection of l and the line segment o.
//
// SegmentT is the position on l, LineT the position on o. Coincident lines
// are reported as not intersecting.
func (l Line[S]) IntersectLine(o Line[S]) ([3]LineIntersection[S], int) {
	const epsilon = 1e-9
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if abs(det) < epsilon {
		// Lines are coincident (or nearly so).
		return [3]LineIntersection[S]{}, 0
	}
	t := dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)
	// t = position on self
	t /= det
	if t >= -epsilon && t <= 1+epsilon {
		// u = position on the other line
		u :=
			(l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)
		u /= det
		if u >= 0.0 && u <= 1.0 {
			return [3]LineIntersection[S]{{u, t}}, 1
		}
	}
	return [3]LineIntersection[S]{}, 0
}

// InfiniteLine is the line through Point with direction Vector.
type InfiniteLine[S Scalar] struct {
	Point  Point[S]
	Vector Vec2[S]
}

// Equation returns the implicit equation of the line. Its normal is Vector
// rotated a quarter turn counter-clockwise in a y-up space.
//
// Vector must not be zero.
func (l InfiniteLine[S]) Equation() LineEquation[S] {
	a := -l.Vector.Y
	b := l.Vector.X
	c := -(a*l.Point.X + b*l.Point.Y)
	return NewLineEquation(a, b, c)
}

// SignedDistanceToPoint returns the signed distance of pt to the line.
func (l InfiniteLine[S]) SignedDistanceToPoint(pt Point[S]) S {
	return l.Equation().SignedDistanceToPoint(pt)
}
