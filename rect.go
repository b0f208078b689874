package geom

import "fmt"

// Rect is an axis-aligned rectangle spanning from (X0, Y0) to (X1, Y1).
type Rect[S Scalar] struct {
	X0, Y0 S
	X1, Y1 S
}

// NewRect returns the rectangle with origin (x, y) and the given width and
// height.
func NewRect[S Scalar](x, y, width, height S) Rect[S] {
	return Rect[S]{x, y, x + width, y + height}
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints[S Scalar](p0, p1 Point[S]) Rect[S] {
	return Rect[S]{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

func (r Rect[S]) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", r.X0, r.X1, r.Y0, r.Y1)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect[S]) Abs() Rect[S] {
	return Rect[S]{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect[S]) MinX() S { return min(r.X0, r.X1) }
func (r Rect[S]) MaxX() S { return max(r.X0, r.X1) }
func (r Rect[S]) MinY() S { return min(r.Y0, r.Y1) }
func (r Rect[S]) MaxY() S { return max(r.Y0, r.Y1) }

// Origin returns the origin of the rectangle.
//
// This is the top left corner in a y-down space and with
// non-negative width and height.
func (r Rect[S]) Origin() Point[S] {
	return Point[S]{
		X: r.X0,
		Y: r.Y0,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect[S]) Width() S {
	return r.X1 - r.X0
}

// Height returns the rectangle's heigth, defined as Y1 − Y0. It may be negative.
func (r Rect[S]) Height() S {
	return r.Y1 - r.Y0
}

func (r Rect[S]) Center() Point[S] {
	return Point[S]{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect[S]) Area() S {
	return r.Width() * r.Height()
}

// Contains reports whether pt lies in the half-open rectangle [X0, X1)×[Y0, Y1).
func (r Rect[S]) Contains(pt Point[S]) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// ContainsInclusive is like Contains but also includes the right and bottom
// edges. Zero-area rectangles thus contain the points on their perimeter.
func (r Rect[S]) ContainsInclusive(pt Point[S]) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// ContainsRect reports whether o lies entirely within r, edges included.
func (r Rect[S]) ContainsRect(o Rect[S]) bool {
	return o.X0 >= r.X0 &&
		o.X1 <= r.X1 &&
		o.Y0 >= r.Y0 &&
		o.Y1 <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect[S]) Union(o Rect[S]) Rect[S] {
	return Rect[S]{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect[S]) UnionPoint(pt Point[S]) Rect[S] {
	return Rect[S]{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersect returns the intersection of two rectangles.
//
// The result is zero-area if either input has negative width or
// height. The result always has non-negative width and height.
func (r Rect[S]) Intersect(o Rect[S]) Rect[S] {
	x0 := max(r.X0, o.X0)
	y0 := max(r.Y0, o.Y0)
	x1 := min(r.X1, o.X1)
	y1 := min(r.Y1, o.Y1)
	return Rect[S]{
		X0: x0,
		Y0: y0,
		X1: max(x0, x1),
		Y1: max(y0, y1),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
//
// The logic simply applies the amount in each direction. If rectangle
// area or added dimensions are negative, this could give odd results.
func (r Rect[S]) Inflate(width, height S) Rect[S] {
	return Rect[S]{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect[S]) IsInf() bool {
	return isInf(r.X0) || isInf(r.Y0) || isInf(r.X1) || isInf(r.Y1)
}

func (r Rect[S]) IsNaN() bool {
	return isNaN(r.X0) || isNaN(r.Y0) || isNaN(r.X1) || isNaN(r.Y1)
}
