package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed converts the point to 26.6 fixed point, rounding to the nearest
// representable value.
func (pt Point[S]) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fix(pt.X), Y: fix(pt.Y)}
}

// PointFromFixed converts a 26.6 fixed point to a point. The conversion is
// exact.
func PointFromFixed[S Scalar](p fixed.Point26_6) Point[S] {
	return Point[S]{X: unfix[S](p.X), Y: unfix[S](p.Y)}
}

// QuadBezFromFixed returns the segment with the given 26.6 fixed point
// points, as found in TrueType glyph outlines.
func QuadBezFromFixed[S Scalar](from, ctrl, to fixed.Point26_6) QuadBez[S] {
	return QuadBez[S]{
		From: PointFromFixed[S](from),
		Ctrl: PointFromFixed[S](ctrl),
		To:   PointFromFixed[S](to),
	}
}

// Fixed converts the segment's points to 26.6 fixed point.
func (q QuadBez[S]) Fixed() (from, ctrl, to fixed.Point26_6) {
	return q.From.Fixed(), q.Ctrl.Fixed(), q.To.Fixed()
}

func fix[S Scalar](x S) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(x) * 64))
}

func unfix[S Scalar](x fixed.Int26_6) S {
	return S(float64(x) / 64)
}
