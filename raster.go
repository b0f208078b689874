package geom

import (
	"golang.org/x/image/vector"
)

// Rasterize adds the flattened curve to z as a sequence of line segments.
//
// If z's pen isn't already at the curve's start point, a new contour is
// started there. The pen is left at the curve's end point, so consecutive
// segments of a path can be added one after another before calling
// z.ClosePath.
func (q QuadBez[S]) Rasterize(z *vector.Rasterizer, tolerance S) {
	x, y := z.Pen()
	if x != float32(q.From.X) || y != float32(q.From.Y) {
		z.MoveTo(float32(q.From.X), float32(q.From.Y))
	}
	q.FlattenedForEach(tolerance, func(pt Point[S]) {
		z.LineTo(float32(pt.X), float32(pt.Y))
	})
}
