package geom

// Triangle is the triangle with the vertices A, B and C, in any winding order.
type Triangle[S Scalar] struct {
	A, B, C Point[S]
}

// Contains reports whether pt lies inside the triangle or on its edges.
//
// Degenerate (zero-area) triangles contain the points of the segments
// between their vertices, up to the precision of the cross products.
func (tri Triangle[S]) Contains(pt Point[S]) bool {
	d0 := tri.B.Sub(tri.A).Cross(pt.Sub(tri.A))
	d1 := tri.C.Sub(tri.B).Cross(pt.Sub(tri.B))
	d2 := tri.A.Sub(tri.C).Cross(pt.Sub(tri.C))
	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	if hasNeg && hasPos {
		return false
	}
	if !hasNeg && !hasPos {
		// Collinear vertices, fall back to the bounding box.
		return tri.BoundingRect().ContainsInclusive(pt)
	}
	return true
}

// BoundingRect returns the smallest rectangle containing the three vertices.
func (tri Triangle[S]) BoundingRect() Rect[S] {
	return NewRectFromPoints(tri.A, tri.B).UnionPoint(tri.C)
}
