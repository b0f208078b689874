package geom

import "testing"

type pixels float32

type meters float64

func TestScalarNamedTypes(t *testing.T) {
	if !isFloat32[float32]() || !isFloat32[pixels]() {
		t.Error("float32 based types aren't detected as float32")
	}
	if isFloat32[float64]() || isFloat32[meters]() {
		t.Error("float64 based types are detected as float32")
	}
	if got := relEpsilon[pixels](); got != relEpsilon[float32]() {
		t.Errorf("got epsilon %v for a named float32, want %v", got, relEpsilon[float32]())
	}
	if got := sqrt[pixels](2); got != pixels(sqrt[float32](2)) {
		t.Errorf("got sqrt(2) = %v, want the float32 result %v", got, sqrt[float32](2))
	}
	if got := hypot[meters](3, 4); got != 5 {
		t.Errorf("got hypot(3, 4) = %v, want 5", got)
	}
}

func TestQuadBezNamedScalar(t *testing.T) {
	q := QuadBez[pixels]{Pt[pixels](0, -10), Pt[pixels](10, 20), Pt[pixels](20, -10)}
	xs, n := q.LineSegmentIntersectionsT(Line[pixels]{Pt[pixels](10, -10), Pt[pixels](10, 10)})
	if n != 1 {
		t.Fatalf("got %d intersections, want 1", n)
	}
	if d := abs(xs[0].SegmentT - 0.5); d > 1e-5 {
		t.Errorf("got curve parameter %v, want 0.5", xs[0].SegmentT)
	}

	m := QuadBez[pixels]{Pt[pixels](0, 0), Pt[pixels](5, 5), Pt[pixels](10, 20)}.AssumeMonotonic()
	if tx := m.SolveTForX(7.5, 1e-4); abs(m.X(tx)-7.5) > 1e-4 {
		t.Errorf("got x(%v) = %v, want 7.5", tx, m.X(tx))
	}
}
