package geom

import (
	"math"
	"testing"
)

func TestRectBasics(t *testing.T) {
	r := NewRect(1.0, 2.0, 3.0, 4.0)
	diff(t, Rect[float64]{1, 2, 4, 6}, r)
	if w, h := r.Width(), r.Height(); w != 3 || h != 4 {
		t.Errorf("got size %vx%v, want 3x4", w, h)
	}
	if a := r.Area(); a != 12 {
		t.Errorf("got area %v, want 12", a)
	}
	diff(t, Pt(2.5, 4.0), r.Center())
	diff(t, Pt(1.0, 2.0), r.Origin())
}

func TestRectAreaSign(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-8
	}

	r := Rect[float64]{0.0, 0.0, 10.0, 10.0}
	if a := r.Area(); !approxEqual(a, 100) {
		t.Errorf("got area %v, want %v", a, 100.0)
	}

	rFlip := Rect[float64]{0.0, 10.0, 10.0, 0.0}
	if a := rFlip.Area(); !approxEqual(a, -100) {
		t.Errorf("got area %v, want %v", a, -100.0)
	}
	diff(t, r, rFlip.Abs())
}

func TestRectContains(t *testing.T) {
	r := NewRect(0.0, 0.0, 2.0, 0.0)
	if r.Contains(Pt(1.0, 0.0)) {
		t.Error("zero-height rectangle contains a point")
	}
	if !r.ContainsInclusive(Pt(1.0, 0.0)) {
		t.Error("zero-height rectangle doesn't contain a point on its perimeter")
	}

	r = NewRect(0.0, 0.0, 2.0, 2.0)
	if !r.Contains(Pt(0.0, 0.0)) || r.Contains(Pt(2.0, 1.0)) {
		t.Error("Contains doesn't implement a half-open interval")
	}
	if !r.ContainsRect(NewRect(0.5, 0.5, 1.0, 1.5)) {
		t.Error("rectangle doesn't contain an inner rectangle")
	}
	if r.ContainsRect(NewRect(0.5, 0.5, 2.0, 1.0)) {
		t.Error("rectangle contains an overlapping rectangle")
	}
}

func TestRectUnionIntersect(t *testing.T) {
	a := NewRect(0.0, 0.0, 2.0, 2.0)
	b := NewRect(1.0, 1.0, 2.0, 2.0)
	diff(t, Rect[float64]{0, 0, 3, 3}, a.Union(b))
	diff(t, Rect[float64]{1, 1, 2, 2}, a.Intersect(b))
	diff(t, Rect[float64]{0, -1, 2, 2}, a.UnionPoint(Pt(1.0, -1.0)))
	diff(t, Rect[float64]{-1, -0.5, 3, 2.5}, a.Inflate(1, 0.5))

	c := NewRect(5.0, 5.0, 1.0, 1.0)
	if area := a.Intersect(c).Area(); area != 0 {
		t.Errorf("got area %v for disjoint intersection, want 0", area)
	}
}
