package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0.0, 0.0).Translate(Vec(-10.0, 0.0)), Pt(-10.0, 0.0))
	diff(t, Pt(3.0, 4.0).Sub(Pt(1.0, 1.0)), Vec(2.0, 3.0))
	diff(t, Pt(0.0, 0.0).Lerp(Pt(4.0, 2.0), 0.25), Pt(1.0, 0.5))
	diff(t, Pt(0.0, 0.0).Midpoint(Pt(4.0, 2.0)), Pt(2.0, 1.0))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0.0, 10.0)
	p2 := Pt(0.0, 5.0)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11.0, 1.0)
	p4 := Pt(-7.0, -2.0)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}

	p5 := Pt[float32](-11, 1)
	p6 := Pt[float32](-7, -2)
	if d := p5.Distance(p6); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointIsInfNaN(t *testing.T) {
	if Pt(1.0, 2.0).IsInf() || Pt(1.0, 2.0).IsNaN() {
		t.Error("finite point reported as infinite or NaN")
	}
	if !Pt(math.Inf(-1), 2.0).IsInf() {
		t.Error("infinite point reported as finite")
	}
	if !Pt(1.0, math.NaN()).IsNaN() {
		t.Error("NaN point not reported as NaN")
	}
	if !Pt(float32(math.Inf(1)), 0).IsInf() {
		t.Error("infinite float32 point reported as finite")
	}
}

func TestVec2(t *testing.T) {
	v := Vec(3.0, 4.0)
	if h := v.Hypot(); h != 5 {
		t.Errorf("got %v, want 5", h)
	}
	if h := v.Hypot2(); h != 25 {
		t.Errorf("got %v, want 25", h)
	}
	if c := v.Cross(Vec(1.0, 0.0)); c != -4 {
		t.Errorf("got %v, want -4", c)
	}
	if d := v.Dot(Vec(1.0, 1.0)); d != 7 {
		t.Errorf("got %v, want 7", d)
	}
	diff(t, Vec(0.6, 0.8), v.Normalize(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Vec(-3.0, -4.0), v.Negate())
	diff(t, Vec(1.5, 2.0), v.Div(2))
}
