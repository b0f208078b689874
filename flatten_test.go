package geom

import (
	"fmt"
	"math"
	"slices"
	"testing"
)

func distanceToPolyline[S Scalar](pt Point[S], poly []Point[S]) S {
	best := pt.Distance(poly[0])
	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1], poly[i]
		ab := b.Sub(a)
		var u S
		if l2 := ab.Hypot2(); l2 > 0 {
			u = min(max(pt.Sub(a).Dot(ab)/l2, 0), 1)
		}
		best = min(best, pt.Distance(a.Translate(ab.Mul(u))))
	}
	return best
}

func checkFlattening[S Scalar](t *testing.T, q QuadBez[S], tolerance S) {
	t.Helper()
	poly := []Point[S]{q.From}
	for pt := range q.Flatten(tolerance).All() {
		poly = append(poly, pt)
	}
	if poly[len(poly)-1] != q.To {
		t.Errorf("%v: flattening ends at %v, want %v", q, poly[len(poly)-1], q.To)
	}
	const n = 1000
	for i := range n + 1 {
		p := q.Eval(S(i) / n)
		if d := distanceToPolyline(p, poly); d > tolerance {
			t.Errorf("%v: %v is %v away from the polyline, want at most %v", q, p, d, tolerance)
		}
	}
}

func TestFlattenTolerance(t *testing.T) {
	quads := []QuadBez[float64]{
		{Pt(0.0, 0.0), Pt(50.0, 100.0), Pt(100.0, 0.0)},
		{Pt(0.0, 0.0), Pt(100.0, 0.0), Pt(100.0, 100.0)},
		{Pt(10.0, 10.0), Pt(-40.0, 25.0), Pt(30.0, 90.0)},
		{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)},
	}
	for _, q := range quads {
		for _, tolerance := range []float64{1, 0.1, 0.01} {
			t.Run(fmt.Sprintf("%v/%g", q, tolerance), func(t *testing.T) {
				checkFlattening(t, q, tolerance)
				checkFlattening(t, q.Flip(), tolerance)
			})
		}
	}
}

func TestFlattenFloat32(t *testing.T) {
	q := QuadBez[float32]{Pt[float32](0, 0), Pt[float32](50, 100), Pt[float32](100, 0)}
	checkFlattening(t, q, 0.1)
}

func TestFlattenDegenerate(t *testing.T) {
	tests := []QuadBez[float64]{
		// Straight line
		{Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(2.0, 0.0)},
		// Control point on the start point
		{Pt(0.0, 0.0), Pt(0.0, 0.0), Pt(2.0, 3.0)},
		// Single point
		{Pt(1.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 1.0)},
	}
	for _, q := range tests {
		f := q.Flatten(0.1)
		pt, ok := f.Next()
		if !ok || pt != q.To {
			t.Errorf("%v: got (%v, %t), want (%v, true)", q, pt, ok, q.To)
		}
		for range 2 {
			if pt, ok := f.Next(); ok {
				t.Errorf("%v: got extra point %v", q, pt)
			}
		}
	}
}

func TestFlattenNonFinite(t *testing.T) {
	nan := math.NaN()
	tests := []QuadBez[float64]{
		// The cross product overflows, giving a step of zero.
		{Pt(0.0, 0.0), Pt(1e200, 1.0), Pt(1.0, 1e200)},
		{Pt(0.0, 0.0), Pt(nan, 1.0), Pt(2.0, 0.0)},
		{Pt(0.0, 0.0), Pt(1.0, 1.0), Pt(nan, nan)},
		{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0), Pt(2.0, 0.0)},
	}
	for _, q := range tests {
		if step := q.FlatteningStep(0.1); step != 1 {
			t.Errorf("%v: got step %v, want 1", q, step)
		}
		var n int
		q.FlattenedForEach(0.1, func(Point[float64]) { n++ })
		if n != 1 {
			t.Errorf("%v: got %d points, want 1", q, n)
		}
		q.ApproxLength(0.1)
	}

	q32 := QuadBez[float32]{Pt[float32](0, 0), Pt[float32](1e30, 1), Pt[float32](1, 1e30)}
	pts := slices.Collect(q32.Flatten(0.1).All())
	diff(t, []Point[float32]{q32.To}, pts)
}

// stalledCurve is a curve whose flattening step is fixed.
type stalledCurve struct {
	q    QuadBez[float64]
	step float64
}

func (c stalledCurve) FlatteningStep(float64) float64 { return c.step }
func (c stalledCurve) AfterSplit(t float64) stalledCurve {
	return stalledCurve{c.q.AfterSplit(t), c.step}
}
func (c stalledCurve) Start() Point[float64] { return c.q.From }
func (c stalledCurve) End() Point[float64]   { return c.q.To }

func TestFlattenedStepOutOfRange(t *testing.T) {
	q := QuadBez[float64]{Pt(0.0, 0.0), Pt(50.0, 100.0), Pt(100.0, 0.0)}
	for _, step := range []float64{0, -0.5, math.NaN(), 1.5} {
		pts := slices.Collect(NewFlattened(stalledCurve{q, step}, 0.1).All())
		if len(pts) != 1 || pts[0] != q.To {
			t.Errorf("step %v: got %v, want [%v]", step, pts, q.To)
		}
	}
}

func TestFlattenForEachMatchesIterator(t *testing.T) {
	q := QuadBez[float64]{Pt(10.0, 10.0), Pt(-40.0, 25.0), Pt(30.0, 90.0)}
	var pushed []Point[float64]
	q.FlattenedForEach(0.05, func(pt Point[float64]) {
		pushed = append(pushed, pt)
	})
	pulled := slices.Collect(q.Flatten(0.05).All())
	if len(pulled) < 2 {
		t.Fatalf("got %d points, want more than one", len(pulled))
	}
	diff(t, pulled, pushed)
}

func TestFlattenStopEarly(t *testing.T) {
	q := QuadBez[float64]{Pt(0.0, 0.0), Pt(50.0, 100.0), Pt(100.0, 0.0)}
	all := slices.Collect(q.Flatten(0.1).All())

	f := q.Flatten(0.1)
	for pt := range f.All() {
		if pt != all[0] {
			t.Errorf("got %v, want %v", pt, all[0])
		}
		break
	}
	// Iteration resumes where it stopped.
	diff(t, all[1:], slices.Collect(f.All()))
}

func TestFlattenInvalidTolerance(t *testing.T) {
	q := QuadBez[float64]{Pt(0.0, 0.0), Pt(50.0, 100.0), Pt(100.0, 0.0)}
	for _, tolerance := range []float64{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for tolerance %v", tolerance)
				}
			}()
			q.Flatten(tolerance)
		}()
	}
}

func BenchmarkFlatten(b *testing.B) {
	q := QuadBez[float64]{Pt(10.0, 10.0), Pt(-40.0, 25.0), Pt(30.0, 90.0)}
	for _, tolerance := range []float64{1, 0.1, 0.01} {
		b.Run(fmt.Sprint(tolerance), func(b *testing.B) {
			for range b.N {
				f := q.Flatten(tolerance)
				for {
					if _, ok := f.Next(); !ok {
						break
					}
				}
			}
		})
	}
}

func BenchmarkFlattenedForEach(b *testing.B) {
	q := QuadBez[float32]{Pt[float32](10, 10), Pt[float32](-40, 25), Pt[float32](30, 90)}
	var n int
	for range b.N {
		q.FlattenedForEach(0.1, func(Point[float32]) { n++ })
	}
}
